// seehuhn.de/go/glyphdump - dump rasterized glyph metrics as JSON
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli implements the glyphdump command.
//
// Usage:
//
//	glyphdump <font-path> <pixel-size> <gid-list> [flags] [matrix] [delta]
//
// The glyphs in gid-list are rendered one by one and their bitmap metrics
// are written to standard output as a JSON array.  The flags argument is
// searched for the words "nohint", "light", "mono" and "pixels".  The
// matrix argument has the form xx,yx,xy,yy[,tx,ty], the delta argument
// the form dx,dy; translations are in pixels.
//
// Set the environment variable GLYPHDUMP_DEBUG to a non-empty value to
// log engine diagnostics to standard error.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/glyphdump"
)

// DebugEnv is the name of the environment variable enabling debug output.
const DebugEnv = "GLYPHDUMP_DEBUG"

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// Run executes the command with the given arguments and returns the exit
// code.  args[0] is the program name.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 4 {
		prog := "glyphdump"
		if len(args) > 0 {
			prog = args[0]
		}
		fmt.Fprintf(stderr, "usage: %s <font-path> <pixel-size> <gid-list> [flags] [matrix] [delta]\n", prog)
		return ExitError
	}

	if os.Getenv(DebugEnv) != "" {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		glyphdump.SetLogger(slog.New(h))
		defer glyphdump.SetLogger(nil)
	}

	fontPath := args[1]
	size, _ := parseInt(args[2])
	pixelSize := uint(uint32(int32(size))) // C int to unsigned conversion
	gidList := args[3]
	var flagArg, matrixArg, deltaArg string
	if len(args) > 4 {
		flagArg = args[4]
	}
	if len(args) > 5 {
		matrixArg = args[5]
	}
	if len(args) > 6 {
		deltaArg = args[6]
	}

	fl := parseFlags(flagArg)
	loadFlags, mode := fl.loadFlags()
	tr := parseTransform(matrixArg, deltaArg)

	lib, err := glyphdump.NewLibrary()
	if err != nil {
		fmt.Fprintln(stderr, "failed to init glyph engine:", err)
		return ExitError
	}
	// Done only fails when called twice.
	defer func() { _ = lib.Done() }()

	face, err := lib.NewFace(fontPath, 0)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load font:", fontPath)
		glyphdump.Logger().Debug("face load failed", "path", fontPath, "error", err)
		return ExitError
	}
	defer func() { _ = face.Done() }()

	if err := face.SetPixelSizes(0, pixelSize); err != nil {
		fmt.Fprintln(stderr, "failed to set pixel size:", err)
		return ExitError
	}

	gids, ok := parseGlyphList(gidList)
	if !ok || len(gids) == 0 {
		fmt.Fprintln(stderr, "empty glyph list")
		return ExitError
	}

	records := make([]GlyphRecord, 0, len(gids))
	for _, gid := range gids {
		// nil matrix and delta reset the transformation to the identity
		face.SetTransform(tr.Matrix, tr.Delta)
		records = append(records, dumpGlyph(face, gid, loadFlags, mode, fl.Pixels))
		face.SetTransform(nil, nil)
	}

	if err := writeRecords(stdout, records); err != nil {
		fmt.Fprintln(stderr, "write error:", err)
		return ExitError
	}
	return ExitOK
}

// dumpGlyph loads and renders a single glyph.  If either step fails, the
// record carries only the glyph index and all metrics are zero.
func dumpGlyph(face *glyphdump.Face, gid uint32, flags glyphdump.LoadFlags, mode glyphdump.RenderMode, withPixels bool) GlyphRecord {
	rec := GlyphRecord{GID: gid}

	if err := face.LoadGlyph(glyphdump.GlyphIndex(gid), flags); err != nil {
		glyphdump.Logger().Debug("load failed", "gid", gid, "flags", flags, "error", err)
		return rec
	}
	if err := face.RenderGlyph(mode); err != nil {
		glyphdump.Logger().Debug("render failed", "gid", gid, "mode", mode, "error", err)
		return rec
	}

	slot := face.Glyph()
	rec.Width = slot.Bitmap.Width
	rec.Rows = slot.Bitmap.Rows
	rec.Left = slot.BitmapLeft
	rec.Top = slot.BitmapTop
	rec.AdvanceX = int64(slot.Advance.X >> 6)
	if withPixels && !slot.Bitmap.IsEmpty() {
		rec.Pixels = slot.Bitmap.Gray()
	}
	return rec
}
