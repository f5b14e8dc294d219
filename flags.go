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

package glyphdump

import (
	"strings"

	"golang.org/x/image/font"
)

// LoadFlags control how LoadGlyph prepares a glyph.
//
// The hinting target occupies bits 16–19, as in FreeType.  Use
// [LoadFlags.Target] and [LoadFlags.WithTarget] to access it.
type LoadFlags uint32

// Load flags.
const (
	LoadDefault    LoadFlags = 0
	LoadNoHinting  LoadFlags = 1 << 1
	LoadNoBitmap   LoadFlags = 1 << 3
	LoadNoAutohint LoadFlags = 1 << 15

	targetShift           = 16
	targetMask  LoadFlags = 0xF << targetShift
)

// Target is a hinting target.
type Target uint8

// Hinting targets.
const (
	TargetNormal Target = iota
	TargetLight
	TargetMono
	TargetLCD
	TargetLCDV
)

func (t Target) String() string {
	switch t {
	case TargetNormal:
		return "normal"
	case TargetLight:
		return "light"
	case TargetMono:
		return "mono"
	case TargetLCD:
		return "lcd"
	case TargetLCDV:
		return "lcd_v"
	default:
		return "unknown"
	}
}

// Target returns the hinting target encoded in f.
func (f LoadFlags) Target() Target {
	return Target((f & targetMask) >> targetShift)
}

// WithTarget returns f with the hinting target replaced by t.
func (f LoadFlags) WithTarget(t Target) LoadFlags {
	return f&^targetMask | LoadFlags(t)<<targetShift&targetMask
}

func (f LoadFlags) String() string {
	var parts []string
	if f&LoadNoHinting != 0 {
		parts = append(parts, "no_hinting")
	}
	if f&LoadNoBitmap != 0 {
		parts = append(parts, "no_bitmap")
	}
	if f&LoadNoAutohint != 0 {
		parts = append(parts, "no_autohint")
	}
	parts = append(parts, "target_"+f.Target().String())
	return strings.Join(parts, "|")
}

// hinting returns the hinting mode used for advance widths.  The wrapped
// font library has no instruction interpreter, so with font.HintingFull
// LoadGlyph only rounds the advance to whole pixels and leaves the outline
// unchanged.
func (f LoadFlags) hinting() font.Hinting {
	if f&LoadNoHinting != 0 {
		return font.HintingNone
	}
	return font.HintingFull
}

// RenderMode selects the kind of bitmap produced by RenderGlyph.
type RenderMode uint8

// Render modes.
const (
	// RenderModeNormal produces 8-bit anti-aliased coverage.
	RenderModeNormal RenderMode = iota

	// RenderModeMono produces 1-bit bitmaps, eight pixels per byte, most
	// significant bit first.
	RenderModeMono
)

func (m RenderMode) String() string {
	switch m {
	case RenderModeNormal:
		return "normal"
	case RenderModeMono:
		return "mono"
	default:
		return "unknown"
	}
}
