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

// Package testcases defines glyphdump invocations used by the tests and
// exported for comparison with other glyph rasterizers.
package testcases

import (
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Fonts maps font names used in test cases to TrueType data.
var Fonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// TestCase defines a single glyphdump invocation.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Font   string        // key into Fonts
	Size   int           // pixel size
	GIDs   []int         // glyph indices, in output order
	Flags  string        // free-form flag string
	Matrix matrix.Matrix // transformation matrix (zero-value means no matrix)
	Delta  vec.Vec2      // translation in pixels (zero-value means no delta)
}

// Args returns the command line arguments for the test case, without the
// program name.  fontPath is the location of the font file.
func (tc TestCase) Args(fontPath string) []string {
	gids := make([]string, len(tc.GIDs))
	for i, gid := range tc.GIDs {
		gids[i] = strconv.Itoa(gid)
	}
	args := []string{fontPath, strconv.Itoa(tc.Size), strings.Join(gids, ",")}

	var matrixArg, deltaArg string
	if tc.Matrix != (matrix.Matrix{}) {
		matrixArg = formatFloats(tc.Matrix[:]...)
	}
	if tc.Delta != (vec.Vec2{}) {
		deltaArg = formatFloats(tc.Delta.X, tc.Delta.Y)
	}

	switch {
	case deltaArg != "":
		args = append(args, tc.Flags, matrixArg, deltaArg)
	case matrixArg != "":
		args = append(args, tc.Flags, matrixArg)
	case tc.Flags != "":
		args = append(args, tc.Flags)
	}
	return args
}

func formatFloats(xx ...float64) string {
	parts := make([]string, len(xx))
	for i, x := range xx {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// gid returns the glyph index of r in the named font.
func gid(fontName string, r rune) int {
	f, err := sfnt.Parse(Fonts[fontName])
	if err != nil {
		panic(err)
	}
	idx, err := f.GlyphIndex(nil, r)
	if err != nil {
		panic(err)
	}
	return int(idx)
}

// gids returns the glyph indices for the runes of s.
func gids(fontName string, s string) []int {
	var res []int
	for _, r := range s {
		res = append(res, gid(fontName, r))
	}
	return res
}
