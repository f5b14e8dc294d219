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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// OutOfRange is a glyph index beyond the end of all test fonts.
const OutOfRange = 65000

var basicCases = []TestCase{
	{
		Name: "single_glyph",
		Font: "goregular",
		Size: 16,
		GIDs: gids("goregular", "A"),
	},
	{
		Name: "word_with_duplicates",
		Font: "goregular",
		Size: 24,
		GIDs: gids("goregular", "Hello"),
	},
	{
		Name: "notdef_and_space",
		Font: "goregular",
		Size: 20,
		GIDs: []int{0, gid("goregular", ' ')},
	},
	{
		Name: "out_of_range",
		Font: "goregular",
		Size: 20,
		GIDs: []int{gid("goregular", 'A'), OutOfRange, gid("goregular", 'B')},
	},
	{
		Name: "monospace",
		Font: "gomono",
		Size: 13,
		GIDs: gids("gomono", "abc{}"),
	},
}

var flagCases = []TestCase{
	{
		Name:  "nohint",
		Font:  "goregular",
		Size:  18,
		GIDs:  gids("goregular", "ag"),
		Flags: "nohint",
	},
	{
		Name:  "light",
		Font:  "goregular",
		Size:  18,
		GIDs:  gids("goregular", "ag"),
		Flags: "light",
	},
	{
		Name:  "mono",
		Font:  "goregular",
		Size:  18,
		GIDs:  gids("goregular", "ag"),
		Flags: "mono",
	},
	{
		Name:  "pixels",
		Font:  "goregular",
		Size:  12,
		GIDs:  gids("goregular", "o "),
		Flags: "pixels",
	},
	{
		Name:  "mono_pixels",
		Font:  "goregular",
		Size:  12,
		GIDs:  gids("goregular", "xQ"),
		Flags: "mono,pixels",
	},
	{
		Name:  "combined",
		Font:  "gomono",
		Size:  15,
		GIDs:  gids("gomono", "W"),
		Flags: "nohint+light+pixels+unknown",
	},
}

var transformCases = []TestCase{
	{
		Name:   "identity",
		Font:   "goregular",
		Size:   20,
		GIDs:   gids("goregular", "Rk"),
		Matrix: matrix.Identity,
	},
	{
		Name:   "rotate",
		Font:   "goregular",
		Size:   20,
		GIDs:   gids("goregular", "Rk"),
		Matrix: matrix.Matrix{0, 1, -1, 0, 0, 0},
	},
	{
		Name:   "oblique",
		Font:   "goregular",
		Size:   20,
		GIDs:   gids("goregular", "Rk"),
		Matrix: matrix.Matrix{1, 0, 0.25, 1, 0, 0},
	},
	{
		Name:   "scale_with_offset",
		Font:   "goregular",
		Size:   32,
		GIDs:   gids("goregular", "Rk"),
		Matrix: matrix.Matrix{0.5, 0, 0, 0.5, 2.5, -1},
		Flags:  "pixels",
	},
	{
		Name:  "delta_only",
		Font:  "goregular",
		Size:  20,
		GIDs:  gids("goregular", "Rk"),
		Delta: vec.Vec2{X: 4, Y: 2},
	},
	{
		Name:   "matrix_and_delta",
		Font:   "goregular",
		Size:   20,
		GIDs:   gids("goregular", "Rk"),
		Matrix: matrix.Matrix{1, 0, 0, 1, 1, 1},
		Delta:  vec.Vec2{X: -3, Y: 0.5},
		Flags:  "mono",
	},
}

var sizeCases = []TestCase{
	{
		Name: "zero",
		Font: "goregular",
		Size: 0,
		GIDs: gids("goregular", "M"),
	},
	{
		Name:  "large",
		Font:  "goregular",
		Size:  300,
		GIDs:  gids("goregular", "M."),
		Flags: "nohint",
	},
}
