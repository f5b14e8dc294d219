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

// Glyphdump renders glyphs of a font and prints their bitmap metrics as
// JSON.
//
// Usage:
//
//	glyphdump <font-path> <pixel-size> <gid-list> [flags] [matrix] [delta]
package main

import (
	"os"

	"seehuhn.de/go/glyphdump/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr))
}
