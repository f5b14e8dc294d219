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

// Package glyphdump renders individual glyphs of TrueType and OpenType
// fonts into bitmaps.
//
// The API follows the life cycle of a classic glyph rasterization engine:
// a [Library] owns [Face] objects, a face is scaled with
// [Face.SetPixelSizes], glyphs are loaded into the face's [GlyphSlot] with
// [Face.LoadGlyph] and converted to a [Bitmap] with [Face.RenderGlyph].
// Font parsing is done by golang.org/x/image/font/sfnt and scan conversion
// by golang.org/x/image/vector.
//
// Coordinates use the fixed-point conventions of FreeType: outline points,
// advances and translations are 26.6 values, transformation matrices are
// 16.16 values.
package glyphdump

import (
	"slices"

	"golang.org/x/image/vector"
)

// Library is the root object of the engine.  It owns all faces created
// from it.
//
// A Library is not safe for concurrent use.
type Library struct {
	faces  []*Face
	raster *vector.Rasterizer
	done   bool
}

// NewLibrary initializes a new engine instance.
func NewLibrary() (*Library, error) {
	return &Library{
		raster: vector.NewRasterizer(0, 0),
	}, nil
}

// Done releases the library and all faces which are still open.
// Calling Done more than once returns ErrInvalidLibraryHandle.
func (lib *Library) Done() error {
	if lib == nil || lib.done {
		return opError("done library", ErrInvalidLibraryHandle, nil)
	}
	for len(lib.faces) > 0 {
		_ = lib.faces[len(lib.faces)-1].Done() // listed faces are open
	}
	lib.raster = nil
	lib.done = true
	return nil
}

func (lib *Library) removeFace(f *Face) {
	lib.faces = slices.DeleteFunc(lib.faces, func(g *Face) bool { return g == f })
}
