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
	"bytes"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphIndex is the index of a glyph in a font.  This is not a character
// code.
type GlyphIndex uint32

// GlyphSlot holds the most recently loaded glyph of a face.
type GlyphSlot struct {
	GlyphIndex GlyphIndex
	LoadFlags  LoadFlags

	// Advance is the transformed advance vector.  Unless LoadNoHinting is
	// set, the untransformed advance is rounded to whole pixels first.
	Advance fixed.Point26_6

	// LinearHoriAdvance is the unhinted, untransformed advance width.
	LinearHoriAdvance fixed.Int26_6

	// Outline is the scaled and transformed outline.
	Outline *Outline

	// Bitmap, BitmapLeft and BitmapTop are set by RenderGlyph.  BitmapLeft
	// is the distance from the origin to the left edge of the bitmap,
	// BitmapTop the distance from the baseline to the top row (y up).
	Bitmap     Bitmap
	BitmapLeft int
	BitmapTop  int

	loaded bool
}

// Face is a font face, scaled to a pixel size.
//
// A Face is not safe for concurrent use.
type Face struct {
	lib  *Library
	font *sfnt.Font
	buf  sfnt.Buffer
	name string

	xPPEM, yPPEM uint
	ppem         fixed.Int26_6

	matrix Matrix
	delta  fixed.Point26_6

	slot GlyphSlot
	done bool
}

// collectionTag is the signature of a TrueType collection file.
var collectionTag = []byte("ttcf")

// NewFace opens the font file at fileName.  For font collections, index
// selects the face; for single fonts index must be 0.
func (lib *Library) NewFace(fileName string, index int) (*Face, error) {
	if lib == nil || lib.done {
		return nil, opError("new face", ErrInvalidLibraryHandle, nil)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, opError("new face", ErrCannotOpenResource, err)
	}
	return lib.newFace(data, index, fileName)
}

// NewMemoryFace creates a face from font data held in memory.  The data
// must not be modified while the face is in use.
func (lib *Library) NewMemoryFace(data []byte, index int) (*Face, error) {
	if lib == nil || lib.done {
		return nil, opError("new memory face", ErrInvalidLibraryHandle, nil)
	}
	return lib.newFace(data, index, "<memory>")
}

func (lib *Library) newFace(data []byte, index int, name string) (*Face, error) {
	if index < 0 {
		return nil, opError("new face", ErrInvalidArgument, nil)
	}

	var fnt *sfnt.Font
	if bytes.HasPrefix(data, collectionTag) {
		c, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, opError("new face", ErrUnknownFileFormat, err)
		}
		if index >= c.NumFonts() {
			return nil, opError("new face", ErrInvalidArgument, nil)
		}
		fnt, err = c.Font(index)
		if err != nil {
			return nil, opError("new face", ErrUnknownFileFormat, err)
		}
	} else {
		if index != 0 {
			return nil, opError("new face", ErrInvalidArgument, nil)
		}
		var err error
		fnt, err = sfnt.Parse(data)
		if err != nil {
			return nil, opError("new face", ErrUnknownFileFormat, err)
		}
	}

	f := &Face{
		lib:    lib,
		font:   fnt,
		name:   name,
		matrix: IdentityMatrix,
	}
	lib.faces = append(lib.faces, f)
	Logger().Info("face opened", "name", name, "glyphs", fnt.NumGlyphs())
	return f, nil
}

// Done releases the face.  Calling Done more than once returns
// ErrInvalidFaceHandle.
func (f *Face) Done() error {
	if f == nil || f.done {
		return opError("done face", ErrInvalidFaceHandle, nil)
	}
	f.lib.removeFace(f)
	f.font = nil
	f.slot = GlyphSlot{}
	f.done = true
	Logger().Info("face closed", "name", f.name)
	return nil
}

// NumGlyphs returns the number of glyphs in the face.
func (f *Face) NumGlyphs() int {
	if f == nil || f.done {
		return 0
	}
	return f.font.NumGlyphs()
}

// UnitsPerEM returns the size of the em square in font design units.
func (f *Face) UnitsPerEM() int {
	if f == nil || f.done {
		return 0
	}
	return int(f.font.UnitsPerEm())
}

// FamilyName returns the font family name, or the empty string if the
// font does not specify one.
func (f *Face) FamilyName() string {
	if f == nil || f.done {
		return ""
	}
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// SetPixelSizes sets the nominal size of the face in pixels.  A zero
// width is replaced by the height and vice versa.  Both values are clamped
// to the range 1 to 0xFFFF.  Outlines are scaled using the height.
func (f *Face) SetPixelSizes(width, height uint) error {
	if f == nil || f.done {
		return opError("set pixel sizes", ErrInvalidFaceHandle, nil)
	}
	if width == 0 {
		width = height
	} else if height == 0 {
		height = width
	}
	width = min(max(width, 1), 0xFFFF)
	height = min(max(height, 1), 0xFFFF)

	f.xPPEM, f.yPPEM = width, height
	f.ppem = fixed.I(int(height))
	return nil
}

// PixelSizes returns the pixel sizes set by SetPixelSizes, after clamping.
func (f *Face) PixelSizes() (width, height uint) {
	if f == nil || f.done {
		return 0, 0
	}
	return f.xPPEM, f.yPPEM
}

// SetTransform sets the transformation which LoadGlyph applies to
// outlines: first the matrix m, then the translation delta.  A nil matrix
// means the identity, a nil delta means no translation.
func (f *Face) SetTransform(m *Matrix, delta *fixed.Point26_6) {
	if f == nil {
		return
	}
	f.matrix = IdentityMatrix
	if m != nil {
		f.matrix = *m
	}
	f.delta = fixed.Point26_6{}
	if delta != nil {
		f.delta = *delta
	}
}

// Transform returns the transformation currently set on the face.
func (f *Face) Transform() (Matrix, fixed.Point26_6) {
	if f == nil {
		return IdentityMatrix, fixed.Point26_6{}
	}
	return f.matrix, f.delta
}

// Glyph returns the glyph slot of the face.  The slot contents are
// replaced by every call to LoadGlyph.
func (f *Face) Glyph() *GlyphSlot {
	if f == nil {
		return nil
	}
	return &f.slot
}

// LoadGlyph loads the outline of glyph gid into the glyph slot, scaled to
// the current pixel size and transformed by the current transformation.
func (f *Face) LoadGlyph(gid GlyphIndex, flags LoadFlags) error {
	if f == nil || f.done {
		return opError("load glyph", ErrInvalidFaceHandle, nil)
	}
	f.slot = GlyphSlot{GlyphIndex: gid, LoadFlags: flags}
	if f.ppem == 0 {
		return opError("load glyph", ErrInvalidPixelSize, nil)
	}
	if int64(gid) >= int64(f.font.NumGlyphs()) {
		Logger().Debug("glyph index out of range", "gid", gid, "glyphs", f.font.NumGlyphs())
		return opError("load glyph", ErrInvalidGlyphIndex, nil)
	}
	idx := sfnt.GlyphIndex(gid)

	// sfnt scales with 32-bit arithmetic which wraps silently at large
	// sizes.  Load in design units and scale with overflow checks instead.
	upem := f.UnitsPerEM()
	design := fixed.Int26_6(upem)

	segs, err := f.font.LoadGlyph(&f.buf, idx, design, nil)
	if err != nil {
		Logger().Debug("cannot load glyph", "gid", gid, "error", err)
		return opError("load glyph", ErrInvalidOutline, err)
	}
	outline := outlineFromSegments(segs) // copies, segs aliases f.buf

	units, err := f.font.GlyphAdvance(&f.buf, idx, design, font.HintingNone)
	if err != nil {
		return opError("load glyph", ErrInvalidGlyphIndex, err)
	}
	linear, ok := scaleUnits(units, f.ppem, upem)
	if !ok || !outline.scale(f.ppem, upem) {
		Logger().Debug("glyph too large", "gid", gid, "ppem", f.yPPEM)
		return opError("load glyph", ErrRasterOverflow, nil)
	}
	adv := linear
	if flags.hinting() == font.HintingFull {
		adv = (adv + 32) &^ 63
	}

	advance := fixed.Point26_6{X: adv}
	if !f.matrix.IsIdentity() {
		advance, ok = f.matrix.transformChecked(advance)
		ok = ok && outline.Transform(f.matrix)
	}
	ok = ok && outline.Translate(f.delta)
	if !ok {
		Logger().Debug("transformed glyph out of range", "gid", gid)
		return opError("load glyph", ErrRasterOverflow, nil)
	}

	f.slot.Advance = advance
	f.slot.LinearHoriAdvance = linear
	f.slot.Outline = outline
	f.slot.loaded = true
	return nil
}

// RenderGlyph converts the outline in the glyph slot into a bitmap.
func (f *Face) RenderGlyph(mode RenderMode) error {
	if f == nil || f.done {
		return opError("render glyph", ErrInvalidFaceHandle, nil)
	}
	if !f.slot.loaded {
		return opError("render glyph", ErrInvalidSlotHandle, nil)
	}

	bm, left, top, err := renderOutline(f.lib.raster, f.slot.Outline, mode)
	if err != nil {
		Logger().Debug("cannot render glyph", "gid", f.slot.GlyphIndex, "mode", mode, "error", err)
		return err
	}
	f.slot.Bitmap = bm
	f.slot.BitmapLeft = left
	f.slot.BitmapTop = top
	return nil
}
