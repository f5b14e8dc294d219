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
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PixelMode describes the storage format of a Bitmap.
type PixelMode uint8

// Pixel modes.
const (
	PixelModeNone PixelMode = iota
	PixelModeMono           // 1 bit per pixel, MSB first
	PixelModeGray           // 8 bits per pixel, 0 = no coverage
)

// Bitmap is a rendered glyph image.
//
// Pitch is the number of bytes per row.  A positive pitch means the
// first row of Buffer is the top row of the image; a negative pitch means
// the first row of Buffer is the bottom row.
type Bitmap struct {
	Width  int
	Rows   int
	Pitch  int
	Mode   PixelMode
	Buffer []byte
}

// IsEmpty reports whether the bitmap has no pixel data.
func (b *Bitmap) IsEmpty() bool {
	return b == nil || len(b.Buffer) == 0 || b.Width == 0 || b.Rows == 0
}

// row returns the physical storage of logical row y, where y = 0 is the
// top row of the image.
func (b *Bitmap) row(y int) []byte {
	pitch := b.Pitch
	start := y * pitch
	if pitch < 0 {
		pitch = -pitch
		start = (b.Rows - 1 - y) * pitch
	}
	return b.Buffer[start : start+pitch]
}

// Gray returns the pixels of the bitmap as 8-bit intensities, row by row
// from the top.  Mono pixels are expanded to 0 and 255.  The result has
// length Width*Rows, or is nil for an empty bitmap.
func (b *Bitmap) Gray() []byte {
	if b.IsEmpty() {
		return nil
	}
	out := make([]byte, 0, b.Width*b.Rows)
	for y := range b.Rows {
		row := b.row(y)
		switch b.Mode {
		case PixelModeMono:
			for x := range b.Width {
				if row[x>>3]&(0x80>>(x&7)) != 0 {
					out = append(out, 255)
				} else {
					out = append(out, 0)
				}
			}
		default:
			out = append(out, row[:b.Width]...)
		}
	}
	return out
}

// Raster size limits.  Glyph bitmaps beyond these fail with
// ErrRasterOverflow instead of allocating.
const (
	maxBitmapDim  = 0x7FFF
	maxBitmapArea = 64 << 20
)

// renderOutline rasterizes o into a bitmap.  The control box is grid-fitted
// to whole pixels; the returned left and top give the position of the
// bitmap relative to the glyph origin, in pixels, y axis up.
func renderOutline(z *vector.Rasterizer, o *Outline, mode RenderMode) (bm Bitmap, left, top int, err error) {
	if o.IsEmpty() {
		return Bitmap{Mode: pixelModeFor(mode)}, 0, 0, nil
	}

	xMin, yMin, xMax, yMax := gridFit(o.Bounds())
	width := int(xMax - xMin)
	rows := int(yMax - yMin)
	if width < 0 || rows < 0 || width > maxBitmapDim || rows > maxBitmapDim || width*rows > maxBitmapArea {
		return Bitmap{}, 0, 0, opError("render glyph", ErrRasterOverflow, nil)
	}
	left = int(xMin)
	top = int(yMax)
	if width == 0 || rows == 0 {
		return Bitmap{Width: width, Rows: rows, Mode: pixelModeFor(mode)}, left, top, nil
	}

	// device space: origin at the top-left corner of the bitmap, y down
	dev := func(v vec.Vec2) (float32, float32) {
		return float32(v.X - xMin), float32(yMax - v.Y)
	}

	z.Reset(width, rows)
	z.DrawOp = draw.Src
	for cmd, pts := range o.Path() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(dev(pts[0]))
		case path.CmdLineTo:
			z.LineTo(dev(pts[0]))
		case path.CmdQuadTo:
			bx, by := dev(pts[0])
			cx, cy := dev(pts[1])
			z.QuadTo(bx, by, cx, cy)
		case path.CmdCubeTo:
			bx, by := dev(pts[0])
			cx, cy := dev(pts[1])
			dx, dy := dev(pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case path.CmdClose:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, rows))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	switch mode {
	case RenderModeMono:
		bm = packMono(dst.Pix, width, rows)
	default:
		bm = Bitmap{
			Width:  width,
			Rows:   rows,
			Pitch:  width,
			Mode:   PixelModeGray,
			Buffer: dst.Pix,
		}
	}
	return bm, left, top, nil
}

// packMono thresholds 8-bit coverage at 50% and packs the result into a
// 1-bit bitmap.
func packMono(gray []byte, width, rows int) Bitmap {
	pitch := (width + 7) / 8
	buf := make([]byte, pitch*rows)
	for y := range rows {
		src := gray[y*width : (y+1)*width]
		dst := buf[y*pitch : (y+1)*pitch]
		for x, c := range src {
			if c >= 128 {
				dst[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return Bitmap{
		Width:  width,
		Rows:   rows,
		Pitch:  pitch,
		Mode:   PixelModeMono,
		Buffer: buf,
	}
}

// gridFit rounds a control box outwards to whole pixels.  The coordinates
// of an outline are multiples of 1/64, so the float computations are exact.
func gridFit(box rect.Rect) (xMin, yMin, xMax, yMax float64) {
	return math.Floor(box.LLx), math.Floor(box.LLy), math.Ceil(box.URx), math.Ceil(box.URy)
}

func pixelModeFor(mode RenderMode) PixelMode {
	if mode == RenderModeMono {
		return PixelModeMono
	}
	return PixelModeGray
}
