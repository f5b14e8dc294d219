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
	"math"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
)

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

// One is the 16.16 representation of 1.0.
const One Fixed = 1 << 16

// FloatToFixed converts x to 16.16, rounding to the nearest representable
// value.  Values outside the range of Fixed saturate.
func FloatToFixed(x float64) Fixed {
	v := math.Round(x * 65536)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return Fixed(v)
}

// Float returns the value of f as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / 65536
}

// MulFix computes a*b/0x10000 with rounding, where b is a 16.16 value.
// The rounding is symmetric around zero.
func MulFix(a int32, b Fixed) int32 {
	return int32(mulFix64(int64(a), b))
}

func mulFix64(a int64, b Fixed) int64 {
	neg := false
	y := int64(b)
	if a < 0 {
		a = -a
		neg = !neg
	}
	if y < 0 {
		y = -y
		neg = !neg
	}
	c := (a*y + 0x8000) >> 16
	if neg {
		c = -c
	}
	return c
}

// Matrix is a 2×2 linear transformation in 16.16 fixed point.
// A point (x, y) is mapped to (XX*x + XY*y, YX*x + YY*y).
type Matrix struct {
	XX, XY Fixed
	YX, YY Fixed
}

// IdentityMatrix is the identity transformation.
var IdentityMatrix = Matrix{XX: One, YY: One}

// IsIdentity reports whether m is the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix
}

// Transform applies m to a 26.6 vector.  Results outside the 26.6 range
// wrap around; see [Outline.Transform] for a checked version.
func (m Matrix) Transform(v fixed.Point26_6) fixed.Point26_6 {
	x, y := m.transform64(v)
	return fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)}
}

// transformChecked is like Transform, but reports false if a coordinate
// of the result does not fit into 26.6.
func (m Matrix) transformChecked(v fixed.Point26_6) (fixed.Point26_6, bool) {
	x, y := m.transform64(v)
	if !fits26_6(x) || !fits26_6(y) {
		return fixed.Point26_6{}, false
	}
	return fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)}, true
}

func (m Matrix) transform64(v fixed.Point26_6) (x, y int64) {
	vx, vy := int64(v.X), int64(v.Y)
	x = mulFix64(vx, m.XX) + mulFix64(vy, m.XY)
	y = mulFix64(vx, m.YX) + mulFix64(vy, m.YY)
	return x, y
}

// MatrixFromGeom splits a float affine transformation into its 16.16 linear
// part and its 26.6 translation.  M uses the PDF operand order
// [xx yx xy yy tx ty]; the translation is given in pixels.
func MatrixFromGeom(M matrix.Matrix) (Matrix, fixed.Point26_6) {
	m := Matrix{
		XX: FloatToFixed(M[0]),
		YX: FloatToFixed(M[1]),
		XY: FloatToFixed(M[2]),
		YY: FloatToFixed(M[3]),
	}
	delta := fixed.Point26_6{
		X: floatTo26_6(M[4]),
		Y: floatTo26_6(M[5]),
	}
	return m, delta
}

// floatTo26_6 converts a pixel value to 26.6, saturating on overflow.
func floatTo26_6(x float64) fixed.Int26_6 {
	v := math.Round(x * 64)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(v)
}

func fits26_6(x int64) bool {
	return x >= math.MinInt32 && x <= math.MaxInt32
}

// scaleUnits converts a length in font design units to 26.6 pixels at
// the given ppem, rounding like the sfnt package does.  The second result
// is false if the computation overflows 26.6 arithmetic.
func scaleUnits(x, ppem fixed.Int26_6, unitsPerEm int) (fixed.Int26_6, bool) {
	p := int64(x) * int64(ppem)
	half := int64(unitsPerEm / 2)
	if p > math.MaxInt32-half || p < math.MinInt32+half {
		return 0, false
	}
	if p >= 0 {
		p += half
	} else {
		p -= half
	}
	return fixed.Int26_6(p / int64(unitsPerEm)), true
}
