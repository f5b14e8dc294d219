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
	"testing"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
)

func TestMulFix(t *testing.T) {
	cases := []struct {
		a    int32
		b    Fixed
		want int32
	}{
		{0, One, 0},
		{100, One, 100},
		{-100, One, -100},
		{100, One / 2, 50},
		{-100, One / 2, -50},
		{3, One / 2, 2},   // 1.5 rounds away from zero
		{-3, One / 2, -2}, // symmetric
		{64, -One, -64},
		{math.MaxInt32, One, math.MaxInt32},
	}
	for _, c := range cases {
		got := MulFix(c.a, c.b)
		if got != c.want {
			t.Errorf("MulFix(%d, %#x) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloatToFixed(t *testing.T) {
	cases := []struct {
		x    float64
		want Fixed
	}{
		{0, 0},
		{1, One},
		{-1, -One},
		{0.5, One / 2},
		{1e10, math.MaxInt32},
		{-1e10, math.MinInt32},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		got := FloatToFixed(c.x)
		if got != c.want {
			t.Errorf("FloatToFixed(%g) = %d, want %d", c.x, got, c.want)
		}
	}
	if x := FloatToFixed(0.25).Float(); x != 0.25 {
		t.Errorf("round trip of 0.25 gave %g", x)
	}
}

func TestMatrixFromGeom(t *testing.T) {
	m, delta := MatrixFromGeom(matrix.Matrix{1, 2, 3, 4, 5, -6})
	wantM := Matrix{XX: One, YX: 2 * One, XY: 3 * One, YY: 4 * One}
	if m != wantM {
		t.Errorf("matrix = %+v, want %+v", m, wantM)
	}
	wantDelta := fixed.Point26_6{X: 5 * 64, Y: -6 * 64}
	if delta != wantDelta {
		t.Errorf("delta = %v, want %v", delta, wantDelta)
	}

	m, delta = MatrixFromGeom(matrix.Identity)
	if !m.IsIdentity() || delta != (fixed.Point26_6{}) {
		t.Errorf("identity gave %+v, %v", m, delta)
	}
}

func TestMatrixTransform(t *testing.T) {
	// rotation by 90 degrees counter-clockwise
	rot := Matrix{XX: 0, XY: -One, YX: One, YY: 0}
	p := fixed.Point26_6{X: 64, Y: 128}
	got := rot.Transform(p)
	want := fixed.Point26_6{X: -128, Y: 64}
	if got != want {
		t.Errorf("rot(%v) = %v, want %v", p, got, want)
	}

	if got := IdentityMatrix.Transform(p); got != p {
		t.Errorf("identity(%v) = %v", p, got)
	}
}

func TestScaleUnits(t *testing.T) {
	cases := []struct {
		x, ppem    fixed.Int26_6
		unitsPerEm int
		want       fixed.Int26_6
		ok         bool
	}{
		{2048, fixed.I(12), 2048, fixed.I(12), true},
		{1024, fixed.I(12), 2048, fixed.I(6), true},
		{-1024, fixed.I(12), 2048, -fixed.I(6), true},
		{1, fixed.I(16), 2048, 1, true},   // 0.5 rounds away from zero
		{-1, fixed.I(16), 2048, -1, true}, // symmetric
		{0, fixed.I(0xFFFF), 2048, 0, true},
		{2048, fixed.I(12000), 2048, fixed.I(12000), true},
		{2048, fixed.I(20000), 2048, 0, false},
		{-2048, fixed.I(20000), 2048, 0, false},
		{1300, fixed.I(0xFFFF), 2048, 0, false},
	}
	for _, c := range cases {
		got, ok := scaleUnits(c.x, c.ppem, c.unitsPerEm)
		if got != c.want || ok != c.ok {
			t.Errorf("scaleUnits(%d, %d, %d) = %d, %t, want %d, %t",
				c.x, c.ppem, c.unitsPerEm, got, ok, c.want, c.ok)
		}
	}
}

func TestTransformChecked(t *testing.T) {
	scale := Matrix{XX: 4 * One, YY: 4 * One}
	p := fixed.Point26_6{X: 1 << 20, Y: -(1 << 20)}
	got, ok := scale.transformChecked(p)
	want := fixed.Point26_6{X: 1 << 22, Y: -(1 << 22)}
	if !ok || got != want {
		t.Errorf("transformChecked(%v) = %v, %t, want %v", p, got, ok, want)
	}

	big := fixed.Point26_6{X: 1 << 30}
	if _, ok := scale.transformChecked(big); ok {
		t.Errorf("transformChecked(%v) did not report overflow", big)
	}
}
