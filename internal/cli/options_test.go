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

package cli

import (
	"testing"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/glyphdump"
)

func TestParseFlags(t *testing.T) {
	cases := []struct {
		in        string
		want      renderFlags
		wantFlags glyphdump.LoadFlags
		wantMode  glyphdump.RenderMode
	}{
		{
			in:        "",
			wantFlags: glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap,
			wantMode:  glyphdump.RenderModeNormal,
		},
		{
			in:        "nohint",
			want:      renderFlags{NoHint: true},
			wantFlags: glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap | glyphdump.LoadNoHinting,
			wantMode:  glyphdump.RenderModeNormal,
		},
		{
			in:   "light",
			want: renderFlags{Light: true},
			wantFlags: (glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap).
				WithTarget(glyphdump.TargetLight),
			wantMode: glyphdump.RenderModeNormal,
		},
		{
			in:   "xmonox,pixels",
			want: renderFlags{Mono: true, Pixels: true},
			wantFlags: (glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap).
				WithTarget(glyphdump.TargetMono),
			wantMode: glyphdump.RenderModeMono,
		},
		{
			in:   "light+mono",
			want: renderFlags{Light: true, Mono: true},
			wantFlags: (glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap).
				WithTarget(glyphdump.TargetMono),
			wantMode: glyphdump.RenderModeMono,
		},
		{
			in:        "NOHINT",
			wantFlags: glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap,
			wantMode:  glyphdump.RenderModeNormal,
		},
	}
	for _, c := range cases {
		fl := parseFlags(c.in)
		if fl != c.want {
			t.Errorf("parseFlags(%q) = %+v, want %+v", c.in, fl, c.want)
		}
		flags, mode := fl.loadFlags()
		if flags != c.wantFlags {
			t.Errorf("%q: load flags %v, want %v", c.in, flags, c.wantFlags)
		}
		if mode != c.wantMode {
			t.Errorf("%q: render mode %v, want %v", c.in, mode, c.wantMode)
		}
	}
}

func TestParseTransform(t *testing.T) {
	one := glyphdump.One
	cases := []struct {
		name             string
		matrixArg, delta string
		wantSet          bool
		wantM            glyphdump.Matrix
		wantDelta        fixed.Point26_6
	}{
		{name: "none"},
		{name: "short_matrix", matrixArg: "1,0,0"},
		{name: "short_delta", delta: "3"},
		{
			name:      "identity",
			matrixArg: "1,0,0,1",
			wantSet:   true,
			wantM:     glyphdump.IdentityMatrix,
		},
		{
			name:      "matrix_translation",
			matrixArg: "2,0,0,0.5,1.5,-2",
			wantSet:   true,
			wantM:     glyphdump.Matrix{XX: 2 * one, YY: one / 2},
			wantDelta: fixed.Point26_6{X: 96, Y: -128},
		},
		{
			name:      "delta_only",
			delta:     "4,2",
			wantSet:   true,
			wantM:     glyphdump.IdentityMatrix,
			wantDelta: fixed.Point26_6{X: 256, Y: 128},
		},
		{
			name:      "delta_adds_to_translation",
			matrixArg: "1,0,0,1,1,1",
			delta:     "-3,0.5",
			wantSet:   true,
			wantM:     glyphdump.IdentityMatrix,
			wantDelta: fixed.Point26_6{X: -128, Y: 96},
		},
		{
			name:      "delta_not_scaled",
			matrixArg: "2,0,0,2",
			delta:     "1,1",
			wantSet:   true,
			wantM:     glyphdump.Matrix{XX: 2 * one, YY: 2 * one},
			wantDelta: fixed.Point26_6{X: 64, Y: 64},
		},
		{
			name:      "rotation",
			matrixArg: "0,1,-1,0",
			wantSet:   true,
			wantM:     glyphdump.Matrix{XY: -one, YX: one},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := parseTransform(c.matrixArg, c.delta)
			if tr.IsSet() != c.wantSet {
				t.Fatalf("IsSet() = %t, want %t", tr.IsSet(), c.wantSet)
			}
			if !c.wantSet {
				return
			}
			if *tr.Matrix != c.wantM {
				t.Errorf("matrix = %+v, want %+v", *tr.Matrix, c.wantM)
			}
			if *tr.Delta != c.wantDelta {
				t.Errorf("delta = %v, want %v", *tr.Delta, c.wantDelta)
			}
		})
	}
}
