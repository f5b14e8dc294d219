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
	"testing"

	"golang.org/x/image/font"
)

func TestLoadFlagsTarget(t *testing.T) {
	f := LoadNoAutohint | LoadNoBitmap
	if f.Target() != TargetNormal {
		t.Errorf("default target = %v", f.Target())
	}

	f = f.WithTarget(TargetLight)
	if f.Target() != TargetLight {
		t.Errorf("target = %v, want light", f.Target())
	}
	f = f.WithTarget(TargetMono)
	if f.Target() != TargetMono {
		t.Errorf("target = %v, want mono", f.Target())
	}
	if f&(LoadNoAutohint|LoadNoBitmap) != LoadNoAutohint|LoadNoBitmap {
		t.Errorf("WithTarget clobbered other flags: %v", f)
	}

	want := "no_bitmap|no_autohint|target_mono"
	if s := f.String(); s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}
}

func TestLoadFlagsHinting(t *testing.T) {
	if h := LoadDefault.hinting(); h != font.HintingFull {
		t.Errorf("default hinting = %v", h)
	}
	if h := LoadDefault.WithTarget(TargetLight).hinting(); h != font.HintingFull {
		t.Errorf("light hinting = %v", h)
	}
	if h := (LoadNoHinting | LoadNoAutohint).hinting(); h != font.HintingNone {
		t.Errorf("no-hinting hinting = %v", h)
	}
}
