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
	"strings"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/glyphdump"
)

// renderFlags are the options recognized in the free-form flag argument.
type renderFlags struct {
	NoHint bool
	Light  bool
	Mono   bool
	Pixels bool
}

// parseFlags detects the known flag names by substring search.
func parseFlags(s string) renderFlags {
	return renderFlags{
		NoHint: strings.Contains(s, "nohint"),
		Light:  strings.Contains(s, "light"),
		Mono:   strings.Contains(s, "mono"),
		Pixels: strings.Contains(s, "pixels"),
	}
}

// loadFlags returns the engine load flags and render mode for fl.
// Autohinting and embedded bitmaps are always disabled.  If both light and
// mono are given, mono wins.
func (fl renderFlags) loadFlags() (glyphdump.LoadFlags, glyphdump.RenderMode) {
	flags := glyphdump.LoadDefault | glyphdump.LoadNoAutohint | glyphdump.LoadNoBitmap
	mode := glyphdump.RenderModeNormal
	if fl.NoHint {
		flags |= glyphdump.LoadNoHinting
	}
	if fl.Light {
		flags = flags.WithTarget(glyphdump.TargetLight)
	}
	if fl.Mono {
		flags = flags.WithTarget(glyphdump.TargetMono)
		mode = glyphdump.RenderModeMono
	}
	return flags, mode
}

// transform is the per-glyph transformation requested on the command line.
type transform struct {
	Matrix *glyphdump.Matrix
	Delta  *fixed.Point26_6
}

// IsSet reports whether a matrix or a delta was given.
func (t transform) IsSet() bool {
	return t.Matrix != nil || t.Delta != nil
}

// parseTransform combines the optional matrix and delta arguments.
//
// A matrix needs at least four values xx,yx,xy,yy; a fifth and sixth value
// give the translation.  A delta needs at least two values dx,dy, which are
// added to the translation.  Lists with too few values are ignored.
func parseTransform(matrixArg, deltaArg string) transform {
	M := matrix.Identity
	hasMatrix := false
	if vals := parseFloatList(matrixArg); len(vals) >= 4 {
		M = matrix.Matrix{vals[0], vals[1], vals[2], vals[3], 0, 0}
		if len(vals) >= 5 {
			M[4] = vals[4]
		}
		if len(vals) >= 6 {
			M[5] = vals[5]
		}
		hasMatrix = true
	}

	hasDelta := false
	if vals := parseFloatList(deltaArg); len(vals) >= 2 {
		M = M.Mul(matrix.Translate(vals[0], vals[1]))
		hasDelta = true
	}

	if !hasMatrix && !hasDelta {
		return transform{}
	}
	m, delta := glyphdump.MatrixFromGeom(M)
	return transform{Matrix: &m, Delta: &delta}
}
