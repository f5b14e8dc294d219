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
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline is a scaled glyph outline in 26.6 pixel coordinates.
// The y axis points up, the origin is the glyph origin on the baseline.
type Outline struct {
	Ops    []path.Command
	Points []fixed.Point26_6
}

// IsEmpty reports whether the outline has no contours.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Points) == 0
}

// numPoints returns the number of points consumed by a path command.
func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// outlineFromSegments converts the segments returned by the sfnt package
// (y axis pointing down) into an Outline.  Every contour is closed
// explicitly.  No scaling is applied.
func outlineFromSegments(segs sfnt.Segments) *Outline {
	o := &Outline{
		Ops:    make([]path.Command, 0, len(segs)+8),
		Points: make([]fixed.Point26_6, 0, len(segs)*2),
	}
	open := false
	for _, seg := range segs {
		var cmd path.Command
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				o.Ops = append(o.Ops, path.CmdClose)
			}
			cmd = path.CmdMoveTo
			open = true
		case sfnt.SegmentOpLineTo:
			cmd = path.CmdLineTo
		case sfnt.SegmentOpQuadTo:
			cmd = path.CmdQuadTo
		case sfnt.SegmentOpCubeTo:
			cmd = path.CmdCubeTo
		default:
			continue
		}
		o.Ops = append(o.Ops, cmd)
		for _, p := range seg.Args[:numPoints(cmd)] {
			o.Points = append(o.Points, fixed.Point26_6{X: p.X, Y: -p.Y})
		}
	}
	if open {
		o.Ops = append(o.Ops, path.CmdClose)
	}
	return o
}

// scale converts an outline in font design units to 26.6 pixels at the
// given ppem, in place.  It reports false if a coordinate overflows.
func (o *Outline) scale(ppem fixed.Int26_6, unitsPerEm int) bool {
	for i, p := range o.Points {
		x, okX := scaleUnits(p.X, ppem, unitsPerEm)
		y, okY := scaleUnits(p.Y, ppem, unitsPerEm)
		if !okX || !okY {
			return false
		}
		o.Points[i] = fixed.Point26_6{X: x, Y: y}
	}
	return true
}

// Transform applies m to every point of the outline, in place.  It reports
// false, leaving the outline partly transformed, if a coordinate of the
// result is outside the 26.6 range.
func (o *Outline) Transform(m Matrix) bool {
	if m.IsIdentity() {
		return true
	}
	for i, p := range o.Points {
		q, ok := m.transformChecked(p)
		if !ok {
			return false
		}
		o.Points[i] = q
	}
	return true
}

// Translate shifts every point of the outline by delta, in place.  Like
// Transform, it reports false on overflow.
func (o *Outline) Translate(delta fixed.Point26_6) bool {
	if delta == (fixed.Point26_6{}) {
		return true
	}
	for i, p := range o.Points {
		x := int64(p.X) + int64(delta.X)
		y := int64(p.Y) + int64(delta.Y)
		if !fits26_6(x) || !fits26_6(y) {
			return false
		}
		o.Points[i] = fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)}
	}
	return true
}

// CBox returns the control box of the outline: the smallest rectangle
// containing all on-curve and off-curve points.  The empty outline has
// the zero control box.
func (o *Outline) CBox() fixed.Rectangle26_6 {
	if o.IsEmpty() {
		return fixed.Rectangle26_6{}
	}
	box := fixed.Rectangle26_6{Min: o.Points[0], Max: o.Points[0]}
	for _, p := range o.Points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}
	return box
}

// Bounds returns the control box in pixel units.
func (o *Outline) Bounds() rect.Rect {
	box := o.CBox()
	return rect.Rect{
		LLx: fixedToFloat64(box.Min.X),
		LLy: fixedToFloat64(box.Min.Y),
		URx: fixedToFloat64(box.Max.X),
		URy: fixedToFloat64(box.Max.Y),
	}
}

// Path returns the outline as a path in pixel units, y axis up.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if o == nil {
			return
		}
		var buf [3]vec.Vec2
		idx := 0
		for _, cmd := range o.Ops {
			n := numPoints(cmd)
			for i := range n {
				p := o.Points[idx+i]
				buf[i] = vec.Vec2{X: fixedToFloat64(p.X), Y: fixedToFloat64(p.Y)}
			}
			idx += n
			if !yield(cmd, buf[:n]) {
				return
			}
		}
	}
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
