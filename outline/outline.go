// seehuhn.de/go/jigs - parametric drawings for woodworking jigs
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

// Package outline represents closed cut paths made of straight segments
// and circular arcs.
//
// Coordinates follow the SVG convention: x grows to the right and y grows
// downwards. A loop which runs clockwise on screen has positive area.
package outline

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind distinguishes the segment types of an outline.
type Kind uint8

const (
	Line Kind = iota
	Arc
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Arc:
		return "arc"
	default:
		return "unknown"
	}
}

// Segment is one piece of an outline, starting at the end point of the
// previous segment (or at the outline start).
type Segment struct {
	Kind Kind
	To   vec.Vec2

	// Radius is the arc radius. Only used for arcs.
	Radius float64

	// Sweep is true for arcs which turn clockwise on screen.
	// This corresponds to the SVG sweep-flag 1.
	// Only used for arcs.
	Sweep bool
}

// Outline is a path made of lines and arcs.
// Unless Open is set, the path is closed and the last segment ends at Start.
type Outline struct {
	Start    vec.Vec2
	Segments []Segment

	// Open marks a path which is not closed, such as a guide mark.
	// Open paths are stroked but never filled.
	Open bool
}

// LineTo appends a straight segment.
func (o *Outline) LineTo(p vec.Vec2) *Outline {
	o.Segments = append(o.Segments, Segment{Kind: Line, To: p})
	return o
}

// ArcTo appends a circular arc of less than 180 degrees.
func (o *Outline) ArcTo(p vec.Vec2, radius float64, sweep bool) *Outline {
	o.Segments = append(o.Segments, Segment{Kind: Arc, To: p, Radius: radius, Sweep: sweep})
	return o
}

// End returns the end point of the last segment.
// For a well-formed outline this equals Start.
func (o *Outline) End() vec.Vec2 {
	if len(o.Segments) == 0 {
		return o.Start
	}
	return o.Segments[len(o.Segments)-1].To
}

// Translate returns a copy of the outline, shifted by v.
func (o *Outline) Translate(v vec.Vec2) *Outline {
	res := &Outline{
		Open:     o.Open,
		Start:    o.Start.Add(v),
		Segments: make([]Segment, len(o.Segments)),
	}
	for i, seg := range o.Segments {
		seg.To = seg.To.Add(v)
		res.Segments[i] = seg
	}
	return res
}

// Count returns the number of line and arc segments.
func (o *Outline) Count() (lines, arcs int) {
	for _, s := range o.Segments {
		if s.Kind == Arc {
			arcs++
		} else {
			lines++
		}
	}
	return lines, arcs
}

// arcGeometry returns the centre of the arc from p0 to seg.To and the
// turning angle (in (0, π]).
func arcGeometry(p0 vec.Vec2, seg Segment) (center vec.Vec2, theta float64) {
	d := seg.To.Sub(p0)
	chord := d.Length()
	if chord == 0 {
		return p0, 0
	}
	half := chord / 2
	r := max(seg.Radius, half)
	dist := math.Sqrt(max(r*r-half*half, 0))

	// unit vector to the right of the travel direction, on screen
	right := vec.Vec2{X: -d.Y / chord, Y: d.X / chord}
	if !seg.Sweep {
		right = right.Mul(-1)
	}
	mid := p0.Add(seg.To).Mul(0.5)
	center = mid.Add(right.Mul(dist))
	theta = 2 * math.Asin(min(half/r, 1))
	return center, theta
}

// Area returns the signed area enclosed by the outline.
// The area is positive for loops which run clockwise on screen,
// and negative for holes.
func (o *Outline) Area() float64 {
	var sum float64
	cur := o.Start
	for _, seg := range o.Segments {
		sum += cur.X*seg.To.Y - seg.To.X*cur.Y
		if seg.Kind == Arc {
			_, theta := arcGeometry(cur, seg)
			r := seg.Radius
			circSeg := r * r * (theta - math.Sin(theta))
			if seg.Sweep {
				sum += circSeg
			} else {
				sum -= circSeg
			}
		}
		cur = seg.To
	}
	sum += cur.X*o.Start.Y - o.Start.X*cur.Y
	return sum / 2
}

// IsHole reports whether the outline runs counter-clockwise on screen.
// Holes of a traced region are reported this way.
func (o *Outline) IsHole() bool {
	return o.Area() < 0
}

// Bounds returns the smallest axis-aligned rectangle containing the
// outline.
func (o *Outline) Bounds() rect.Rect {
	b := rect.Rect{LLx: o.Start.X, LLy: o.Start.Y, URx: o.Start.X, URy: o.Start.Y}
	extend := func(p vec.Vec2) {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}

	axes := []vec.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	cur := o.Start
	for _, seg := range o.Segments {
		extend(seg.To)
		if seg.Kind == Arc {
			center, theta := arcGeometry(cur, seg)
			if theta > 0 {
				r := seg.Radius
				u0 := cur.Sub(center).Mul(1 / r)
				u1 := seg.To.Sub(center).Mul(1 / r)
				sign := 1.0
				if !seg.Sweep {
					sign = -1
				}
				for _, e := range axes {
					if sign*cross(u0, e) >= 0 && sign*cross(e, u1) >= 0 {
						extend(center.Add(e.Mul(r)))
					}
				}
			}
		}
		cur = seg.To
	}
	return b
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
