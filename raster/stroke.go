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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment of a flattened path, in drawing
// coordinates.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by +90 degrees
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Stroke paints the line along p, using Width, Cap, Join and MiterLimit,
// and passes the coverage to emit in the same way as Fill.
// Overlapping parts of the line are painted once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	if p == nil || !(r.Width > 0) {
		return
	}
	r.flattenStroke(p)

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// subpaths without length have no direction; only round caps draw them
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			start := len(r.stroke)
			r.addArc(pt, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
	}

	for i, start := range r.segsOffsets {
		end := len(r.segs)
		if i+1 < len(r.segsOffsets) {
			end = r.segsOffsets[i+1]
		}

		first := len(r.stroke)
		r.strokeSubpath(r.segs[start:end], r.subpathClosed[i])
		if len(r.stroke)-first >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, first)
		} else {
			r.stroke = r.stroke[:first]
		}
	}

	r.edges = r.edges[:0]
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	if len(r.edges) == 0 {
		return
	}
	r.rasterize(NonZero, emit)
}

// flattenStroke splits p into subpaths of line segments. Curves are
// flattened using the tolerance of the rasterizer.
func (r *Rasterizer) flattenStroke(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0     // index of the first segment of the current subpath
	open := false  // inside a subpath
	drawn := false // the current subpath has a drawing command

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open = false
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur = pts[0]
			start = cur
			open = true
		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addStrokeSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenQuad(cur, pts[0], pts[1], r.addStrokeSegment)
			cur = pts[1]
		case path.CmdCubeTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenCube(cur, pts[0], pts[1], pts[2], r.addStrokeSegment)
			cur = pts[2]
		case path.CmdClose:
			if !open {
				continue
			}
			if cur != start {
				r.addStrokeSegment(cur, start)
			}
			finish(true)
			cur = start
		}
	}
	if open {
		finish(false)
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeSubpath appends the outline of the stroke of one subpath to
// r.stroke, as a single polygon: the +N side in path direction, followed
// by the -N side in reverse.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2
	first, last := &segs[0], &segs[len(segs)-1]

	if !closed {
		r.addCap(first.A, first.T.Mul(-1), d)
	}
	r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
	for i := range len(segs) - 1 {
		r.cornerPlus(segs[i].B, &segs[i], &segs[i+1], d)
	}
	if closed {
		r.cornerPlus(last.B, last, first, d)
		r.cornerMinus(first.A, last, first, d)
	} else {
		r.stroke = append(r.stroke, last.B.Add(last.N.Mul(d)))
		r.addCap(last.B, last.T, d)
		r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))
	}
	for i := len(segs) - 1; i > 0; i-- {
		r.cornerMinus(segs[i].A, &segs[i-1], &segs[i], d)
	}
	r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
}

// cornerPlus appends the +N side of the corner at P, where segment a is
// followed by segment b.
func (r *Rasterizer) cornerPlus(P vec.Vec2, a, b *strokeSegment, d float64) {
	s := cross(a.T, b.T)
	switch {
	case math.Abs(s) < collinearityThreshold:
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)), P.Add(b.N.Mul(d)))
	case s > 0: // +N is the inner side
		if q, ok := innerIntersection(P, a.T, b.T, d, true); ok {
			r.stroke = append(r.stroke, q)
		} else {
			r.stroke = append(r.stroke, P.Add(a.N.Mul(d)), P.Add(b.N.Mul(d)))
		}
	default:
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)))
		r.addJoin(P, a.T, b.T, d, true)
		r.stroke = append(r.stroke, P.Add(b.N.Mul(d)))
	}
}

// cornerMinus appends the -N side of the corner at P, where segment a is
// followed by segment b. The points are appended against the path
// direction.
func (r *Rasterizer) cornerMinus(P vec.Vec2, a, b *strokeSegment, d float64) {
	s := cross(a.T, b.T)
	switch {
	case math.Abs(s) < collinearityThreshold:
		r.stroke = append(r.stroke, P.Sub(b.N.Mul(d)), P.Sub(a.N.Mul(d)))
	case s < 0: // -N is the inner side
		if q, ok := innerIntersection(P, a.T, b.T, d, false); ok {
			r.stroke = append(r.stroke, q)
		} else {
			r.stroke = append(r.stroke, P.Sub(b.N.Mul(d)), P.Sub(a.N.Mul(d)))
		}
	default:
		r.stroke = append(r.stroke, P.Sub(b.N.Mul(d)))
		r.addJoin(P, a.T, b.T, d, false)
		r.stroke = append(r.stroke, P.Sub(a.N.Mul(d)))
	}
}

// innerIntersection returns the point where the offset lines on the
// inner side of a corner meet. The result is false for nearly straight
// corners and for cusps.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, plusSide bool) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + cos) / 2) // cosine of half the turning angle
	if half < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
	if !plusSide {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (half * l))), true
}

// addCap appends the cap at the end point P of an open subpath.
// T is the unit tangent pointing away from the line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin appends the outer part of a corner at P, where the tangent
// turns from T1 to T2. The offset points on both sides of the join are
// added by the caller.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, plusSide bool) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		half := math.Sqrt((1 + cos) / 2)
		if half > 0 && 1/half <= r.MiterLimit+1e-10 {
			dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
			if !plusSide {
				dir = dir.Mul(-1)
			}
			if l := dir.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(dir.Mul(d/(half*l))))
			}
		}
		// otherwise a bevel: the offset points are connected directly

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if sin > 0 {
			angle = -angle
		}
		if plusSide {
			r.addArc(P, d, vec.Vec2{X: -T1.Y, Y: T1.X}, -angle, false)
		} else {
			r.addArc(P, d, vec.Vec2{X: T2.Y, Y: -T2.X}, angle, false)
		}
	}
}

// addArc appends points on the circle of the given radius around center.
// The arc starts in direction u and turns by sweep radians, positive
// values turning from the x axis towards the y axis. The start point is
// only appended if withStart is set.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, u vec.Vec2, sweep float64, withStart bool) {
	dev := max(r.deviceLength(vec.Vec2{X: radius}), r.deviceLength(vec.Vec2{Y: radius}))

	n := 1
	if dev >= r.Flatness {
		// the chord of angle θ deviates from the circle by radius*(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/dev)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i := 1
	if withStart {
		i = 0
	}
	dt := sweep / float64(n)
	for ; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{X: u.X*cos - u.Y*sin, Y: u.X*sin + u.Y*cos}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}
