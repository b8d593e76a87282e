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

// Package raster converts filled and stroked paths into anti-aliased pixel
// coverage.
//
// The rasterizer is used to draw preview images of cut drawings.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// flatEdge is the smallest vertical extent of an edge which
	// contributes to the coverage.
	flatEdge = 1e-10

	// gridBufferLimit is the largest bounding box area, in pixels, which
	// is rasterized using a buffer covering the whole box. Larger paths
	// are processed one scanline at a time.
	gridBufferLimit = 65536

	// defaultMiterLimit is the PDF default, which turns miter joins into
	// bevels below an angle of about 11.5 degrees.
	defaultMiterLimit = 10.0

	// zeroLengthThreshold is the length below which stroke segments are
	// skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the cross product of two tangents below
	// which no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves.
	cuspCosineThreshold = -0.9999
)

// Rule selects how the winding number of a point determines whether the
// point is inside a path.
type Rule uint8

const (
	NonZero Rule = iota
	EvenOdd
)

// EmitFunc receives the coverage of one scanline. Coverage values range
// from 0 (outside) to 1 (inside); coverage[i] belongs to the pixel
// (xMin+i, y). The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// winding returns +1 for downward edges and -1 for upward edges.
func (e *edge) winding() float32 {
	if e.y1 < e.y0 {
		return -1
	}
	return 1
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer computes the fraction of every pixel covered by a filled or
// stroked path.
// A Rasterizer can be reused for many paths; its internal buffers are
// kept between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps drawing coordinates to device pixels. Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this rectangle in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.
	Flatness float64

	// Width is the line width used by Stroke, in drawing units.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of corners between stroke segments.
	Join graphics.LineJoinStyle

	// MiterLimit is the longest miter join, relative to the line width,
	// before it is replaced by a bevel. Must be at least 1.
	MiterLimit float64

	gridLimit int

	edges  []edge
	box    rect.Rect // device bounding box of edges
	cover  []float32
	area   []float32
	active []int
	dirty  []bool

	// stroke outline polygons, all subpaths stored contiguously
	stroke        []vec.Vec2
	strokeOffsets []int

	// flattened subpaths for stroking
	segs          []strokeSegment
	segsOffsets   []int
	subpathClosed []bool
	dots          []vec.Vec2 // subpaths without length
}

// NewRasterizer returns a rasterizer with the given clip rectangle, an
// identity transformation and the PDF default stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		gridLimit:  gridBufferLimit,
	}
}

// Fill fills the path p using the given rule and passes the coverage of
// all touched scanlines to emit, in order of increasing y.
func (r *Rasterizer) Fill(p path.Path, rule Rule, emit EmitFunc) {
	if !r.collect(p) {
		return
	}
	r.rasterize(rule, emit)
}

// rasterize converts the collected edges into coverage.
func (r *Rasterizer) rasterize(rule Rule, emit EmitFunc) {
	x0 := max(int(math.Floor(r.box.LLx)), int(r.Clip.LLx))
	x1 := min(int(math.Floor(r.box.URx))+1, int(r.Clip.URx))
	y0 := max(int(math.Floor(r.box.LLy)), int(r.Clip.LLy))
	y1 := min(int(math.Floor(r.box.URy))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}

	if (x1-x0)*(y1-y0) <= r.gridLimit {
		r.fillGrid(x0, x1, y0, y1, rule, emit)
	} else {
		r.fillScanlines(x0, x1, y0, y1, rule, emit)
	}
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p path.Path, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// collect converts the path into device space edges. Open subpaths are
// closed implicitly. The result is false if no edge was found.
func (r *Rasterizer) collect(p path.Path) bool {
	r.edges = r.edges[:0]
	if p == nil {
		return false
	}

	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCube(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
	return len(r.edges) > 0
}

func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device space length of the drawing space
// vector v.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p := r.device(a)
	q := r.device(b)
	dy := q.Y - p.Y
	if math.Abs(dy) < flatEdge {
		return
	}

	if len(r.edges) == 0 {
		r.box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	}
	r.box.LLx = min(r.box.LLx, p.X, q.X)
	r.box.URx = max(r.box.URx, p.X, q.X)
	r.box.LLy = min(r.box.LLy, p.Y, q.Y)
	r.box.URy = max(r.box.URy, p.Y, q.Y)

	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})
}

// pieces returns the number of line segments needed to approximate a
// curve whose second differences have the given device length.
func (r *Rasterizer) pieces(dev float64, scale float64) int {
	if dev <= 0 {
		return 1
	}
	n := math.Ceil(math.Sqrt(scale * dev / r.Flatness))
	return max(int(n), 1)
}

// flattenQuad approximates a quadratic Bézier curve by line segments,
// which are passed to emit in drawing coordinates.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	d := p0.Sub(p1.Mul(2)).Add(p2)
	n := r.pieces(r.deviceLength(d), 0.25)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	// Wang's formula
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := r.pieces(max(d1, d2), 0.75)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}
