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
	"cmp"
	"math"
	"slices"
)

// The coverage of a scanline is accumulated in two arrays. For every
// piece of an edge which crosses pixel column i within the scanline,
// cover[i] receives the signed height of the piece, and area[i] receives
// the signed height weighted by the fraction of the pixel to the right of
// the piece. Summing cover from the left and adding area then gives the
// signed winding area of every pixel.

// accumulate adds the contribution of e within scanline y to the given
// row buffers, which cover the pixel columns [x0, x1).
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), e.top())
	bot := min(float64(y+1), e.bottom())
	if bot <= top {
		return
	}
	w := e.winding()

	xa, xb := e.xAt(top), e.xAt(bot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	add := func(col int, h, xMid float64) {
		c := w * float32(h)
		switch {
		case col < x0:
			// everything to the right of the box is covered
			cover[0] += c
			area[0] += c
		case col < x1:
			i := col - x0
			cover[i] += c
			area[i] += c * float32(1-(xMid-float64(col)))
		}
	}

	if right < x0 {
		add(left, bot-top, 0)
		return
	}
	if left >= x1 {
		return
	}
	if left == right {
		add(left, bot-top, e.xAt((top+bot)/2))
		return
	}

	dydx := 1 / e.dxdy
	for col := left; col <= right; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi <= lo {
			continue
		}
		add(col, hi-lo, e.xAt((lo+hi)/2))
	}
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage values, which are stored in cover.
func integrate(cover, area []float32, rule Rule) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		if rule == EvenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// trim removes zero coverage values from both ends of a scanline.
func trim(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillGrid rasterizes the edges using buffers which cover the whole box
// [x0, x1) × [y0, y1). This avoids sorting the edges.
func (r *Rasterizer) fillGrid(x0, x1, y0, y1 int, rule Rule, emit EmitFunc) {
	width := x1 - x0
	height := y1 - y0
	size := width * height

	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.dirty = slices.Grow(r.dirty[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.dirty)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.top())), y0)
		last := min(int(math.Floor(e.bottom()))+1, y1)
		for y := first; y < last; y++ {
			row := (y - y0) * width
			accumulate(e, y, r.cover[row:row+width], r.area[row:row+width], x0, x1)
			r.dirty[y-y0] = true
		}
	}

	for j, touched := range r.dirty {
		if !touched {
			continue
		}
		row := j * width
		line := r.cover[row : row+width]
		integrate(line, r.area[row:row+width], rule)
		if c, off := trim(line); c != nil {
			emit(y0+j, x0+off, c)
		}
	}
}

// fillScanlines rasterizes the edges one scanline at a time, keeping a list
// of the edges which intersect the current scanline.
func (r *Rasterizer) fillScanlines(x0, x1, y0, y1 int, rule Rule, emit EmitFunc) {
	width := x1 - x0
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		for next < len(r.edges) && r.edges[next].top() < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}

		kept := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].bottom() > float64(y) {
				kept = append(kept, i)
			}
		}
		r.active = kept
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			accumulate(&r.edges[i], y, r.cover, r.area, x0, x1)
		}
		integrate(r.cover, r.area, rule)
		if c, off := trim(r.cover); c != nil {
			emit(y, x0+off, c)
		}
	}
}
