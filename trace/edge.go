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

package trace

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/grid"
)

// Point is a lattice point. The cell (x, y) covers the unit square
// between the lattice points (x, y) and (x+1, y+1).
type Point struct {
	X, Y int
}

func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Vec converts p to a vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Edge is a directed unit segment on the boundary of a selected cell.
type Edge struct {
	Cell     grid.Cell // the cell owning the edge
	Side     Side      // which side of Cell the edge lies on
	From, To Point
}

// corner offsets, clockwise from the top-left corner of a cell
var cellCorner = [4]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// cellEdge returns the edge on side s of cell c.
// The north side runs from the top-left to the top-right corner, and the
// remaining sides follow clockwise.
func cellEdge(c grid.Cell, s Side) Edge {
	origin := Point{c.X, c.Y}
	return Edge{
		Cell: c,
		Side: s,
		From: origin.add(cellCorner[s]),
		To:   origin.add(cellCorner[s.Clockwise()]),
	}
}

// Inward returns the unit normal pointing from the edge into its cell.
func (e Edge) Inward() vec.Vec2 {
	return e.Side.Normal().Mul(-1)
}

// Reverse returns the edge with its end points swapped.
// This is the edge which the neighbouring cell across e would contribute.
func (e Edge) Reverse() Edge {
	n := step[e.Side]
	return Edge{
		Cell: grid.Cell{X: e.Cell.X + n.X, Y: e.Cell.Y + n.Y},
		Side: e.Side.Opposite(),
		From: e.To,
		To:   e.From,
	}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s→%s[%d,%d %s]", e.From, e.To, e.Cell.X, e.Cell.Y, e.Side)
}

// ExtractEdges returns the four boundary edges of every selected cell.
// Cells are visited in row-major order and the edges of each cell are
// listed in the order North, East, South, West.
func ExtractEdges(g grid.Reader) []Edge {
	var edges []Edge
	for y := range g.Height() {
		for x := range g.Width() {
			if !g.Get(x, y) {
				continue
			}
			c := grid.Cell{X: x, Y: y}
			for _, s := range Sides {
				edges = append(edges, cellEdge(c, s))
			}
		}
	}
	return edges
}
