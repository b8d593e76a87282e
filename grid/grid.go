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

// Package grid implements a fixed-size boolean grid of selected cells.
//
// Cells are addressed by integer coordinates (x, y) with x growing to the
// right and y growing downwards. Coordinates outside the grid extents are
// never selected; writes to such coordinates are ignored.
package grid

// Cell identifies one grid position.
type Cell struct {
	X, Y int
}

// Reader gives read access to a grid.
// Get must return false for all cells outside [0,Width) × [0,Height).
type Reader interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// Grid is a boolean grid with fixed extents.
// The zero value is an empty 0×0 grid.
type Grid struct {
	width, height int
	cells         []bool // row-major, len == width*height
}

// New returns an empty grid of the given size.
// Negative sizes are treated as zero.
func New(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// Get reports whether the cell (x, y) is selected.
// Cells outside the grid are never selected.
func (g *Grid) Get(x, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.cells[i]
}

// Set changes the state of cell (x, y).
// Writes outside the grid are ignored and Set reports false.
func (g *Grid) Set(x, y int, selected bool) bool {
	i, ok := g.index(x, y)
	if !ok {
		return false
	}
	g.cells[i] = selected
	return true
}

// Toggle flips the state of cell (x, y).
// Writes outside the grid are ignored and Toggle reports false.
func (g *Grid) Toggle(x, y int) bool {
	i, ok := g.index(x, y)
	if !ok {
		return false
	}
	g.cells[i] = !g.cells[i]
	return true
}

// Count returns the number of selected cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells returns the selected cells in row-major order.
func (g *Grid) Cells() []Cell {
	var res []Cell
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] {
				res = append(res, Cell{X: x, Y: y})
			}
		}
	}
	return res
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  append([]bool(nil), g.cells...),
	}
}

// Equal reports whether g and other have the same size and selection.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
