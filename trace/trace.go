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

// Package trace computes the rounded outline of a set of grid cells.
//
// The union of the unit squares of all selected cells is bounded by one or
// more closed loops. These are found in four steps:
//
//  1. ExtractEdges lists the four sides of every selected cell, each
//     directed clockwise around its cell.
//  2. CancelEdges removes the pairs of opposing edges which two
//     neighbouring cells share.
//  3. AssembleLoops chains the remaining edges into closed loops. Outer
//     boundaries run clockwise on screen, boundaries of holes run
//     counter-clockwise.
//  4. Fit shifts every loop by an inset and rounds its corners with arcs
//     of a given radius.
//
// Trace runs all four steps. All functions are pure: they do not modify
// their arguments and give the same result when called repeatedly.
package trace

import (
	"fmt"

	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/outline"
)

// Loops returns the boundary loops of the selected cells of g.
// An empty selection gives no loops and no error.
func Loops(g grid.Reader, contact Contact) ([]Loop, error) {
	edges := CancelEdges(ExtractEdges(g))
	return AssembleLoops(edges, contact)
}

// Trace returns the outlines of all connected groups of selected cells,
// including the outlines of holes within these groups.
// An empty selection gives no outlines and no error.
//
// With a negative inset the outlines grow, and cells which touch only at
// a corner merge into one outline. Otherwise such cells are traced
// separately. See Contact.
func Trace(g grid.Reader, p Params) ([]*outline.Outline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	loops, err := Loops(g, p.Contact())
	if err != nil {
		return nil, err
	}

	res := make([]*outline.Outline, 0, len(loops))
	for i, l := range loops {
		o, err := Fit(l, p)
		if err != nil {
			return nil, fmt.Errorf("loop %d: %w", i, err)
		}
		res = append(res, o)
	}
	return res, nil
}
