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

	"seehuhn.de/go/jigs/grid"
)

// CornerKind classifies the transition between two consecutive edges.
type CornerKind uint8

const (
	// InLine means the edges continue in the same direction.
	InLine CornerKind = iota

	// Convex means the path turns right, around a corner of the region.
	// Convex corners are rounded with a clockwise arc.
	Convex

	// Concave means the path turns left, into a notch of the region.
	// Concave corners are rounded with a counter-clockwise arc.
	Concave
)

func (k CornerKind) String() string {
	switch k {
	case InLine:
		return "in-line"
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	default:
		return fmt.Sprintf("CornerKind(%d)", uint8(k))
	}
}

// Corner describes the lattice point where two edges of a loop meet.
type Corner struct {
	At   Point
	Kind CornerKind
	In   Side // side of the incoming edge
	Out  Side // side of the outgoing edge
}

// classify determines the kind of corner between a and its successor b.
//
// Besides the turning direction, the owning cells must be positioned
// consistently: for an in-line corner b's cell follows a's cell in the
// direction of travel, a convex corner has both edges on the same cell,
// and for a concave corner b's cell is diagonally across the notch.
func classify(a, b Edge) (Corner, error) {
	c := Corner{At: a.To, In: a.Side, Out: b.Side}
	if a.To != b.From {
		return c, fmt.Errorf("%w: %s does not continue %s", ErrUnclassifiedCorner, b, a)
	}

	dir := step[a.Side.Clockwise()]
	out := step[a.Side]
	cellA := Point{a.Cell.X, a.Cell.Y}
	cellB := Point{b.Cell.X, b.Cell.Y}

	var want Point
	switch b.Side {
	case a.Side:
		c.Kind = InLine
		want = cellA.add(dir)
	case a.Side.Clockwise():
		c.Kind = Convex
		want = cellA
	case a.Side.CounterClockwise():
		c.Kind = Concave
		want = cellA.add(dir).add(out)
	default:
		return c, fmt.Errorf("%w: %s reverses %s", ErrUnclassifiedCorner, b, a)
	}
	if cellB != want {
		return c, fmt.Errorf("%w: %s cannot follow %s", ErrUnclassifiedCorner, b, a)
	}
	return c, nil
}

// Classify returns the corners of a loop. Corner i lies between edge i and
// edge i+1, with the last corner joining the last edge to the first one.
func Classify(l Loop) ([]Corner, error) {
	corners := make([]Corner, len(l))
	for i, a := range l {
		c, err := classify(a, l[(i+1)%len(l)])
		if err != nil {
			return nil, err
		}
		corners[i] = c
	}
	return corners, nil
}

// Run is a maximal straight part of a loop, made up of in-line edges.
// End classifies the corner at To, where the next run starts.
type Run struct {
	Side     Side
	From, To Point
	Cells    []grid.Cell
	End      CornerKind
}

// Simplify merges the in-line edges of a loop into runs.
// The first run starts just after a corner; consecutive runs always meet
// at a convex or concave corner.
func Simplify(l Loop) ([]Run, error) {
	corners, err := Classify(l)
	if err != nil {
		return nil, err
	}

	// start after the last turn before edge 0
	n := len(l)
	start := -1
	for i := range n {
		if corners[(i+n-1)%n].Kind != InLine {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: loop without turns at %s", ErrUnclassifiedCorner, l[0].From)
	}

	var runs []Run
	var cur *Run
	for k := range n {
		i := (start + k) % n
		e := l[i]
		if cur == nil {
			runs = append(runs, Run{Side: e.Side, From: e.From})
			cur = &runs[len(runs)-1]
		}
		cur.To = e.To
		cur.Cells = append(cur.Cells, e.Cell)
		if corners[i].Kind != InLine {
			cur.End = corners[i].Kind
			cur = nil
		}
	}
	return runs, nil
}
