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
	"errors"
	"fmt"
)

// Errors reported by the tracer.
// ErrDanglingEdge and ErrUnclassifiedCorner indicate an inconsistent edge
// set, which cannot occur for edges obtained from a grid.
var (
	ErrDanglingEdge       = errors.New("dangling edge")
	ErrUnclassifiedCorner = errors.New("unclassified corner")
	ErrGeometry           = errors.New("inset and radius do not fit the outline")
	ErrInvalidParams      = errors.New("invalid trace parameters")
)

// Loop is a closed chain of edges: the end point of each edge is the start
// point of the next one, and the last edge ends where the first one starts.
type Loop []Edge

// Closed reports whether the edges of l form a closed chain.
func (l Loop) Closed() bool {
	if len(l) == 0 {
		return false
	}
	for i, e := range l {
		next := l[(i+1)%len(l)]
		if e.To != next.From {
			return false
		}
	}
	return true
}

// Contact selects how a loop continues at a lattice point where selected
// cells touch only diagonally. At such a point two edges arrive and two
// edges leave.
type Contact uint8

const (
	// Separate turns right at diagonal contacts. The touching cells end up
	// in different loops, and the unselected cells on the other diagonal
	// share a loop. This matches the region after shrinking.
	Separate Contact = iota

	// Joined turns left at diagonal contacts. The touching cells share a
	// loop, and the unselected cells on the other diagonal are traced
	// separately. This matches the region after growing.
	Joined
)

func (c Contact) String() string {
	switch c {
	case Separate:
		return "separate"
	case Joined:
		return "joined"
	default:
		return fmt.Sprintf("Contact(%d)", uint8(c))
	}
}

// AssembleLoops chains the edges into closed loops.
//
// Every edge ends up in exactly one loop. Loops are returned in the order
// of their first edge in the input. The contact argument decides how
// diagonal contacts are resolved.
//
// If an edge has no continuation, the error wraps ErrDanglingEdge.
func AssembleLoops(edges []Edge, contact Contact) ([]Loop, error) {
	outgoing := make(map[Point][]int, len(edges))
	for i, e := range edges {
		outgoing[e.From] = append(outgoing[e.From], i)
	}

	used := make([]bool, len(edges))
	var loops []Loop
	for first := range edges {
		if used[first] {
			continue
		}

		var loop Loop
		cur := first
		for {
			used[cur] = true
			loop = append(loop, edges[cur])

			next, ok := successor(edges, outgoing[edges[cur].To], edges[cur], contact)
			if !ok {
				return nil, fmt.Errorf("%w: no continuation after %s", ErrDanglingEdge, edges[cur])
			}
			if next == first {
				break
			}
			if used[next] {
				return nil, fmt.Errorf("%w: %s reached twice", ErrDanglingEdge, edges[next])
			}
			cur = next
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

// successor chooses the edge which follows cur among the candidates.
// Only diagonal contacts offer more than one candidate; there the turn
// direction is given by contact. Reversing direction is never allowed.
func successor(edges []Edge, candidates []int, cur Edge, contact Contact) (int, bool) {
	preference := [3]Side{cur.Side.Clockwise(), cur.Side, cur.Side.CounterClockwise()}
	if contact == Joined {
		preference[0], preference[2] = preference[2], preference[0]
	}
	for _, side := range preference {
		for _, j := range candidates {
			if edges[j].Side == side {
				return j, true
			}
		}
	}
	return -1, false
}
