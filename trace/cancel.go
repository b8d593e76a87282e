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

// segment identifies a directed unit segment by its end points.
type segment struct {
	from, to Point
}

// CancelEdges removes all pairs of opposing edges.
//
// Two edges oppose each other if they connect the same lattice points in
// reverse directions; this happens exactly where two selected cells share a
// side. The remaining edges form the boundary of the union of all cells.
// The relative order of the remaining edges is preserved.
//
// Matching uses a hash map, so the run time is linear in the number of
// edges.
func CancelEdges(edges []Edge) []Edge {
	count := make(map[segment]int, len(edges))
	for _, e := range edges {
		count[segment{e.From, e.To}]++
	}

	// Each occurrence of a segment can cancel at most one occurrence of
	// the reverse segment.
	drop := make(map[segment]int)
	for key, n := range count {
		if m := count[segment{key.to, key.from}]; m > 0 {
			drop[key] = min(n, m)
		}
	}
	if len(drop) == 0 {
		return edges
	}

	res := make([]Edge, 0, len(edges))
	for _, e := range edges {
		key := segment{e.From, e.To}
		if drop[key] > 0 {
			drop[key]--
			continue
		}
		res = append(res, e)
	}
	return res
}
