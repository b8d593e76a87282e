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

package testcases

// By default, regions which touch only at a lattice point are traced
// separately, while holes which touch only at a lattice point share a loop.
// When joined, this is reversed.
var diagonalCases = []Case{
	{
		Name:    "touching",
		Pattern: "#.\n.#\n",
		Loops:   2,
		Edges:   8,
		Convex:  8,
		Joined:  &Counts{Loops: 1, Convex: 6, Concave: 2},
	},
	{
		Name:    "staircase",
		Pattern: "#..\n.#.\n..#\n",
		Loops:   3,
		Edges:   12,
		Convex:  12,
		Joined:  &Counts{Loops: 1, Convex: 8, Concave: 4},
	},
	{
		Name:    "pinched_hole",
		Pattern: "####\n#.##\n##.#\n####\n",
		Loops:   2,
		Holes:   1,
		Edges:   24,
		Convex:  6,
		Concave: 6,
		Joined:  &Counts{Loops: 3, Holes: 2, Convex: 4, Concave: 8},
	},
	{
		Name:    "offset_blocks",
		Pattern: "##.\n###\n.##\n",
		Loops:   1,
		Edges:   12,
		Convex:  6,
		Concave: 2,
	},
}
