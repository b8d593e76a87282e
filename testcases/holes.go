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

var holeCases = []Case{
	{
		Name:    "ring",
		Pattern: "###\n#.#\n###\n",
		Loops:   2,
		Holes:   1,
		Edges:   16,
		Convex:  4,
		Concave: 4,
	},
	{
		Name:    "two_holes",
		Pattern: "#####\n#.#.#\n#####\n",
		Loops:   3,
		Holes:   2,
		Edges:   24,
		Convex:  4,
		Concave: 8,
	},
	{
		Name:    "wide_hole",
		Pattern: "####\n#..#\n####\n",
		Loops:   2,
		Holes:   1,
		Edges:   20,
		Convex:  4,
		Concave: 4,
	},
	{
		Name:    "island_in_hole",
		Pattern: "#####\n#...#\n#.#.#\n#...#\n#####\n",
		Loops:   3,
		Holes:   1,
		Edges:   36,
		Convex:  8,
		Concave: 4,
	},
}
