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

var basicCases = []Case{
	{
		Name:    "empty",
		Pattern: "...\n...\n",
	},
	{
		Name:    "single",
		Pattern: "#\n",
		Loops:   1,
		Edges:   4,
		Convex:  4,
	},
	{
		Name:    "pair",
		Pattern: "##\n",
		Loops:   1,
		Edges:   6,
		Convex:  4,
	},
	{
		Name:    "column",
		Pattern: ".#.\n.#.\n.#.\n",
		Loops:   1,
		Edges:   8,
		Convex:  4,
	},
	{
		Name:    "l_shape",
		Pattern: "#.\n##\n",
		Loops:   1,
		Edges:   8,
		Convex:  5,
		Concave: 1,
	},
	{
		Name:    "plus",
		Pattern: ".#.\n###\n.#.\n",
		Loops:   1,
		Edges:   12,
		Convex:  8,
		Concave: 4,
	},
	{
		Name:    "two_blobs",
		Pattern: "##..#\n##..#\n",
		Loops:   2,
		Edges:   14,
		Convex:  8,
	},
}
