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

import "strings"

var largeCases = []Case{
	{
		Name:    "checker",
		Pattern: "#.#.\n.#.#\n#.#.\n.#.#\n",
		Loops:   8,
		Edges:   32,
		Convex:  32,
		Joined:  &Counts{Loops: 3, Holes: 2, Convex: 14, Concave: 18},
	},
	{
		Name:    "full",
		Pattern: block(10, 10),
		Loops:   1,
		Edges:   40,
		Convex:  4,
	},
	{
		Name:    "comb",
		Pattern: "#########\n#.#.#.#.#\n#.#.#.#.#\n",
		Loops:   1,
		Edges:   40,
		Convex:  12,
		Concave: 8,
	},
}

// block returns the pattern of a fully selected rectangle.
func block(width, height int) string {
	row := strings.Repeat("#", width) + "\n"
	return strings.Repeat(row, height)
}
