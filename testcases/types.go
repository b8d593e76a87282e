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

// Package testcases holds named grid selections together with the
// properties their traced outlines must have.
package testcases

// Case describes a single tracing test.
type Case struct {
	Name    string // lowercase a-z and _ only
	Pattern string // grid in the format read by grid.Parse

	Loops   int // number of boundary loops
	Holes   int // number of loops which run counter-clockwise
	Edges   int // number of edges left after cancellation
	Convex  int // number of convex corners, summed over all loops
	Concave int // number of concave corners, summed over all loops

	// Joined gives the loop and corner counts when cells which touch only
	// at a lattice point are joined, as for grown outlines. If nil, the
	// pattern has no such points and the counts above apply.
	Joined *Counts
}

// Counts lists the expected loop and corner counts of a traced pattern.
type Counts struct {
	Loops   int
	Holes   int
	Convex  int
	Concave int
}

// Expected returns the counts for the given contact mode.
// If joined is false, or c.Joined is nil, the counts of c itself are used.
func (c Case) Expected(joined bool) Counts {
	if joined && c.Joined != nil {
		return *c.Joined
	}
	return Counts{Loops: c.Loops, Holes: c.Holes, Convex: c.Convex, Concave: c.Concave}
}

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]Case{
	"basic":    basicCases,
	"holes":    holeCases,
	"diagonal": diagonalCases,
	"large":    largeCases,
}
