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
	"maps"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/outline"
	"seehuhn.de/go/jigs/testcases"
)

func TestSideNormals(t *testing.T) {
	for _, s := range Sides {
		n := s.Normal()
		o := s.Opposite().Normal()
		if n.X != -o.X || n.Y != -o.Y {
			t.Errorf("%s: normal %v is not the negation of %v", s, n, o)
		}

		// one clockwise step on screen rotates (x, y) to (-y, x)
		c := s.Clockwise().Normal()
		if c.X != -n.Y || c.Y != n.X {
			t.Errorf("%s: clockwise normal %v is not a quarter turn of %v", s, c, n)
		}
		if s.Clockwise().CounterClockwise() != s {
			t.Errorf("%s: Clockwise and CounterClockwise do not cancel", s)
		}
	}
}

func TestCellEdges(t *testing.T) {
	g := grid.MustParse(".\n.#\n")
	edges := ExtractEdges(g)
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	for i, e := range edges {
		if e.Side != Sides[i] {
			t.Errorf("edge %d is on side %s", i, e.Side)
		}
		next := edges[(i+1)%4]
		if e.To != next.From {
			t.Errorf("edge %d ends at %s, edge %d starts at %s", i, e.To, (i+1)%4, next.From)
		}

		// the cell lies on the inward side of every edge
		mid := e.From.Vec().Add(e.To.Vec()).Mul(0.5).Add(e.Inward().Mul(0.5))
		if mid.X != 1.5 || mid.Y != 1.5 {
			t.Errorf("edge %s: inward point %v is not the cell centre", e, mid)
		}

		r := e.Reverse()
		if r.From != e.To || r.To != e.From || r.Reverse() != e {
			t.Errorf("edge %s: bad reverse %s", e, r)
		}
	}
}

func near(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, 1e-9)
}

// sharedSides counts the pairs of selected cells which share a side.
func sharedSides(g *grid.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if g.Get(c.X+1, c.Y) {
			n++
		}
		if g.Get(c.X, c.Y+1) {
			n++
		}
	}
	return n
}

func TestFixtures(t *testing.T) {
	params := map[Contact]Params{
		Separate: {Pitch: 1, Inset: 0.1, Radius: 0.15},
		Joined:   {Pitch: 1, Inset: -0.1, Radius: 0.15},
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, contact := range []Contact{Separate, Joined} {
				t.Run(category+"_"+tc.Name+"_"+contact.String(), func(t *testing.T) {
					g := grid.MustParse(tc.Pattern)
					want := tc.Expected(contact == Joined)

					edges := CancelEdges(ExtractEdges(g))
					if n := 4*g.Count() - 2*sharedSides(g); len(edges) != n {
						t.Errorf("%d edges after cancellation, formula gives %d", len(edges), n)
					}
					if len(edges) != tc.Edges {
						t.Errorf("%d edges after cancellation, want %d", len(edges), tc.Edges)
					}

					loops, err := AssembleLoops(edges, contact)
					if err != nil {
						t.Fatal(err)
					}
					if len(loops) != want.Loops {
						t.Errorf("%d loops, want %d", len(loops), want.Loops)
					}

					total := 0
					var convex, concave int
					for i, l := range loops {
						total += len(l)
						if !l.Closed() {
							t.Errorf("loop %d is not closed", i)
						}
						corners, err := Classify(l)
						if err != nil {
							t.Fatalf("loop %d: %v", i, err)
						}
						for _, c := range corners {
							switch c.Kind {
							case Convex:
								convex++
							case Concave:
								concave++
							case InLine:
							default:
								t.Errorf("loop %d: corner at %s has kind %s", i, c.At, c.Kind)
							}
						}
					}
					if total != len(edges) {
						t.Errorf("loops contain %d edges, want %d", total, len(edges))
					}
					if convex != want.Convex || concave != want.Concave {
						t.Errorf("%d convex and %d concave corners, want %d and %d",
							convex, concave, want.Convex, want.Concave)
					}

					p := params[contact]
					if p.Contact() != contact {
						t.Fatalf("inset %g gives contact %s", p.Inset, p.Contact())
					}
					outlines, err := Trace(g, p)
					if err != nil {
						t.Fatal(err)
					}
					if len(outlines) != want.Loops {
						t.Errorf("%d outlines, want %d", len(outlines), want.Loops)
					}
					holes := 0
					for _, o := range outlines {
						if o.IsHole() {
							holes++
						}
					}
					if holes != want.Holes {
						t.Errorf("%d holes, want %d", holes, want.Holes)
					}
				})
			}
		}
	}
}

// With a negative inset, cells touching at a corner grow into each other.
// The outline must then be the boundary of the union of the grown squares.
func TestGrownDiagonal(t *testing.T) {
	const m, r = 0.1, 0.05
	p := Params{Pitch: 1, Inset: -m, Radius: r}
	corner := (1 - math.Pi/4) * r * r // area changed by rounding one corner

	outlines, err := Trace(grid.MustParse("#.\n.#\n"), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines for touching cells, want 1", len(outlines))
	}
	s := 1 + 2*m
	want := 2*s*s - 4*m*m - 6*corner + 2*corner
	if got := outlines[0].Area(); !scalar.EqualWithinAbs(got, want, 1e-9) {
		t.Errorf("area %g, want %g", got, want)
	}

	outlines, err = Trace(grid.MustParse("####\n#.##\n##.#\n####\n"), p)
	if err != nil {
		t.Fatal(err)
	}
	var holes []*outline.Outline
	for _, o := range outlines {
		if o.IsHole() {
			holes = append(holes, o)
		}
	}
	if len(holes) != 2 {
		t.Fatalf("got %d holes, want 2", len(holes))
	}
	h := 1 - 2*m
	for i, o := range holes {
		if got, want := o.Area(), -(h*h - 4*corner); !scalar.EqualWithinAbs(got, want, 1e-9) {
			t.Errorf("hole %d: area %g, want %g", i, got, want)
		}
	}
	b0, b1 := holes[0].Bounds(), holes[1].Bounds()
	if b0.URx > b1.LLx && b1.URx > b0.LLx && b0.URy > b1.LLy && b1.URy > b0.LLy {
		t.Errorf("holes overlap: %v and %v", b0, b1)
	}
}

func TestContact(t *testing.T) {
	for _, test := range []struct {
		inset float64
		want  Contact
	}{
		{-0.2, Joined},
		{0, Separate},
		{0.2, Separate},
	} {
		if got := (Params{Pitch: 1, Inset: test.inset}).Contact(); got != test.want {
			t.Errorf("inset %g: got %s, want %s", test.inset, got, test.want)
		}
	}
}

func TestSingleCell(t *testing.T) {
	g := grid.MustParse("#\n")
	outlines, err := Trace(g, Params{Pitch: 1, Inset: 0.1, Radius: 0.2})
	if err != nil {
		t.Fatal(err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines, want 1", len(outlines))
	}
	o := outlines[0]

	want := "M 0.3 0.1 H 0.7 A 0.2 0.2 0 0 1 0.9 0.3 V 0.7 A 0.2 0.2 0 0 1 0.7 0.9" +
		" H 0.3 A 0.2 0.2 0 0 1 0.1 0.7 V 0.3 A 0.2 0.2 0 0 1 0.3 0.1 Z"
	if got := o.SVG(4); got != want {
		t.Errorf("wrong path:\n got %s\nwant %s", got, want)
	}

	b := o.Bounds()
	if !near(b.LLx, 0.1) || !near(b.LLy, 0.1) || !near(b.URx, 0.9) || !near(b.URy, 0.9) {
		t.Errorf("wrong bounds %v", b)
	}

	area := 0.8*0.8 - (4-math.Pi)*0.2*0.2
	if got := o.Area(); !near(got, area) {
		t.Errorf("area %g, want %g", got, area)
	}
}

func TestSharpCorners(t *testing.T) {
	g := grid.MustParse("##\n")
	outlines, err := Trace(g, Params{Pitch: 2, Origin: vec.Vec2{X: 1, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	want := "M 1 1 H 5 V 3 H 1 V 1 Z"
	if got := outlines[0].SVG(4); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, arcs := outlines[0].Count(); arcs != 0 {
		t.Errorf("%d arcs for zero radius", arcs)
	}
}

func TestPair(t *testing.T) {
	g := grid.MustParse("##\n")
	loops, err := Loops(g, Separate)
	if err != nil {
		t.Fatal(err)
	}
	if len(loops) != 1 || len(loops[0]) != 6 {
		t.Fatalf("got %d loops, want one loop of 6 edges", len(loops))
	}

	runs, err := Simplify(loops[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 4 {
		t.Fatalf("got %d runs, want 4", len(runs))
	}
	for _, r := range runs {
		if r.End != Convex {
			t.Errorf("run %s-%s ends in a %s corner", r.From, r.To, r.End)
		}
	}

	o, err := Fit(loops[0], Params{Pitch: 1, Radius: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	lines, arcs := o.Count()
	if lines != 4 || arcs != 4 {
		t.Errorf("%d lines and %d arcs, want 4 and 4", lines, arcs)
	}
	area := 2 - (4-math.Pi)*0.25*0.25
	if got := o.Area(); !near(got, area) {
		t.Errorf("area %g, want %g", got, area)
	}
}

func TestRingSweep(t *testing.T) {
	g := grid.MustParse("###\n#.#\n###\n")
	outlines, err := Trace(g, Params{Pitch: 1, Inset: 0.05, Radius: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if len(outlines) != 2 {
		t.Fatalf("got %d outlines, want 2", len(outlines))
	}

	var outer, inner *outline.Outline
	for _, o := range outlines {
		if o.IsHole() {
			inner = o
		} else {
			outer = o
		}
	}
	if outer == nil || inner == nil {
		t.Fatal("expected one outer and one inner outline")
	}
	for _, seg := range outer.Segments {
		if seg.Kind == outline.Arc && !seg.Sweep {
			t.Error("outer outline has a counter-clockwise arc")
		}
	}
	for _, seg := range inner.Segments {
		if seg.Kind == outline.Arc && seg.Sweep {
			t.Error("inner outline has a clockwise arc")
		}
	}

	// the hole grows by the inset on every side
	b := inner.Bounds()
	if !near(b.LLx, 0.95) || !near(b.URx, 2.05) {
		t.Errorf("wrong hole bounds %v", b)
	}
}

func TestEmpty(t *testing.T) {
	for _, g := range []*grid.Grid{grid.New(0, 0), grid.New(5, 5)} {
		outlines, err := Trace(g, DefaultParams())
		if err != nil {
			t.Errorf("%dx%d: %v", g.Width(), g.Height(), err)
		}
		if len(outlines) != 0 {
			t.Errorf("%dx%d: got %d outlines", g.Width(), g.Height(), len(outlines))
		}
	}
}

func TestIdempotent(t *testing.T) {
	g := grid.MustParse("##.#\n#..#\n####\n")
	p := Params{Pitch: 0.8, Inset: -0.1, Radius: 0.125}

	render := func() string {
		outlines, err := Trace(g, p)
		if err != nil {
			t.Fatal(err)
		}
		var s string
		for _, o := range outlines {
			s += o.SVG(4) + "\n"
		}
		return s
	}
	first := render()
	if second := render(); first != second {
		t.Errorf("output changed between runs:\n%s\n%s", first, second)
	}
}

func TestCircle(t *testing.T) {
	g := grid.MustParse("#\n")
	outlines, err := Trace(g, Params{Pitch: 1, Inset: 0.25, Radius: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	lines, arcs := outlines[0].Count()
	if lines != 0 || arcs != 4 {
		t.Errorf("%d lines and %d arcs, want 0 and 4", lines, arcs)
	}
	if got, want := outlines[0].Area(), math.Pi/16; !near(got, want) {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestErrors(t *testing.T) {
	single := grid.MustParse("#\n")

	_, err := Trace(single, Params{Pitch: 1, Inset: 0.3, Radius: 0.3})
	if !errors.Is(err, ErrGeometry) {
		t.Errorf("oversized radius: got %v", err)
	}

	for _, p := range []Params{{}, {Pitch: -1}, {Pitch: 1, Radius: -0.1}, {Pitch: math.NaN()}, {Pitch: 1, Inset: -0.5}, {Pitch: 1, Inset: 0.6}} {
		if _, err := Trace(single, p); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%+v: got %v", p, err)
		}
	}

	edges := ExtractEdges(single)
	if _, err := AssembleLoops(edges[:3], Separate); !errors.Is(err, ErrDanglingEdge) {
		t.Errorf("open chain: got %v", err)
	}

	// an edge on the wrong cell
	bad := Loop{edges[0], edges[1], edges[2], edges[3]}
	bad[1].Cell = grid.Cell{X: 4, Y: 4}
	if _, err := Classify(bad); !errors.Is(err, ErrUnclassifiedCorner) {
		t.Errorf("inconsistent cells: got %v", err)
	}

	// reversing direction
	uturn := Loop{edges[0], edges[0].Reverse()}
	if _, err := Classify(uturn); !errors.Is(err, ErrUnclassifiedCorner) {
		t.Errorf("u-turn: got %v", err)
	}
}

func TestCancelDuplicates(t *testing.T) {
	// three copies of a segment against one reverse copy: one pair cancels
	e := cellEdge(grid.Cell{}, East)
	edges := []Edge{e, e, e.Reverse(), e}
	res := CancelEdges(edges)
	if len(res) != 2 {
		t.Fatalf("got %d edges, want 2", len(res))
	}
	for _, r := range res {
		if r != e {
			t.Errorf("unexpected edge %s", r)
		}
	}
}
