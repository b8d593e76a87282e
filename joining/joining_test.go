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

package joining

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats/scalar"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/trace"
)

func near(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, 1e-9)
}

func testConfig(columns, rows int) Config {
	cfg := DefaultConfig()
	cfg.Columns = columns
	cfg.Rows = rows
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Extrusion.Name != "2020" || cfg.Hole.Name != "M5 clearance" {
		t.Errorf("unexpected defaults %q, %q", cfg.Extrusion.Name, cfg.Hole.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no columns", func(c *Config) { c.Columns = 0 }},
		{"too many rows", func(c *Config) { c.Rows = MaxCells + 1 }},
		{"no pitch", func(c *Config) { c.Extrusion.Pitch = catalog.Inches(0) }},
		{"no hole", func(c *Config) { c.Hole.Diameter = catalog.Inches(0) }},
		{"hole too large", func(c *Config) { c.Hole.Diameter = catalog.Millimeters(25) }},
		{"negative margin", func(c *Config) { c.Margin = catalog.Inches(-0.1) }},
		{"margin too large", func(c *Config) { c.Margin = catalog.Millimeters(10) }},
		{"negative cutter", func(c *Config) { c.Cutter = catalog.Millimeters(-3) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestBuildSingle(t *testing.T) {
	cfg := testConfig(2, 1)
	g := grid.MustParse("#.\n")
	d, err := Build(g, cfg)
	if err != nil {
		t.Fatal(err)
	}

	pitch := 20 / catalog.MillimetersPerInch
	margin := 1.0 / 16
	if d.Unit != catalog.Inch {
		t.Errorf("unit %s", d.Unit)
	}
	if !near(d.Width, 2*pitch) || !near(d.Height, pitch) {
		t.Errorf("size %gx%g", d.Width, d.Height)
	}
	if d.Margin != margin+PageMargin {
		t.Errorf("margin %g", d.Margin)
	}
	if len(d.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(d.Items))
	}

	plate := d.Items[0]
	if plate.Cut != drawing.OutsideCut || plate.Outline == nil {
		t.Fatalf("first item is %s", plate.Cut)
	}
	b := plate.Outline.Bounds()
	if !near(b.LLx, -margin) || !near(b.URx, pitch+margin) {
		t.Errorf("plate bounds %v", b)
	}
	r := catalog.DefaultCutter.Inches() / 2
	side := pitch + 2*margin
	wantArea := side*side - (4-math.Pi)*r*r
	if got := plate.Outline.Area(); !near(got, wantArea) {
		t.Errorf("plate area %g, want %g", got, wantArea)
	}

	hole := d.Items[1]
	if hole.Cut != drawing.InsideCut || hole.Circle == nil {
		t.Fatalf("second item is %s", hole.Cut)
	}
	if !near(hole.Circle.Center.X, pitch/2) || !near(hole.Circle.Radius, 5.5/2/catalog.MillimetersPerInch) {
		t.Errorf("hole %v", *hole.Circle)
	}

	guide := d.Items[2]
	if guide.Cut != drawing.GuideLine || !near(guide.Circle.Center.X, 1.5*pitch) {
		t.Errorf("guide %s at %v", guide.Cut, guide.Circle)
	}
}

func TestBuildRing(t *testing.T) {
	cfg := testConfig(3, 3)
	cfg.Guides = false
	d, err := Build(grid.MustParse("###\n#.#\n###\n"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := d.Count(drawing.OutsideCut); n != 1 {
		t.Errorf("%d outside cuts", n)
	}
	// eight holes and the opening in the middle
	if n := d.Count(drawing.InsideCut); n != 9 {
		t.Errorf("%d inside cuts", n)
	}
	if n := d.Count(drawing.GuideLine); n != 0 {
		t.Errorf("%d guide lines", n)
	}
	var opening int
	for _, it := range d.Items {
		if it.Outline != nil && it.Cut == drawing.InsideCut {
			opening++
			if !it.Outline.IsHole() {
				t.Error("opening is not counter-clockwise")
			}
		}
	}
	if opening != 1 {
		t.Errorf("%d openings", opening)
	}
}

func TestBuildWindow(t *testing.T) {
	cfg := testConfig(2, 2)
	cfg.Guides = false
	d, err := Build(grid.MustParse("..#\n.##\n###\n"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := d.Count(drawing.InsideCut); n != 1 {
		t.Errorf("%d holes inside the window, want 1", n)
	}
	if n := d.Count(drawing.OutsideCut); n != 1 {
		t.Errorf("%d plates", n)
	}
}

// Cells which touch at a corner grow into one plate, and openings which
// touch at a corner are cut separately.
func TestBuildDiagonal(t *testing.T) {
	pitch := 20 / catalog.MillimetersPerInch
	margin := 1.0 / 16
	r := catalog.DefaultCutter.Inches() / 2
	corner := (1 - math.Pi/4) * r * r

	cfg := testConfig(2, 2)
	cfg.Guides = false
	d, err := Build(grid.MustParse("#.\n.#\n"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := d.Count(drawing.OutsideCut); n != 1 {
		t.Fatalf("%d outside cuts, want 1", n)
	}
	side := pitch + 2*margin
	want := 2*side*side - 4*margin*margin - 4*corner
	if got := d.Items[0].Outline.Area(); !near(got, want) {
		t.Errorf("plate area %g, want %g", got, want)
	}

	cfg = testConfig(4, 4)
	cfg.Guides = false
	d, err = Build(grid.MustParse("####\n#.##\n##.#\n####\n"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := d.Count(drawing.OutsideCut); n != 1 {
		t.Errorf("%d outside cuts, want 1", n)
	}
	var openings int
	for _, it := range d.Items {
		if it.Outline == nil || it.Cut != drawing.InsideCut {
			continue
		}
		openings++
		open := pitch - 2*margin
		if got, want := it.Outline.Area(), -(open*open - 4*corner); !near(got, want) {
			t.Errorf("opening area %g, want %g", got, want)
		}
	}
	if openings != 2 {
		t.Errorf("%d openings, want 2", openings)
	}
}

func TestBuildEmpty(t *testing.T) {
	cfg := testConfig(3, 2)
	d, err := Build(grid.New(3, 2), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Items) != 6 || d.Count(drawing.GuideLine) != 6 {
		t.Errorf("got %d items", len(d.Items))
	}
}

func TestSession(t *testing.T) {
	s, err := NewSession(testConfig(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	if s.Drawing() != nil {
		t.Error("drawing before first refresh")
	}
	if !s.Toggle(1, 1) || !s.Set(2, 1, true) {
		t.Fatal("cell rejected")
	}
	if s.Toggle(3, 0) || s.Set(-1, 0, true) {
		t.Error("cell outside the grid accepted")
	}

	d, err := s.Refresh()
	if err != nil {
		t.Fatal(err)
	}
	if d != s.Drawing() {
		t.Error("Drawing does not return the refreshed drawing")
	}
	if n := d.Count(drawing.OutsideCut); n != 1 {
		t.Errorf("%d plates", n)
	}

	g := s.Grid()
	g.Set(0, 0, true)
	if s.Grid().Get(0, 0) {
		t.Error("Grid does not return a copy")
	}
}

func TestSetConfigResize(t *testing.T) {
	s, err := NewSession(testConfig(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	s.Set(0, 0, true)
	s.Set(2, 2, true)

	if err := s.SetConfig(testConfig(2, 4)); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Grid().String(), "#.\n..\n..\n..\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := s.SetConfig(testConfig(0, 4)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v", err)
	}
	if s.Config().Columns != 2 {
		t.Error("invalid configuration was applied")
	}
}

func TestRefreshRetains(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSession(testConfig(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	s.Logger = zerolog.New(&buf)
	s.Set(0, 0, true)
	good, err := s.Refresh()
	if err != nil {
		t.Fatal(err)
	}

	// a cutter which is wider than a cell cannot round the plate corners
	cfg := s.Config()
	cfg.Cutter = catalog.Inches(1)
	if err := s.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	d, err := s.Refresh()
	if !errors.Is(err, trace.ErrGeometry) {
		t.Fatalf("got %v", err)
	}
	if d != good || s.Drawing() != good {
		t.Error("previous drawing was not retained")
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("no warning logged: %s", buf.String())
	}
}

func TestRefreshLogs(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSession(testConfig(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	s.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	s.Set(1, 1, true)
	if _, err := s.Refresh(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"cells":1`, `"outside":1`, `"message":"plate refreshed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not contain %s", out, want)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	cfg := testConfig(MaxCells, MaxCells)
	g := grid.New(MaxCells, MaxCells)
	for y := range MaxCells {
		for x := range MaxCells {
			g.Set(x, y, x%3 != 1 || y%3 != 1)
		}
	}
	for b.Loop() {
		if _, err := Build(g, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
