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

package dividing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"metric", func(c *Config) {
			c.Unit = catalog.Millimeter
			c.Plate, c.Hub, c.IndexHole = 150, 25, 3
			c.Rings = []Ring{{Radius: 50, Count: 24}}
		}, true},
		{"marks only", func(c *Config) { c.IndexHole = 0 }, true},
		{"no hub", func(c *Config) { c.Hub = 0 }, true},
		{"no unit", func(c *Config) { c.Unit = 0 }, false},
		{"zero plate", func(c *Config) { c.Plate = 0 }, false},
		{"NaN plate", func(c *Config) { c.Plate = math.NaN() }, false},
		{"hub too large", func(c *Config) { c.Hub = 6 }, false},
		{"negative hole", func(c *Config) { c.IndexHole = -1 }, false},
		{"no rings", func(c *Config) { c.Rings = nil }, false},
		{"empty ring", func(c *Config) { c.Rings[0].Count = 0 }, false},
		{"ring inside hub", func(c *Config) { c.Rings[0].Radius = 0.5 }, false},
		{"ring outside rim", func(c *Config) { c.Rings[2].Radius = 2.95 }, false},
		{"duplicate ring", func(c *Config) { c.Rings[1].Radius = 1.5 }, false},
		{"holes overlap", func(c *Config) { c.Rings[0].Count = 100 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.modify(&c)
			err := c.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestRingText(t *testing.T) {
	cases := []struct {
		in   string
		want Ring
		ok   bool
	}{
		{"2.5:24", Ring{Radius: 2.5, Count: 24}, true},
		{" 40 : 36 ", Ring{Radius: 40, Count: 36}, true},
		{"2.5", Ring{}, false},
		{"x:24", Ring{}, false},
		{"2.5:1.5", Ring{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var r Ring
			err := r.UnmarshalText([]byte(tc.in))
			if tc.ok != (err == nil) {
				t.Fatalf("error %v", err)
			}
			if tc.ok && r != tc.want {
				t.Errorf("got %v, want %v", r, tc.want)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	c := DefaultConfig()
	c.Rings = []Ring{{Radius: 2.5, Count: 4}, {Radius: 1.5, Count: 3}, {Radius: 2, Count: 6}}
	p, err := Layout(c)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{1.5, 2, 2.5} {
		if p.Rings[i].Radius != want {
			t.Errorf("ring %d has radius %g, want %g", i, p.Rings[i].Radius, want)
		}
	}
	if c.Rings[0].Radius != 2.5 {
		t.Error("Layout modified its argument")
	}
	// 0.2*(6-1)/2 = 0.5, reduced to a quarter of the ring spacing
	if !scalar.EqualWithinAbs(p.Tick, 0.125, 1e-12) {
		t.Errorf("tick %g, want 0.125", p.Tick)
	}

	holes := p.Holes()
	if len(holes) != 13 {
		t.Fatalf("%d holes, want 13", len(holes))
	}
	for _, h := range holes {
		r := p.Rings[h.Ring]
		if got := h.Center.Length(); !scalar.EqualWithinAbs(got, r.Radius, 1e-12) {
			t.Errorf("ring %d hole %d at distance %g", h.Ring, h.Index, got)
		}
		want := 360 * float64(h.Index) / float64(r.Count)
		if !scalar.EqualWithinAbs(h.Angle, want, 1e-9) {
			t.Errorf("ring %d hole %d at %g°, want %g°", h.Ring, h.Index, h.Angle, want)
		}
	}
	// the outer ring has 4 holes, the second one lies straight below
	// the centre on screen
	last := holes[len(holes)-3]
	if !scalar.EqualWithinAbs(last.Center.X, 0, 1e-12) || !scalar.EqualWithinAbs(last.Center.Y, 2.5, 1e-12) {
		t.Errorf("hole at 90° is at %v", last.Center)
	}
}

func TestDrawing(t *testing.T) {
	c := DefaultConfig()
	c.Rings = []Ring{{Radius: 1.5, Count: 8}, {Radius: 2.5, Count: 12}}
	p, err := Layout(c)
	if err != nil {
		t.Fatal(err)
	}
	d := p.Drawing()
	if !scalar.EqualWithinAbs(d.Width, 6.6, 1e-12) || d.Width != d.Height {
		t.Errorf("page %g x %g", d.Width, d.Height)
	}
	if !strings.Contains(d.Title, "8/12") {
		t.Errorf("title %q", d.Title)
	}

	// rim, hub and 20 holes
	if n := d.Count(drawing.OutsideCut); n != 1 {
		t.Errorf("%d outside cuts", n)
	}
	if n := d.Count(drawing.InsideCut); n != 21 {
		t.Errorf("%d inside cuts, want 21", n)
	}
	// centre cross, two rings and 20 ticks
	if n := d.Count(drawing.GuideLine); n != 24 {
		t.Errorf("%d guide lines, want 24", n)
	}
	for _, it := range d.Items {
		if it.Cut == drawing.GuideLine && !it.Style().NoFill {
			t.Error("filled guide mark")
		}
	}

	b := d.Bounds()
	if !scalar.EqualWithinAbs(b.LLx, 0.3, 1e-12) || !scalar.EqualWithinAbs(b.URy, 6.3, 1e-12) {
		t.Errorf("bounds %v", b)
	}
}

func TestMarksOnly(t *testing.T) {
	c := DefaultConfig()
	c.IndexHole = 0
	c.Rings = []Ring{{Radius: 2, Count: 5}}
	p, err := Layout(c)
	if err != nil {
		t.Fatal(err)
	}
	d := p.Drawing()
	if n := d.Count(drawing.OnLineCut); n != 5 {
		t.Fatalf("%d marks, want 5", n)
	}
	if n := d.Count(drawing.InsideCut); n != 1 {
		t.Errorf("%d inside cuts, want only the hub", n)
	}
	for _, it := range d.Items {
		if it.Cut != drawing.OnLineCut {
			continue
		}
		o := it.Outline
		if !o.Open {
			t.Error("closed mark")
		}
		// the tip of the mark lies on the ring
		r := o.Segments[0].To.Sub(d.Items[0].Circle.Center).Length()
		if !scalar.EqualWithinAbs(r, 2, 1e-12) {
			t.Errorf("mark tip at radius %g", r)
		}
		if svg := o.SVG(4); strings.HasSuffix(svg, "Z") {
			t.Errorf("open mark %q is closed", svg)
		}
	}
}

func TestMetricPreview(t *testing.T) {
	c := Config{
		Unit:      catalog.Millimeter,
		Plate:     100,
		Hub:       20,
		IndexHole: 4,
		Rings:     []Ring{{Radius: 35, Count: 12}},
	}
	p, err := Layout(c)
	if err != nil {
		t.Fatal(err)
	}
	d := p.Drawing()
	if d.Unit != catalog.Millimeter {
		t.Errorf("unit %s", d.Unit)
	}
	img := d.Preview(50)
	// the plate centre lies in the hub hole, which is white
	size := img.Bounds().Dx()
	if g := img.GrayAt(size/2+5, size/2+5).Y; g < 200 {
		t.Errorf("hub pixel has gray level %d", g)
	}
	// half way between hub and first ring the plate is black
	if g := img.GrayAt(size/2+size*25/110, size/2-5).Y; g > 50 {
		t.Errorf("plate pixel has gray level %d", g)
	}
}
