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

// Package dividing generates dividing plates for indexing work on a lathe
// or a rotary table.
//
// A dividing plate is a disc with a central hub hole and one or more rings
// of equally spaced index holes. A pin through one of the holes locks the
// plate at the corresponding angle.
package dividing

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/outline"
)

// ErrInvalidConfig is returned for plate dimensions which cannot be
// drawn.
var ErrInvalidConfig = errors.New("invalid dividing plate")

// Ring is a circle of Count equally spaced index holes.
type Ring struct {
	Radius float64
	Count  int
}

// UnmarshalText parses a ring given as "radius:count", for example
// "2.5:24".
func (r *Ring) UnmarshalText(text []byte) error {
	radius, count, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("ring %q: expected radius:count", text)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(radius), 64)
	if err != nil {
		return fmt.Errorf("ring %q: %w", text, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return fmt.Errorf("ring %q: %w", text, err)
	}
	r.Radius, r.Count = x, n
	return nil
}

func (r Ring) String() string {
	return strconv.FormatFloat(r.Radius, 'g', -1, 64) + ":" + strconv.Itoa(r.Count)
}

// Config describes a dividing plate.
// All lengths are given in Unit.
type Config struct {
	Unit catalog.Unit

	Plate     float64 // diameter of the plate
	Hub       float64 // diameter of the centre hole, or 0
	IndexHole float64 // diameter of the index holes, or 0 for marks only

	Rings []Ring
}

// DefaultConfig returns a 6 inch plate with three rings of holes.
func DefaultConfig() Config {
	return Config{
		Unit:      catalog.Inch,
		Plate:     6,
		Hub:       1,
		IndexHole: 0.125,
		Rings: []Ring{
			{Radius: 1.5, Count: 24},
			{Radius: 2, Count: 36},
			{Radius: 2.5, Count: 60},
		},
	}
}

// Validate checks that all rings lie between the hub and the rim, and
// that the index holes of a ring do not overlap.
func (c Config) Validate() error {
	switch {
	case c.Unit != catalog.Inch && c.Unit != catalog.Millimeter:
		return fmt.Errorf("%w: unknown unit %s", ErrInvalidConfig, c.Unit)
	case !(c.Plate > 0):
		return fmt.Errorf("%w: plate diameter %g", ErrInvalidConfig, c.Plate)
	case c.Hub < 0 || c.Hub >= c.Plate:
		return fmt.Errorf("%w: hub diameter %g", ErrInvalidConfig, c.Hub)
	case c.IndexHole < 0:
		return fmt.Errorf("%w: index hole diameter %g", ErrInvalidConfig, c.IndexHole)
	case len(c.Rings) == 0:
		return fmt.Errorf("%w: no rings", ErrInvalidConfig)
	}

	seen := make(map[float64]bool, len(c.Rings))
	for _, r := range c.Rings {
		if r.Count < 1 {
			return fmt.Errorf("%w: ring %s has no holes", ErrInvalidConfig, r)
		}
		if r.Radius-c.IndexHole/2 <= c.Hub/2 || r.Radius+c.IndexHole/2 >= c.Plate/2 {
			return fmt.Errorf("%w: ring %s does not fit between hub and rim", ErrInvalidConfig, r)
		}
		if seen[r.Radius] {
			return fmt.Errorf("%w: duplicate ring radius %g", ErrInvalidConfig, r.Radius)
		}
		seen[r.Radius] = true

		// distance between neighbouring hole centres
		if r.Count > 1 && 2*r.Radius*math.Sin(math.Pi/float64(r.Count)) <= c.IndexHole {
			return fmt.Errorf("%w: holes of ring %s overlap", ErrInvalidConfig, r)
		}
	}
	return nil
}

// Hole is the position of one index hole.
type Hole struct {
	Ring  int // index into the sorted rings
	Index int // number of the hole within its ring, starting at 0

	Angle  float64  // in degrees, clockwise on screen from the positive x-axis
	Center vec.Vec2 // relative to the plate centre, y pointing down
}

// Plate is a laid out dividing plate.
type Plate struct {
	Config

	// Tick is the half-length of the radial marks.
	Tick float64
}

// Layout sorts the rings by radius and computes the size of the marks.
func Layout(c Config) (*Plate, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.Rings = slices.Clone(c.Rings)
	slices.SortFunc(c.Rings, func(a, b Ring) int {
		return cmp.Compare(a.Radius, b.Radius)
	})

	tick := 0.2 * (c.Plate - c.Hub) / 2
	for i := 1; i < len(c.Rings); i++ {
		tick = min(tick, (c.Rings[i].Radius-c.Rings[i-1].Radius)/4)
	}
	return &Plate{Config: c, Tick: tick}, nil
}

// Holes lists all index holes, ring by ring from the inside out.
func (p *Plate) Holes() []Hole {
	var res []Hole
	for i, r := range p.Rings {
		for k := range r.Count {
			a := 2 * math.Pi * float64(k) / float64(r.Count)
			res = append(res, Hole{
				Ring:   i,
				Index:  k,
				Angle:  a * 180 / math.Pi,
				Center: polar(r.Radius, a),
			})
		}
	}
	return res
}

// Drawing returns the plate as a drawing. The plate is centred on a
// square page which is 10% larger than the plate.
//
// The rim is an outside cut and the hub an inside cut. Every ring gets a
// guide circle. Index holes are inside cuts marked by a radial guide tick.
// If the index hole diameter is zero, every position gets a small on-line
// V mark instead, for drilling by hand.
func (p *Plate) Drawing() *drawing.Drawing {
	size := 1.1 * p.Plate
	d := &drawing.Drawing{
		Title:  fmt.Sprintf("dividing plate, %s", p.ringList()),
		Width:  size,
		Height: size,
		Unit:   p.Unit,
	}
	c := vec.Vec2{X: size / 2, Y: size / 2}

	d.AddCircle(c, p.Plate/2, drawing.OutsideCut)
	if p.Hub > 0 {
		d.AddCircle(c, p.Hub/2, drawing.InsideCut)
		arm := p.Hub / 4
		d.AddOutline(segment(c.Add(vec.Vec2{X: -arm}), c.Add(vec.Vec2{X: arm})), drawing.GuideLine)
		d.AddOutline(segment(c.Add(vec.Vec2{Y: -arm}), c.Add(vec.Vec2{Y: arm})), drawing.GuideLine)
	}

	caret := d.FromInches(0.1)
	for _, r := range p.Rings {
		ring := drawing.Circle{Center: c, Radius: r.Radius}.Outline()
		ring.Open = true
		d.AddOutline(ring, drawing.GuideLine)

		for k := range r.Count {
			a := 2 * math.Pi * float64(k) / float64(r.Count)
			h := c.Add(polar(r.Radius, a))
			if p.IndexHole == 0 {
				o := &outline.Outline{Start: h.Add(polar(caret, a-math.Pi/4)), Open: true}
				o.LineTo(h)
				o.LineTo(h.Add(polar(caret, a+math.Pi/4)))
				d.AddOutline(o, drawing.OnLineCut)
				continue
			}
			d.AddCircle(h, p.IndexHole/2, drawing.InsideCut)
			d.AddOutline(segment(c.Add(polar(r.Radius-p.Tick, a)), c.Add(polar(r.Radius+p.Tick, a))), drawing.GuideLine)
		}
	}
	return d
}

func (p *Plate) ringList() string {
	parts := make([]string, len(p.Rings))
	for i, r := range p.Rings {
		parts[i] = strconv.Itoa(r.Count)
	}
	return strings.Join(parts, "/")
}

func polar(r, a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: r * cos, Y: r * sin}
}

// segment returns an open outline consisting of a single straight line.
func segment(a, b vec.Vec2) *outline.Outline {
	return (&outline.Outline{Start: a, Open: true}).LineTo(b)
}
