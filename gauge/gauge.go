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

// Package gauge generates the profile of a hex key sizing gauge.
//
// The gauge is a plate with a stepped notch along one edge. Every step is
// as deep and as wide as one hex key, measured across flats, so that a key
// which fits snugly into a step has the printed size. Neighbouring steps
// are connected by 60° slopes, which matches the angle between the flats
// of a hex key.
package gauge

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/outline"
)

// ErrNoKeys is returned if no hex key is large enough for the cutter.
var ErrNoKeys = errors.New("no hex key fits the cutter")

// Step is the part of the notch which holds one key.
type Step struct {
	Key        catalog.Measurement
	Start, End float64 // x positions in inches
}

// Gauge describes the notch of a hex key gauge. All lengths are in inches.
type Gauge struct {
	Steps  []Step
	Width  float64 // length of the notch
	Height float64 // depth of the deepest step
}

// Layout arranges the keys into steps. Keys which are smaller than the
// cutter diameter cannot be cut and are left out. The remaining keys are
// sorted by decreasing size.
func Layout(keys []catalog.Measurement, cutter catalog.Measurement) (*Gauge, error) {
	var usable []catalog.Measurement
	for _, k := range keys {
		if !k.Less(cutter) {
			usable = append(usable, k)
		}
	}
	if len(usable) == 0 {
		return nil, ErrNoKeys
	}
	slices.SortStableFunc(usable, func(a, b catalog.Measurement) int {
		return cmp.Compare(b.Inches(), a.Inches())
	})

	g := &Gauge{Height: usable[0].Inches()}
	slope := math.Tan(math.Pi / 3)
	x, lastY := 0.0, 0.0
	for _, k := range usable {
		size := k.Inches()
		start := x + math.Abs(lastY-size)/slope
		end := start + size
		g.Steps = append(g.Steps, Step{Key: k, Start: start, End: end})
		x, lastY = end, size
	}
	g.Width = x
	return g, nil
}

// Profile returns the closed outline of the notch, in inches. The top
// edge of the gauge lies on the x-axis and the notch extends downwards.
func (g *Gauge) Profile() *outline.Outline {
	o := &outline.Outline{}
	for _, s := range g.Steps {
		y := s.Key.Inches()
		o.LineTo(vec.Vec2{X: s.Start, Y: y})
		o.LineTo(vec.Vec2{X: s.End, Y: y})
	}
	o.LineTo(vec.Vec2{X: g.Width, Y: 0})
	o.LineTo(vec.Vec2{})
	return o
}

// Profile lays out the keys and returns the outline of the notch.
func Profile(keys []catalog.Measurement, cutter catalog.Measurement) (*outline.Outline, error) {
	g, err := Layout(keys, cutter)
	if err != nil {
		return nil, err
	}
	return g.Profile(), nil
}

// Drawing returns a drawing of the gauge notch as an inside cut, with a
// margin of half an inch at both ends and one inch above and below.
func (g *Gauge) Drawing() *drawing.Drawing {
	d := &drawing.Drawing{
		Title:  "hex key gauge",
		Width:  g.Width + 1,
		Height: g.Height + 2,
		Unit:   catalog.Inch,
	}
	d.AddOutline(g.Profile().Translate(vec.Vec2{X: 0.5, Y: 1}), drawing.InsideCut)
	return d
}
