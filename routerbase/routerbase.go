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

// Package routerbase generates sub-base plates and an edge guide for the
// DeWalt DW618 router family.
//
// All dimensions are in inches. Geometry is first laid out relative to the
// router spindle, with y pointing towards the front of the router, and then
// moved onto the page.
package routerbase

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/outline"
)

// CountersinkDepth is the depth of the pockets for the heads of the
// mounting screws.
const CountersinkDepth = 0.1635

// BushingRecess is the depth of the pocket for the flange of a guide
// bushing.
const BushingRecess = 0.104

// DW6184 fixed base
const (
	fixedDiameter   = 3.9385
	fixedHoleCircle = 3.6525 // diameter of the mounting hole circle
)

// DW6182 plunge base
const (
	plungeWidth     = 5.7875
	plungeDepth     = 4.42
	plungeEndRadius = 3.0
	plungeHolesX    = (3.2865 + 2.91) / 2
	plungeHolesY    = (2.415 + 2.8025) / 2
)

const (
	mountingHole        = 0.1770 // loose clearance for #8-36 machine screws
	countersinkDiameter = 0.3970

	// guide bushing, measured on a common template guide kit
	bushingFlange = 1.363
	bushingHole   = 1.1975

	defaultPlateMargin  = 0.5
	roundedCornerRadius = 0.25
	pageMargin          = 0.25
)

// ErrInvalidOptions is returned for plate options which cannot be drawn.
var ErrInvalidOptions = errors.New("invalid router base options")

// Base is a router base model.
type Base uint8

const (
	// DW6184 is the round fixed base.
	DW6184 Base = iota + 1

	// DW6182 is the plunge base, with straight front and back edges.
	DW6182
)

func (b Base) String() string {
	switch b {
	case DW6184:
		return "DW6184"
	case DW6182:
		return "DW6182"
	default:
		return fmt.Sprintf("Base(%d)", uint8(b))
	}
}

// ParseBase converts a model name like "dw6184" to a Base.
func ParseBase(s string) (Base, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DW6184", "FIXED":
		return DW6184, nil
	case "DW6182", "PLUNGE":
		return DW6182, nil
	}
	return 0, fmt.Errorf("unknown router base %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base) UnmarshalText(text []byte) error {
	v, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Size returns the extent of the metal base.
func (b Base) Size() (width, depth float64) {
	if b == DW6182 {
		return plungeWidth, plungeDepth
	}
	return fixedDiameter, fixedDiameter
}

// MountingHoles returns the centres of the four mounting screws.
func (b Base) MountingHoles() []vec.Vec2 {
	var dx, dy float64
	if b == DW6182 {
		dx, dy = plungeHolesX/2, plungeHolesY/2
	} else {
		dx = fixedHoleCircle / 2 * math.Cos(math.Pi/4)
		dy = dx
	}
	return []vec.Vec2{
		{X: -dx, Y: -dy},
		{X: -dx, Y: dy},
		{X: dx, Y: dy},
		{X: dx, Y: -dy},
	}
}

// Footprint returns the outer edge of the metal base, centred on the
// spindle. The result is an open outline, for use as a guide line.
func (b Base) Footprint() *outline.Outline {
	if b != DW6182 {
		o := drawing.Circle{Radius: fixedDiameter / 2}.Outline()
		o.Open = true
		return o
	}

	// the short ends are arcs
	r := plungeEndRadius
	dy := plungeDepth / 2
	arcHeight := r - math.Sqrt(r*r-dy*dy)
	dx := plungeWidth/2 - arcHeight
	o := &outline.Outline{Start: vec.Vec2{X: -dx, Y: -dy}, Open: true}
	o.LineTo(vec.Vec2{X: dx, Y: -dy})
	o.ArcTo(vec.Vec2{X: dx, Y: dy}, r, true)
	o.LineTo(vec.Vec2{X: -dx, Y: dy})
	o.ArcTo(vec.Vec2{X: -dx, Y: -dy}, r, true)
	return o
}

// Options controls the plate features.
type Options struct {
	// Bushing adds a pocket for the flange of a template guide bushing
	// around the centre hole.
	Bushing bool

	// Margin is the width of the plate outside the metal base.
	// Zero selects half an inch.
	Margin float64
}

// sheet collects the items of a drawing, given in spindle coordinates.
type sheet struct {
	d      *drawing.Drawing
	origin vec.Vec2
}

func newSheet(title string, width, height float64, origin vec.Vec2) *sheet {
	return &sheet{
		d: &drawing.Drawing{
			Title:  title,
			Width:  width,
			Height: height,
			Margin: pageMargin,
			Unit:   catalog.Inch,
		},
		origin: origin,
	}
}

func (s *sheet) hole(center vec.Vec2, diameter float64, cut drawing.Cut) {
	s.d.AddCircle(center.Add(s.origin), diameter/2, cut)
}

func (s *sheet) path(o *outline.Outline, cut drawing.Cut) {
	s.d.AddOutline(o.Translate(s.origin), cut)
}

func (s *sheet) line(a, b vec.Vec2) {
	s.path((&outline.Outline{Start: a, Open: true}).LineTo(b), drawing.GuideLine)
}

// centerHole adds the hole for the cutter, optionally with the recess for
// a guide bushing.
func (s *sheet) centerHole(bushing bool) {
	if bushing {
		s.hole(vec.Vec2{}, bushingFlange, drawing.PocketCut)
	}
	s.hole(vec.Vec2{}, bushingHole, drawing.InsideCut)
}

// mounting adds the footprint and the countersunk mounting holes of b.
func (s *sheet) mounting(b Base) {
	s.path(b.Footprint(), drawing.GuideLine)
	for _, c := range b.MountingHoles() {
		s.hole(c, countersinkDiameter, drawing.PocketCut)
		s.hole(c, mountingHole, drawing.InsideCut)
	}
}

// Plate returns a sub-base for a single router base. The plate of the
// fixed base is round. The plate of the plunge base is a rectangle with
// rounded corners.
func Plate(b Base, opt Options) (*drawing.Drawing, error) {
	if b != DW6184 && b != DW6182 {
		return nil, fmt.Errorf("%w: unknown base %s", ErrInvalidOptions, b)
	}
	m := opt.Margin
	if m == 0 {
		m = defaultPlateMargin
	}
	if !(m > 0) {
		return nil, fmt.Errorf("%w: margin %g", ErrInvalidOptions, m)
	}

	w, h := b.Size()
	w += 2 * m
	h += 2 * m
	title := fmt.Sprintf("%s sub-base, pocket depth %g in", b, CountersinkDepth)
	s := newSheet(title, w, h, vec.Vec2{X: w / 2, Y: h / 2})
	if b == DW6184 {
		s.hole(vec.Vec2{}, w, drawing.OutsideCut)
	} else {
		s.path(roundedRect(-w/2, -h/2, w/2, h/2, roundedCornerRadius), drawing.OutsideCut)
	}
	s.mounting(b)
	s.centerHole(opt.Bushing)
	return s.d, nil
}

// roundedRect returns a clockwise rectangle with rounded corners.
func roundedRect(left, top, right, bottom, r float64) *outline.Outline {
	o := &outline.Outline{Start: vec.Vec2{X: left + r, Y: top}}
	o.LineTo(vec.Vec2{X: right - r, Y: top})
	o.ArcTo(vec.Vec2{X: right, Y: top + r}, r, true)
	o.LineTo(vec.Vec2{X: right, Y: bottom - r})
	o.ArcTo(vec.Vec2{X: right - r, Y: bottom}, r, true)
	o.LineTo(vec.Vec2{X: left + r, Y: bottom})
	o.ArcTo(vec.Vec2{X: left, Y: bottom - r}, r, true)
	o.LineTo(vec.Vec2{X: left, Y: top + r})
	o.ArcTo(vec.Vec2{X: left + r, Y: top}, r, true)
	return o
}
