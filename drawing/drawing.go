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

// Package drawing describes a two-dimensional cut drawing: a list of
// outlines and circles, each tagged with the kind of cut the machine should
// make along it.
//
// The styling follows the conventions of the Shaper Origin handheld router:
// the colours used for fill and stroke tell the machine which side of the
// line to cut on. Output formats are implemented by the packages svgdoc
// and pdfdoc, and by Preview.
package drawing

import (
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/outline"
)

// Cut is the kind of cut made along a shape.
type Cut uint8

const (
	// InsideCut keeps the tool inside the shape, for holes and slots.
	InsideCut Cut = iota

	// OutsideCut keeps the tool outside the shape, for part perimeters.
	OutsideCut

	// OnLineCut centres the tool on the line.
	OnLineCut

	// PocketCut clears all material inside the shape.
	PocketCut

	// GuideLine is a reference mark which is not cut.
	GuideLine
)

func (c Cut) String() string {
	switch c {
	case InsideCut:
		return "inside"
	case OutsideCut:
		return "outside"
	case OnLineCut:
		return "on-line"
	case PocketCut:
		return "pocket"
	case GuideLine:
		return "guide"
	default:
		return fmt.Sprintf("Cut(%d)", uint8(c))
	}
}

// Style gives the presentation attributes for one kind of cut.
type Style struct {
	Fill   color.RGBA
	Stroke color.RGBA

	NoFill   bool
	NoStroke bool

	// StrokeWidth is the line width in inches.
	StrokeWidth float64
}

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
	gray  = color.RGBA{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF}
	blue  = color.RGBA{R: 0x00, G: 0x68, B: 0xFF, A: 0xFF}
)

var styles = [...]Style{
	InsideCut:  {Fill: white, Stroke: black, StrokeWidth: 0.01},
	OutsideCut: {Fill: black, Stroke: black, StrokeWidth: 0.01},
	OnLineCut:  {NoFill: true, Stroke: gray, StrokeWidth: 0.01},
	PocketCut:  {Fill: gray, NoStroke: true},
	GuideLine:  {Fill: blue, Stroke: blue, StrokeWidth: 0.01},
}

// Style returns the presentation attributes for c.
func (c Cut) Style() Style {
	if int(c) >= len(styles) {
		return styles[GuideLine]
	}
	return styles[c]
}

// Circle is a circle in drawing coordinates.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Outline returns the circle as a closed outline made of four clockwise
// quarter arcs, starting at the rightmost point.
func (c Circle) Outline() *outline.Outline {
	r := c.Radius
	o := &outline.Outline{Start: c.Center.Add(vec.Vec2{X: r})}
	o.ArcTo(c.Center.Add(vec.Vec2{Y: r}), r, true)
	o.ArcTo(c.Center.Add(vec.Vec2{X: -r}), r, true)
	o.ArcTo(c.Center.Add(vec.Vec2{Y: -r}), r, true)
	o.ArcTo(c.Center.Add(vec.Vec2{X: r}), r, true)
	return o
}

// Item is one shape of a drawing.
// Exactly one of Outline and Circle is set.
type Item struct {
	Cut     Cut
	Outline *outline.Outline
	Circle  *Circle
}

// Style returns the presentation attributes of the item.
// Open outlines are never filled.
func (it Item) Style() Style {
	style := it.Cut.Style()
	if it.Outline != nil && it.Outline.Open {
		style.NoFill = true
	}
	return style
}

// Shape returns the item geometry as an outline.
func (it Item) Shape() *outline.Outline {
	if it.Circle != nil {
		return it.Circle.Outline()
	}
	return it.Outline
}

// Drawing is a list of shapes on a page.
//
// Shapes use drawing coordinates, with the origin at the top-left corner
// of the content area and y growing downwards. The page extends the content
// area by Margin on every side.
type Drawing struct {
	Title string

	Width, Height float64
	Margin        float64
	Unit          catalog.Unit

	Items []Item
}

// AddOutline appends an outline to the drawing.
func (d *Drawing) AddOutline(o *outline.Outline, cut Cut) {
	d.Items = append(d.Items, Item{Cut: cut, Outline: o})
}

// AddCircle appends a circle to the drawing.
func (d *Drawing) AddCircle(center vec.Vec2, radius float64, cut Cut) {
	d.Items = append(d.Items, Item{Cut: cut, Circle: &Circle{Center: center, Radius: radius}})
}

// PageSize returns the size of the page, including the margins.
func (d *Drawing) PageSize() (width, height float64) {
	return d.Width + 2*d.Margin, d.Height + 2*d.Margin
}

// Page returns the page rectangle in drawing coordinates.
func (d *Drawing) Page() rect.Rect {
	return rect.Rect{
		LLx: -d.Margin,
		LLy: -d.Margin,
		URx: d.Width + d.Margin,
		URy: d.Height + d.Margin,
	}
}

// FromInches converts a length in inches to drawing units.
func (d *Drawing) FromInches(x float64) float64 {
	if d.Unit == catalog.Millimeter {
		return x * catalog.MillimetersPerInch
	}
	return x
}

// Count returns the number of items with the given cut.
func (d *Drawing) Count(cut Cut) int {
	n := 0
	for _, it := range d.Items {
		if it.Cut == cut {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing all items.
// The result is the zero rectangle if the drawing has no items.
func (d *Drawing) Bounds() rect.Rect {
	res := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, it := range d.Items {
		var b rect.Rect
		if c := it.Circle; c != nil {
			b = rect.Rect{
				LLx: c.Center.X - c.Radius, LLy: c.Center.Y - c.Radius,
				URx: c.Center.X + c.Radius, URy: c.Center.Y + c.Radius,
			}
		} else {
			b = it.Outline.Bounds()
		}
		res.LLx = min(res.LLx, b.LLx)
		res.LLy = min(res.LLy, b.LLy)
		res.URx = max(res.URx, b.URx)
		res.URy = max(res.URy, b.URy)
	}
	if len(d.Items) == 0 {
		return rect.Rect{}
	}
	return res
}
