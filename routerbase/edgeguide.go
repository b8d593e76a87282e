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

package routerbase

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/outline"
)

const (
	gridSpacing = 0.5

	washerDiameter  = 1.0 // 1/4 inch fender washer
	knobDiameter    = 1.5
	screwClearance  = 0.2660 // free fit for 1/4-20 machine screws
	stopPinInset    = 0.5
	stopPinDiameter = 0.25
	pivotDiameter   = 0.25
	pivotDistance   = 3.5
	cutterClearance = 0.5
)

// EdgeGuide is a sub-base which fits both router bases, together with a
// fence. The fence is held by two screws which run in slots of the
// sub-base, so that its distance from the cutter can be adjusted.
//
// Positions are measured from the spindle. X runs parallel to the fence
// and y towards the front.
type EdgeGuide struct {
	HalfWidth   float64
	Back, Front float64 // y positions of the sub-base edges

	SlotWidth  float64
	SlotCenter float64 // x position of the right slot

	// Clearance is the radius which the washers and knobs on the
	// fence screws need.
	Clearance float64

	FenceHeight float64
}

// NewEdgeGuide returns an edge guide which fits the larger of the two
// router bases in either direction.
func NewEdgeGuide() *EdgeGuide {
	w6, d6 := DW6182.Size()
	w4, d4 := DW6184.Size()
	baseX := max(w6, w4) / 2
	baseY := max(d6, d4) / 2

	g := &EdgeGuide{
		Back:        -baseY - 1,
		Front:       baseY + 2,
		SlotWidth:   screwClearance,
		Clearance:   max(washerDiameter, knobDiameter) / 2,
		FenceHeight: 1 + cutterClearance,
	}
	beyondSlot := 1.0
	g.HalfWidth = baseX + 2*g.Clearance + g.SlotWidth + beyondSlot
	g.SlotCenter = g.HalfWidth - beyondSlot - g.SlotWidth/2
	return g
}

// FenceTravel returns the range of distances between the spindle and the
// fence screws.
func (g *EdgeGuide) FenceTravel() (back, front float64) {
	offset := g.FenceHeight / 2
	return g.Back + g.Clearance + offset, g.Front - g.Clearance - offset
}

// SubBase returns the drawing of the sub-base. It carries the mounting
// holes of both router bases, the two fence slots, a hole for a stop pin
// and two pivot holes for centring mortises.
func (g *EdgeGuide) SubBase(opt Options) *drawing.Drawing {
	w := 2 * g.HalfWidth
	h := g.Front - g.Back
	title := fmt.Sprintf("edge guide sub-base, pocket depth %g in", CountersinkDepth)
	s := newSheet(title, w, h, vec.Vec2{X: g.HalfWidth, Y: -g.Back})

	s.path(roundedRect(-g.HalfWidth, g.Back, g.HalfWidth, g.Front, roundedCornerRadius), drawing.OutsideCut)
	s.centerHole(opt.Bushing)
	s.mounting(DW6184)
	s.mounting(DW6182)

	for _, dir := range []float64{-1, 1} {
		x := dir * g.SlotCenter
		s.path(slot(x, g.Back+g.Clearance, g.Front-g.Clearance, g.SlotWidth), drawing.InsideCut)
		for _, side := range []float64{-1, 1} {
			gx := x + side*(g.SlotWidth/2+g.Clearance)
			s.line(vec.Vec2{X: gx, Y: g.Back}, vec.Vec2{X: gx, Y: g.Front})
		}
	}

	s.hole(vec.Vec2{Y: g.Back + stopPinInset}, stopPinDiameter, drawing.InsideCut)
	s.hole(vec.Vec2{X: -pivotDistance}, pivotDiameter, drawing.InsideCut)
	s.hole(vec.Vec2{X: pivotDistance}, pivotDiameter, drawing.InsideCut)

	// measuring grid: lines across the plate and ticks along the x-axis
	for i := -int(-g.Back / gridSpacing); float64(i)*gridSpacing < g.Front; i++ {
		y := float64(i) * gridSpacing
		if y <= g.Back {
			continue
		}
		s.line(vec.Vec2{X: -g.HalfWidth, Y: y}, vec.Vec2{X: g.HalfWidth, Y: y})
	}
	for i := -int(g.HalfWidth / gridSpacing); i <= int(g.HalfWidth/gridSpacing); i++ {
		x := float64(i) * gridSpacing
		if x <= -g.HalfWidth || x >= g.HalfWidth {
			continue
		}
		s.line(vec.Vec2{X: x, Y: -gridSpacing / 2}, vec.Vec2{X: x, Y: gridSpacing / 2})
	}
	return s.d
}

// Fence returns the drawing of the fence. The top edge of the fence faces
// the cutter and has a notch for it.
func (g *EdgeGuide) Fence() *drawing.Drawing {
	s := newSheet("edge guide fence", 2*g.HalfWidth, g.FenceHeight, vec.Vec2{X: g.HalfWidth})

	left, right := -g.HalfWidth, g.HalfWidth
	bottom := g.FenceHeight
	r := roundedCornerRadius
	c := cutterClearance
	o := &outline.Outline{Start: vec.Vec2{X: left + r}}
	o.LineTo(vec.Vec2{X: -c})
	o.ArcTo(vec.Vec2{Y: c}, c, false)
	o.ArcTo(vec.Vec2{X: c}, c, false)
	o.LineTo(vec.Vec2{X: right - r})
	o.ArcTo(vec.Vec2{X: right, Y: r}, r, true)
	o.LineTo(vec.Vec2{X: right, Y: bottom - r})
	o.ArcTo(vec.Vec2{X: right - r, Y: bottom}, r, true)
	o.LineTo(vec.Vec2{X: left + r, Y: bottom})
	o.ArcTo(vec.Vec2{X: left, Y: bottom - r}, r, true)
	o.LineTo(vec.Vec2{X: left, Y: r})
	o.ArcTo(vec.Vec2{X: left + r}, r, true)
	s.path(o, drawing.OutsideCut)

	mid := g.FenceHeight / 2
	for _, dir := range []float64{-1, 1} {
		center := vec.Vec2{X: dir * g.SlotCenter, Y: mid}
		s.hole(center, screwClearance, drawing.InsideCut)
		clearance := drawing.Circle{Center: center, Radius: g.Clearance}.Outline()
		clearance.Open = true
		s.path(clearance, drawing.GuideLine)
	}
	for y := gridSpacing; y < g.FenceHeight; y += gridSpacing {
		s.line(vec.Vec2{X: left, Y: y}, vec.Vec2{X: right, Y: y})
	}
	s.hole(vec.Vec2{X: -pivotDistance, Y: mid}, pivotDiameter, drawing.InsideCut)
	s.hole(vec.Vec2{X: pivotDistance, Y: mid}, pivotDiameter, drawing.InsideCut)
	return s.d
}

// slot returns a clockwise slot of the given width with round ends,
// centred on x and running from top to bottom.
func slot(x, top, bottom, width float64) *outline.Outline {
	r := width / 2
	o := &outline.Outline{Start: vec.Vec2{X: x + r, Y: top}}
	o.LineTo(vec.Vec2{X: x + r, Y: bottom})
	o.ArcTo(vec.Vec2{X: x, Y: bottom + r}, r, true)
	o.ArcTo(vec.Vec2{X: x - r, Y: bottom}, r, true)
	o.LineTo(vec.Vec2{X: x - r, Y: top})
	o.ArcTo(vec.Vec2{X: x, Y: top - r}, r, true)
	o.ArcTo(vec.Vec2{X: x + r, Y: top}, r, true)
	return o
}
