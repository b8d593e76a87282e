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

// Package joining generates the cut paths of joining plates for aluminium
// extrusions.
//
// A joining plate covers a set of cells of a rectangular grid, with one
// hole drilled in the centre of every covered cell. The grid spacing is
// the slot pitch of the extrusion. The outline of the plate follows the
// boundary of the covered cells, grown by a margin and with corners rounded
// to the radius of the cutter.
package joining

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/trace"
)

// Build computes the drawing of the plate which covers the selected cells
// of g. All lengths in the drawing are in inches.
//
// Cells outside the configured Columns × Rows are ignored. If no cell is
// selected, the drawing only contains the guide circles (if enabled).
func Build(g grid.Reader, cfg Config) (*drawing.Drawing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pitch := cfg.Extrusion.Pitch.Inches()
	margin := cfg.Margin.Inches()

	d := &drawing.Drawing{
		Title:  fmt.Sprintf("Joining plate, %s, %s", cfg.Extrusion.Name, cfg.Hole.Name),
		Width:  float64(cfg.Columns) * pitch,
		Height: float64(cfg.Rows) * pitch,
		Margin: margin + PageMargin,
		Unit:   catalog.Inch,
	}

	sel := window{g, cfg.Columns, cfg.Rows}
	params := trace.Params{
		Pitch:  pitch,
		Inset:  -margin,
		Radius: cfg.Cutter.Inches() / 2,
	}
	outlines, err := trace.Trace(sel, params)
	if err != nil {
		return nil, err
	}
	for _, o := range outlines {
		cut := drawing.OutsideCut
		if o.IsHole() {
			cut = drawing.InsideCut
		}
		d.AddOutline(o, cut)
	}

	r := cfg.Hole.Diameter.Inches() / 2
	for y := range cfg.Rows {
		for x := range cfg.Columns {
			center := vec.Vec2{X: (float64(x) + 0.5) * pitch, Y: (float64(y) + 0.5) * pitch}
			switch {
			case sel.Get(x, y):
				d.AddCircle(center, r, drawing.InsideCut)
			case cfg.Guides:
				d.AddCircle(center, r, drawing.GuideLine)
			}
		}
	}
	return d, nil
}

// window restricts a grid to its top-left Columns × Rows cells.
type window struct {
	g             grid.Reader
	width, height int
}

func (w window) Width() int  { return min(w.width, w.g.Width()) }
func (w window) Height() int { return min(w.height, w.g.Height()) }

func (w window) Get(x, y int) bool {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return false
	}
	return w.g.Get(x, y)
}
