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

// Package pdfdoc writes cut drawings as single-page PDF files.
//
// The page has the physical size of the drawing, so that a printout at
// 100% scale can be used as a template.
package pdfdoc

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
)

// pointsPerInch is the PDF user space unit.
const pointsPerInch = 72

// Write writes d to a new PDF file.
// All colours are converted to gray.
func Write(fname string, d *drawing.Drawing) error {
	scale := float64(pointsPerInch)
	if d.Unit == catalog.Millimeter {
		scale /= catalog.MillimetersPerInch
	}
	pw, ph := d.PageSize()
	paper := &pdf.Rectangle{URx: pw * scale, URy: ph * scale}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// drawing coordinates have y pointing down and the origin inside
	// the margin
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, d.Margin * scale, paper.URy - d.Margin*scale})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, it := range d.Items {
		style := it.Style()
		p := it.Shape().Path()
		addPath := func() {
			for cmd, pts := range p.ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
		}

		if !style.NoFill {
			page.SetFillColor(pdfcolor.DeviceGray(grayLevel(style.Fill)))
			addPath()
			page.Fill()
		}
		if !style.NoStroke {
			page.SetStrokeColor(pdfcolor.DeviceGray(grayLevel(style.Stroke)))
			page.SetLineWidth(d.FromInches(style.StrokeWidth))
			addPath()
			page.Stroke()
		}
	}
	return page.Close()
}

// grayLevel converts c to a gray value between 0 (black) and 1 (white).
func grayLevel(c color.RGBA) float64 {
	g := color.GrayModel.Convert(c).(color.Gray)
	return float64(g.Y) / 255
}
