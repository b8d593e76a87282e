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

package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Layer is a filled or stroked shape in a preview image.
type Layer struct {
	Path path.Path
	Rule Rule
	Gray uint8 // paint colour, 0 is black

	// Width, if positive, strokes the path with this line width instead
	// of filling it. Lines have round caps and joins.
	Width float64
}

// Preview paints the layers onto a white image, in the given order.
//
// The area given by bounds, in drawing coordinates, is mapped onto the
// image with scale pixels per drawing unit. The y axis points down in
// both coordinate systems.
func Preview(layers []Layer, bounds rect.Rect, scale float64) *image.Gray {
	w := int(math.Ceil((bounds.URx - bounds.LLx) * scale))
	h := int(math.Ceil((bounds.URy - bounds.LLy) * scale))
	img := image.NewGray(image.Rect(0, 0, max(w, 0), max(h, 0)))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	if w <= 0 || h <= 0 {
		return img
	}

	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Scale(scale, scale).Translate(-bounds.LLx*scale, -bounds.LLy*scale)
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	for _, l := range layers {
		if l.Path == nil {
			continue
		}
		fg := float32(l.Gray)
		paint := func(y, xMin int, coverage []float32) {
			row := img.Pix[y*img.Stride+xMin:]
			for i, c := range coverage {
				bg := float32(row[i])
				row[i] = uint8(bg + (fg-bg)*c + 0.5)
			}
		}
		if l.Width > 0 {
			r.Width = l.Width
			r.Stroke(l.Path, paint)
		} else {
			r.Fill(l.Path, l.Rule, paint)
		}
	}
	return img
}
