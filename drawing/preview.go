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

package drawing

import (
	"image"
	"image/color"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/raster"
)

// minStrokePixels is the smallest line width used in previews.
const minStrokePixels = 1.5

// Preview renders the drawing into a grayscale image with the given
// resolution in pixels per inch. Colours are converted to gray.
func (d *Drawing) Preview(dpi float64) *image.Gray {
	scale := dpi
	if d.Unit == catalog.Millimeter {
		scale = dpi / catalog.MillimetersPerInch
	}

	var layers []raster.Layer
	for _, it := range d.Items {
		style := it.Style()
		p := it.Shape().Path()
		if !style.NoFill {
			layers = append(layers, raster.Layer{Path: p, Gray: toGray(style.Fill)})
		}
		if !style.NoStroke {
			w := max(d.FromInches(style.StrokeWidth), minStrokePixels/scale)
			layers = append(layers, raster.Layer{Path: p, Gray: toGray(style.Stroke), Width: w})
		}
	}
	return raster.Preview(layers, d.Page(), scale)
}

func toGray(c color.RGBA) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
