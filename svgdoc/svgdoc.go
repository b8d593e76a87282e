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

// Package svgdoc writes cut drawings as SVG files.
package svgdoc

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/outline"
)

// Options controls the SVG output.
type Options struct {
	// Decimals is the number of decimal places for coordinates.
	// Zero selects outline.DefaultDecimals.
	Decimals int

	// Debug draws all shapes as thin magenta lines without fill, instead
	// of using the cut styles.
	Debug bool
}

// debugCSS is the style sheet used in debug mode.
const debugCSS = ".debug-shapes { fill: none; stroke: #FF00FF; stroke-width: 0.5px; vector-effect: non-scaling-stroke; }"

// Write writes d as an SVG document to w.
//
// Width and height of the document are given in the drawing unit, and the
// view box uses drawing units, so that one unit in the drawing corresponds
// to one physical unit. Content is placed in a group which is translated
// by the drawing margin.
func Write(w io.Writer, d *drawing.Drawing, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	decimals := opt.Decimals
	if decimals <= 0 {
		decimals = outline.DefaultDecimals
	}

	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Decimals = decimals

	pw, ph := d.PageSize()
	s.StartviewUnit(pw, ph, d.Unit.String(), 0, 0, pw, ph)
	if d.Title != "" {
		s.Title(d.Title)
	}
	if opt.Debug {
		s.Style("text/css", debugCSS)
	}
	s.Translate(d.Margin, d.Margin)
	for i, it := range d.Items {
		var attr []string
		if opt.Debug {
			attr = []string{`class="debug-shapes"`}
		} else {
			attr = attributes(it.Style(), d)
		}

		switch {
		case it.Circle != nil:
			c := it.Circle
			s.Circle(c.Center.X, c.Center.Y, c.Radius, attr...)
		case it.Outline != nil:
			s.Path(it.Outline.SVG(decimals), attr...)
		default:
			return fmt.Errorf("item %d has no geometry", i)
		}
	}
	s.Gend()
	s.End()
	return ew.err
}

// attributes returns the SVG presentation attributes for a cut style.
func attributes(style drawing.Style, d *drawing.Drawing) []string {
	attr := make([]string, 0, 4)
	if style.NoFill {
		attr = append(attr, `fill="none"`)
	} else {
		attr = append(attr, `fill="`+hex(style.Fill)+`"`)
	}
	if style.NoStroke {
		attr = append(attr, `stroke="none"`)
	} else {
		attr = append(attr, `stroke="`+hex(style.Stroke)+`"`)
		if style.StrokeWidth > 0 {
			sw := strconv.FormatFloat(d.FromInches(style.StrokeWidth), 'g', 6, 64)
			attr = append(attr, `stroke-width="`+sw+`"`)
		}
	}
	attr = append(attr, `opacity="1.0"`)
	return attr
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// errWriter keeps the first write error, since the SVG writer ignores
// errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
