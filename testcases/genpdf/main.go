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

// Command genpdf writes every test case as a PDF file and as a PNG preview
// into testdata/reference. If Ghostscript is installed, the PDF files are
// also rendered by Ghostscript, for comparison with the previews.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/pdfdoc"
	"seehuhn.de/go/jigs/testcases"
	"seehuhn.de/go/jigs/trace"
)

const (
	refDir = "testdata/reference"
	dpi    = 72
)

var params = trace.Params{Pitch: 10, Inset: 1, Radius: 1.5}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}
	gs, _ := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			d, err := fixtureDrawing(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := pdfdoc.Write(pdfPath, d); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePreview(filepath.Join(refDir, name+".png"), d); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if gs != "" {
				if err := renderPNG(gs, pdfPath, filepath.Join(refDir, name+".gs.png")); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func fixtureDrawing(name string, tc testcases.Case) (*drawing.Drawing, error) {
	g := grid.MustParse(tc.Pattern)
	outlines, err := trace.Trace(g, params)
	if err != nil {
		return nil, err
	}
	d := &drawing.Drawing{
		Title:  name,
		Width:  float64(g.Width()) * params.Pitch,
		Height: float64(g.Height()) * params.Pitch,
		Margin: params.Pitch / 2,
		Unit:   catalog.Millimeter,
	}
	for _, o := range outlines {
		cut := drawing.OutsideCut
		if o.IsHole() {
			cut = drawing.InsideCut
		}
		d.AddOutline(o, cut)
	}
	return d, nil
}

func writePreview(fname string, d *drawing.Drawing) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, d.Preview(dpi))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, like the previews
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		fmt.Sprintf("-r%d", dpi),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
