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

// Command export writes the traced outlines of all test cases to
// testdata/fixtures.json, and one SVG file per test case to testdata/svg/.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/svgdoc"
	"seehuhn.de/go/jigs/testcases"
	"seehuhn.de/go/jigs/trace"
)

const svgDir = "testdata/svg"

// Cells are 10mm wide, the outline is inset by 1mm and corners are rounded
// for a 3mm cutter.
var params = trace.Params{Pitch: 10, Inset: 1, Radius: 1.5}

func main() {
	if err := os.MkdirAll(svgDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Params   trace.Params  `json:"params"`
		Fixtures []jsonFixture `json:"fixtures"`
	}
	out.Params = params

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fx, d := export(name, tc)
			out.Fixtures = append(out.Fixtures, fx)

			f, err := os.Create(filepath.Join(svgDir, name+".svg"))
			if err != nil {
				panic(err)
			}
			if err := svgdoc.Write(f, d, &svgdoc.Options{Debug: true}); err != nil {
				panic(err)
			}
			if err := f.Close(); err != nil {
				panic(err)
			}
		}
	}

	f, err := os.Create("testdata/fixtures.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonFixture struct {
	Name    string     `json:"name"`
	Pattern string     `json:"pattern"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Edges   int        `json:"edges"`
	Loops   []jsonLoop `json:"loops"`
}

type jsonLoop struct {
	Hole bool    `json:"hole"`
	Area float64 `json:"area"`
	Path string  `json:"path"`
}

func export(name string, tc testcases.Case) (jsonFixture, *drawing.Drawing) {
	g := grid.MustParse(tc.Pattern)
	fx := jsonFixture{
		Name:    name,
		Pattern: tc.Pattern,
		Width:   g.Width(),
		Height:  g.Height(),
		Edges:   len(trace.CancelEdges(trace.ExtractEdges(g))),
	}
	d := &drawing.Drawing{
		Title:  name,
		Width:  float64(g.Width()) * params.Pitch,
		Height: float64(g.Height()) * params.Pitch,
		Margin: params.Pitch / 2,
		Unit:   catalog.Millimeter,
	}

	outlines, err := trace.Trace(g, params)
	if err != nil {
		panic(err)
	}
	for _, o := range outlines {
		fx.Loops = append(fx.Loops, jsonLoop{
			Hole: o.IsHole(),
			Area: o.Area(),
			Path: o.SVG(3),
		})
		cut := drawing.OutsideCut
		if o.IsHole() {
			cut = drawing.InsideCut
		}
		d.AddOutline(o, cut)
	}
	return fx, d
}
