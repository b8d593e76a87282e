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

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/dividing"
)

type dividingCmd struct {
	Unit      catalog.Unit    `arg:"--unit" default:"in" help:"unit for all lengths, in or mm"`
	Diameter  float64         `arg:"--diameter" default:"6" help:"plate diameter"`
	Hub       float64         `arg:"--hub" default:"1" help:"diameter of the centre hole, 0 for none"`
	IndexHole float64         `arg:"--index-hole" default:"0.125" help:"diameter of the index holes, 0 for V marks"`
	Rings     []dividing.Ring `arg:"--ring,separate" help:"ring of holes as radius:count, may be repeated [default: 1.5:24 2:36 2.5:60]"`
	Table     bool            `arg:"--table" help:"print the hole positions"`
}

func (c *dividingCmd) run(a *args, w io.Writer) error {
	cfg := dividing.Config{
		Unit:      c.Unit,
		Plate:     c.Diameter,
		Hub:       c.Hub,
		IndexHole: c.IndexHole,
		Rings:     c.Rings,
	}
	if len(cfg.Rings) == 0 {
		cfg.Rings = dividing.DefaultConfig().Rings
	}
	p, err := dividing.Layout(cfg)
	if err != nil {
		return err
	}
	log.Debug().Int("rings", len(p.Rings)).Float64("tick", p.Tick).Msg("dividing plate laid out")

	if c.Table {
		if err := writeHoles(w, p); err != nil {
			return err
		}
	}
	return write(a, p.Drawing())
}

func writeHoles(w io.Writer, p *dividing.Plate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "RING\tCOUNT\tHOLE\tANGLE\tX\tY\t")
	prec := 5
	if p.Unit == catalog.Millimeter {
		prec = 2
	}
	for _, h := range p.Holes() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\t%.*f\t%.*f\t\n",
			h.Ring+1, p.Rings[h.Ring].Count, h.Index+1, h.Angle,
			prec, h.Center.X, prec, h.Center.Y)
	}
	return tw.Flush()
}
