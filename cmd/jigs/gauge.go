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
	"github.com/rs/zerolog/log"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/gauge"
)

type gaugeCmd struct {
	Cutter *catalog.Measurement `arg:"--cutter" help:"end mill diameter, e.g. 3mm [default: 1/8 in]"`
}

func (c *gaugeCmd) run(a *args) error {
	cutter := catalog.DefaultCutter
	if c.Cutter != nil {
		cutter = *c.Cutter
	}
	g, err := gauge.Layout(catalog.HexKeys(), cutter)
	if err != nil {
		return err
	}
	log.Debug().Int("steps", len(g.Steps)).Float64("width", g.Width).Msg("gauge laid out")
	return write(a, g.Drawing())
}
