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
	"errors"

	"github.com/rs/zerolog/log"

	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/routerbase"
)

type routerbaseCmd struct {
	Part    string  `arg:"positional" default:"edge-guide" help:"dw6184, dw6182, edge-guide or fence"`
	Bushing bool    `arg:"--bushing" help:"add a recess for a template guide bushing"`
	Margin  float64 `arg:"--margin" help:"plate width outside the router base in inches [default: 0.5]"`
}

var errPart = errors.New("unknown part")

func (c *routerbaseCmd) drawing() (*drawing.Drawing, error) {
	opt := routerbase.Options{Bushing: c.Bushing, Margin: c.Margin}
	switch c.Part {
	case "edge-guide":
		g := routerbase.NewEdgeGuide()
		back, front := g.FenceTravel()
		log.Debug().Float64("back", back).Float64("front", front).Msg("fence travel")
		return g.SubBase(opt), nil
	case "fence":
		return routerbase.NewEdgeGuide().Fence(), nil
	}
	base, err := routerbase.ParseBase(c.Part)
	if err != nil {
		return nil, errors.Join(errPart, err)
	}
	return routerbase.Plate(base, opt)
}

func (c *routerbaseCmd) run(a *args) error {
	d, err := c.drawing()
	if err != nil {
		return err
	}
	return write(a, d)
}
