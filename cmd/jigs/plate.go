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
	"os"

	"github.com/rs/zerolog/log"

	"seehuhn.de/go/jigs/catalog"
	"seehuhn.de/go/jigs/grid"
	"seehuhn.de/go/jigs/joining"
)

type plateCmd struct {
	Pattern string `arg:"positional,required" help:"text file with one line per row, '#' marks a hole"`

	Extrusion string               `arg:"-e,--extrusion" default:"2020" help:"extrusion profile name"`
	Hole      string               `arg:"-H,--hole" default:"M5 clearance" help:"hole size name"`
	Margin    *catalog.Measurement `arg:"--margin" help:"plate margin around the grid cells, e.g. 2mm [default: 1/16 in]"`
	Cutter    *catalog.Measurement `arg:"--cutter" help:"end mill diameter, e.g. 3mm [default: 1/8 in]"`
	NoGuides  bool                 `arg:"--no-guides" help:"omit guide circles for undrilled positions"`
}

func (c *plateCmd) config(a *args) (joining.Config, error) {
	cfg := joining.DefaultConfig()

	extrusions, holes, err := loadCatalogs(a)
	if err != nil {
		return cfg, err
	}
	ext, ok := extrusions.Find(c.Extrusion)
	if !ok {
		return cfg, fmt.Errorf("unknown extrusion %q", c.Extrusion)
	}
	hole, ok := holes.Find(c.Hole)
	if !ok {
		return cfg, fmt.Errorf("unknown hole size %q", c.Hole)
	}
	cfg.Extrusion = ext
	cfg.Hole = hole
	if c.Margin != nil {
		cfg.Margin = *c.Margin
	}
	if c.Cutter != nil {
		cfg.Cutter = *c.Cutter
	}
	cfg.Guides = !c.NoGuides
	return cfg, nil
}

func (c *plateCmd) run(a *args) error {
	cfg, err := c.config(a)
	if err != nil {
		return err
	}

	f, err := os.Open(c.Pattern)
	if err != nil {
		return err
	}
	g, err := grid.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", c.Pattern, err)
	}
	cfg.Columns = g.Width()
	cfg.Rows = g.Height()

	s, err := joining.NewSession(cfg)
	if err != nil {
		return err
	}
	s.Logger = log.Logger
	s.Load(g)
	d, err := s.Refresh()
	if err != nil {
		return err
	}
	return write(a, d)
}

// loadCatalogs returns the built-in catalogs, replaced by the contents of
// the files given on the command line.
func loadCatalogs(a *args) (catalog.Extrusions, catalog.Holes, error) {
	extrusions := catalog.DefaultExtrusions()
	holes := catalog.DefaultHoles()
	if a.Extrusions != "" {
		f, err := os.Open(a.Extrusions)
		if err != nil {
			return nil, nil, err
		}
		extrusions, err = catalog.LoadExtrusions(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", a.Extrusions, err)
		}
		log.Debug().Str("file", a.Extrusions).Int("entries", len(extrusions)).Msg("extrusions loaded")
	}
	if a.Holes != "" {
		f, err := os.Open(a.Holes)
		if err != nil {
			return nil, nil, err
		}
		holes, err = catalog.LoadHoles(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", a.Holes, err)
		}
		log.Debug().Str("file", a.Holes).Int("entries", len(holes)).Msg("holes loaded")
	}
	return extrusions, holes, nil
}
