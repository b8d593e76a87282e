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

// Command jigs writes the cut paths of woodworking jigs as SVG, PDF or PNG
// files.
//
// Joining plates are described by a text pattern, with one line per grid
// row and '#' for every cell which gets a hole:
//
//	jigs plate --extrusion 2020 --hole "M5 clearance" -o plate.svg pattern.txt
//
// The hex-key gauge needs no input:
//
//	jigs gauge -o gauge.pdf
//
// Dividing plates and router sub-bases are described by their options:
//
//	jigs dividing --ring 2:24 --ring 2.5:36 -o plate.svg
//	jigs routerbase --bushing dw6184 -o base.svg
package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/pdfdoc"
	"seehuhn.de/go/jigs/svgdoc"
)

type args struct {
	Plate      *plateCmd      `arg:"subcommand:plate" help:"joining plate for aluminium extrusions"`
	Gauge      *gaugeCmd      `arg:"subcommand:gauge" help:"gauge for sorting hex keys by size"`
	Dividing   *dividingCmd   `arg:"subcommand:dividing" help:"dividing plate with rings of index holes"`
	Routerbase *routerbaseCmd `arg:"subcommand:routerbase" help:"sub-bases and edge guide for DW618 routers"`
	List       *listCmd       `arg:"subcommand:list" help:"list the available extrusions and holes"`

	Output  string `arg:"-o,--out" default:"-" help:"output file, .svg, .pdf or .png (- for SVG on stdout)"`
	DPI     int    `arg:"--dpi" default:"100" help:"resolution of PNG output"`
	Verbose bool   `arg:"-v,--verbose" help:"log diagnostic messages"`
	Debug   bool   `arg:"--debug" help:"show cut paths as thin outlines in SVG output"`

	Extrusions string `arg:"--extrusions,env:JIGS_EXTRUSIONS" help:"JSON5 file with extrusion profiles"`
	Holes      string `arg:"--holes,env:JIGS_HOLES" help:"JSON5 file with hole sizes"`
}

func (args) Description() string {
	return "Generates cut paths for CNC-made woodworking jigs."
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch {
	case a.Plate != nil:
		err = a.Plate.run(&a)
	case a.Gauge != nil:
		err = a.Gauge.run(&a)
	case a.Dividing != nil:
		err = a.Dividing.run(&a, os.Stdout)
	case a.Routerbase != nil:
		err = a.Routerbase.run(&a)
	case a.List != nil:
		err = a.List.run(&a, os.Stdout)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

var errFormat = errors.New("unknown output format")

// write stores d in the file named by a.Output, in the format given by
// the file name extension.
func write(a *args, d *drawing.Drawing) error {
	if a.Output == "-" {
		return svgdoc.Write(os.Stdout, d, &svgdoc.Options{Debug: a.Debug})
	}

	ext := strings.ToLower(filepath.Ext(a.Output))
	switch ext {
	case ".pdf":
		if err := pdfdoc.Write(a.Output, d); err != nil {
			return err
		}
	case ".svg", ".png":
		f, err := os.Create(a.Output)
		if err != nil {
			return err
		}
		if ext == ".svg" {
			err = svgdoc.Write(f, d, &svgdoc.Options{Debug: a.Debug})
		} else {
			err = writePNG(f, d, a.DPI)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w %q", errFormat, ext)
	}

	log.Info().Str("file", a.Output).Int("items", len(d.Items)).Msg("written")
	return nil
}

func writePNG(w io.Writer, d *drawing.Drawing, dpi int) error {
	if dpi <= 0 {
		return fmt.Errorf("invalid resolution %d", dpi)
	}
	return png.Encode(w, d.Preview(float64(dpi)))
}
