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
)

type listCmd struct{}

func (c *listCmd) run(a *args, w io.Writer) error {
	extrusions, holes, err := loadCatalogs(a)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXTRUSION\tPITCH")
	for _, e := range extrusions {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Pitch)
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "HOLE\tDIAMETER")
	for _, h := range holes {
		fmt.Fprintf(tw, "%s\t%s\n", h.Name, h.Diameter)
	}
	return tw.Flush()
}
