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

package joining

import (
	"errors"
	"fmt"

	"seehuhn.de/go/jigs/catalog"
)

// ErrInvalidConfig is returned for unusable plate parameters.
var ErrInvalidConfig = errors.New("invalid joining plate configuration")

// PageMargin is the space around the plate in the output documents,
// in inches.
const PageMargin = 0.25

// MaxCells limits the number of grid rows and columns.
const MaxCells = 100

// Config holds the parameters of a joining plate.
type Config struct {
	// Extrusion determines the distance between neighbouring holes.
	Extrusion catalog.Extrusion

	// Hole is the diameter of the drilled holes.
	Hole catalog.Hole

	// Columns and Rows give the size of the hole grid.
	Columns, Rows int

	// Margin is the distance between the plate edge and the boundary of
	// the grid cells of the drilled holes.
	Margin catalog.Measurement

	// Cutter is the diameter of the end mill used to cut the plate.
	// Inside corners of the plate are rounded to the cutter radius.
	Cutter catalog.Measurement

	// Guides adds guide circles for the positions which are not drilled.
	Guides bool
}

// DefaultConfig returns the parameters for a 10×10 plate for 2020
// extrusions with M5 clearance holes.
func DefaultConfig() Config {
	ext, _ := catalog.DefaultExtrusions().Find("2020")
	hole, _ := catalog.DefaultHoles().Find("M5 clearance")
	return Config{
		Extrusion: ext,
		Hole:      hole,
		Columns:   10,
		Rows:      10,
		Margin:    catalog.Inches(1.0 / 16),
		Cutter:    catalog.DefaultCutter,
		Guides:    true,
	}
}

// Validate checks that the configuration describes a plate which can be
// drawn.
func (c Config) Validate() error {
	pitch := c.Extrusion.Pitch.Inches()
	switch {
	case c.Columns <= 0 || c.Rows <= 0 || c.Columns > MaxCells || c.Rows > MaxCells:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Columns, c.Rows)
	case !(pitch > 0):
		return fmt.Errorf("%w: extrusion %q has no pitch", ErrInvalidConfig, c.Extrusion.Name)
	case !(c.Hole.Diameter.Value > 0):
		return fmt.Errorf("%w: hole %q has no diameter", ErrInvalidConfig, c.Hole.Name)
	case c.Hole.Diameter.Inches() >= pitch:
		return fmt.Errorf("%w: hole %s does not fit between extrusion slots %s",
			ErrInvalidConfig, c.Hole.Diameter, c.Extrusion.Pitch)
	case c.Margin.Value < 0:
		return fmt.Errorf("%w: negative margin %s", ErrInvalidConfig, c.Margin)
	case 2*c.Margin.Inches() >= pitch:
		return fmt.Errorf("%w: margin %s closes the gap between plates", ErrInvalidConfig, c.Margin)
	case c.Cutter.Value < 0:
		return fmt.Errorf("%w: negative cutter diameter %s", ErrInvalidConfig, c.Cutter)
	}
	return nil
}
