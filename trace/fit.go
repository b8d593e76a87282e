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

package trace

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigs/outline"
)

// Tolerance is the length, in drawing units, below which straight
// segments are dropped from the output.
const Tolerance = 1e-4

// Params controls how traced loops are converted to drawing coordinates.
type Params struct {
	// Pitch is the size of one grid cell in drawing units. Must be positive.
	Pitch float64

	// Inset moves every boundary segment towards the interior of the
	// region, by the given distance in drawing units. Negative values
	// grow the region. The absolute value must be less than half the
	// pitch.
	Inset float64

	// Radius is the radius used to round every corner, in drawing units.
	// Zero gives sharp corners.
	Radius float64

	// Origin is the drawing position of lattice point (0, 0).
	Origin vec.Vec2
}

// DefaultParams returns parameters for unit cells with sharp corners.
func DefaultParams() Params {
	return Params{Pitch: 1}
}

// Validate checks that the parameters are usable.
func (p Params) Validate() error {
	for _, x := range []float64{p.Pitch, p.Inset, p.Radius, p.Origin.X, p.Origin.Y} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidParams)
		}
	}
	if p.Pitch <= 0 {
		return fmt.Errorf("%w: pitch %g must be positive", ErrInvalidParams, p.Pitch)
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: radius %g must not be negative", ErrInvalidParams, p.Radius)
	}
	if 2*math.Abs(p.Inset) >= p.Pitch {
		return fmt.Errorf("%w: inset %g must be less than half the pitch", ErrInvalidParams, p.Inset)
	}
	return nil
}

// Contact returns how diagonal contacts must be resolved for the given
// inset. Grown regions overlap at these points and are joined.
func (p Params) Contact() Contact {
	if p.Inset < 0 {
		return Joined
	}
	return Separate
}

func (p Params) position(q Point) vec.Vec2 {
	return p.Origin.Add(q.Vec().Mul(p.Pitch))
}

// Fit converts a loop into an outline.
//
// Every straight run of the loop is shifted towards the region interior
// by p.Inset. Each corner is then replaced by a circular arc of radius
// p.Radius which is tangent to both adjacent runs: convex corners give
// clockwise arcs, concave corners give counter-clockwise arcs. The outline
// starts at the end of the arc for the last corner.
//
// If a run is too short to hold the arcs at both of its ends, the error
// wraps ErrGeometry.
func Fit(l Loop, p Params) (*outline.Outline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	runs, err := Simplify(l)
	if err != nil {
		return nil, err
	}
	n := len(runs)

	// arc end points for the corner at the end of each run
	arcStart := make([]vec.Vec2, n)
	arcEnd := make([]vec.Vec2, n)
	for i, run := range runs {
		next := runs[(i+1)%n]
		shift := run.Side.Normal().Add(next.Side.Normal()).Mul(p.Inset)
		c := p.position(run.To).Sub(shift)
		arcStart[i] = c.Sub(run.Side.Direction().Mul(p.Radius))
		arcEnd[i] = c.Add(next.Side.Direction().Mul(p.Radius))
	}

	o := &outline.Outline{Start: arcEnd[n-1]}
	for i, run := range runs {
		from := arcEnd[(i+n-1)%n]
		length := arcStart[i].Sub(from).Dot(run.Side.Direction())
		if length < -Tolerance {
			return nil, fmt.Errorf("%w: run %s-%s is %g units too short",
				ErrGeometry, run.From, run.To, -length)
		}
		if length > Tolerance {
			o.LineTo(arcStart[i])
		}
		if p.Radius > 0 {
			o.ArcTo(arcEnd[i], p.Radius, run.End == Convex)
		}
	}
	if len(o.Segments) == 0 {
		return nil, fmt.Errorf("%w: outline collapsed to a point", ErrGeometry)
	}
	return o, nil
}
