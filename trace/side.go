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

import "seehuhn.de/go/geom/vec"

// Side identifies one of the four sides of a grid cell.
// The sides are numbered clockwise (on screen), starting at the top.
type Side uint8

const (
	North Side = iota
	East
	South
	West
)

// Sides lists all sides in clockwise order.
var Sides = [4]Side{North, East, South, West}

// step holds the outward normal of each side as an integer offset.
var step = [4]Point{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// Normal returns the unit vector pointing from the cell interior
// through side s.
func (s Side) Normal() vec.Vec2 {
	d := step[s&3]
	return vec.Vec2{X: float64(d.X), Y: float64(d.Y)}
}

// Direction returns the unit vector along which the edge on side s is
// traversed. Edges run clockwise around their cell, so that the cell
// interior lies to the right of the direction of travel.
func (s Side) Direction() vec.Vec2 {
	return s.Clockwise().Normal()
}

// Clockwise returns the next side in clockwise order.
func (s Side) Clockwise() Side { return (s + 1) & 3 }

// CounterClockwise returns the next side in counter-clockwise order.
func (s Side) CounterClockwise() Side { return (s + 3) & 3 }

// Opposite returns the side across the cell.
func (s Side) Opposite() Side { return (s + 2) & 3 }

func (s Side) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}
