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

package catalog

// DefaultCutter is the diameter of the end mill used for the gauges.
var DefaultCutter = Inches(1.0 / 8)

// hexKeys lists common hex key sizes, measured across flats.
var hexKeys = []Measurement{
	Inches(1.0 / 16),
	Inches(5.0 / 64),
	Inches(3.0 / 32),
	Millimeters(2.5),
	Inches(7.0 / 64),
	Millimeters(3),
	Inches(1.0 / 8),
	Inches(9.0 / 64),
	Inches(9.0 / 32),
	Millimeters(4),
	Inches(3.0 / 16),
	Millimeters(5),
	Inches(7.0 / 32),
	Millimeters(6),
	Inches(1.0 / 4),
	Inches(5.0 / 16),
	Millimeters(8),
	Inches(3.0 / 8),
	Millimeters(10),
	Millimeters(12),
	Millimeters(14),
	Millimeters(17),
	Millimeters(19),
}

// HexKeys returns the sizes of common hex keys.
// The caller may modify the returned slice.
func HexKeys() []Measurement {
	res := make([]Measurement, len(hexKeys))
	copy(res, hexKeys)
	return res
}
