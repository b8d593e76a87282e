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

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MillimetersPerInch is the exact length of one inch.
const MillimetersPerInch = 25.4

// Unit is a unit of length.
type Unit uint8

const (
	Inch Unit = iota + 1
	Millimeter
)

// ParseUnit converts a unit name to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "in", "inch", "inches", "\"":
		return Inch, nil
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", s)
	}
}

func (u Unit) String() string {
	switch u {
	case Inch:
		return "in"
	case Millimeter:
		return "mm"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// numberEnd returns the length of the numeric prefix of s. The letter e
// only starts an exponent if a digit follows, possibly after a sign.
func numberEnd(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c), c == '.', c == '/', c == '-', c == '+':
		case c == 'e' || c == 'E':
			rest := s[i+1:]
			if rest != "" && (rest[0] == '+' || rest[0] == '-') {
				rest = rest[1:]
			}
			if rest == "" || !isDigit(rest[0]) {
				return i
			}
		default:
			return i
		}
	}
	return len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (u Unit) MarshalText() ([]byte, error) {
	if u != Inch && u != Millimeter {
		return nil, fmt.Errorf("invalid unit %d", u)
	}
	return []byte(u.String()), nil
}

// Measurement is a length together with its unit.
type Measurement struct {
	Value float64
	Unit  Unit
}

// Inches returns a measurement in inches.
func Inches(v float64) Measurement {
	return Measurement{Value: v, Unit: Inch}
}

// Millimeters returns a measurement in millimeters.
func Millimeters(v float64) Measurement {
	return Measurement{Value: v, Unit: Millimeter}
}

// In returns the length in the given unit.
func (m Measurement) In(u Unit) float64 {
	switch {
	case m.Unit == u:
		return m.Value
	case u == Inch:
		return m.Value / MillimetersPerInch
	default:
		return m.Value * MillimetersPerInch
	}
}

// Inches returns the length in inches.
func (m Measurement) Inches() float64 { return m.In(Inch) }

// Millimeters returns the length in millimeters.
func (m Measurement) Millimeters() float64 { return m.In(Millimeter) }

func (m Measurement) String() string {
	return strconv.FormatFloat(m.Value, 'g', -1, 64) + " " + m.Unit.String()
}

// Less reports whether m is shorter than other.
func (m Measurement) Less(other Measurement) bool {
	return m.Inches() < other.Inches()
}

// ParseMeasurement reads a length like "5.5mm", "0.25 in", "1/8in" or
// "1e-3 mm". The unit is required.
func ParseMeasurement(s string) (Measurement, error) {
	s = strings.TrimSpace(s)
	split := numberEnd(s)
	if split <= 0 || split == len(s) {
		return Measurement{}, fmt.Errorf("invalid measurement %q", s)
	}
	unit, err := ParseUnit(strings.TrimSpace(s[split:]))
	if err != nil {
		return Measurement{}, err
	}

	num := s[:split]
	var value float64
	if a, b, ok := strings.Cut(num, "/"); ok {
		p, err1 := strconv.ParseFloat(a, 64)
		q, err2 := strconv.ParseFloat(b, 64)
		if err1 != nil || err2 != nil || q == 0 {
			return Measurement{}, fmt.Errorf("invalid fraction %q", num)
		}
		value = p / q
	} else {
		value, err = strconv.ParseFloat(num, 64)
		if err != nil {
			return Measurement{}, fmt.Errorf("invalid measurement %q", s)
		}
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Measurement{}, fmt.Errorf("invalid measurement %q", s)
	}
	return Measurement{Value: value, Unit: unit}, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Measurement) UnmarshalText(text []byte) error {
	v, err := ParseMeasurement(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
