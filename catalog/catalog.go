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

// Package catalog holds the tables of extrusion profiles and hole sizes
// which parametrize the joining plate drawings.
//
// Catalogs are stored as JSON5 files. Every entry carries an explicit unit,
// and all entries are validated when a catalog is loaded.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/titanous/json5"
)

// ErrInvalidEntry is returned when a catalog entry fails validation.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Extrusion describes an aluminium extrusion profile. Holes in a joining
// plate are spaced by the profile pitch.
type Extrusion struct {
	Name  string
	Pitch Measurement
}

// Hole describes the size of a drilled hole.
type Hole struct {
	Name     string
	Diameter Measurement
}

// Extrusions is a list of extrusion profiles.
type Extrusions []Extrusion

// Holes is a list of hole sizes.
type Holes []Hole

// Find returns the profile with the given name.
func (l Extrusions) Find(name string) (Extrusion, bool) {
	for _, e := range l {
		if e.Name == name {
			return e, true
		}
	}
	return Extrusion{}, false
}

// Find returns the hole size with the given name.
func (l Holes) Find(name string) (Hole, bool) {
	for _, h := range l {
		if h.Name == name {
			return h, true
		}
	}
	return Hole{}, false
}

// extrusionRecord and holeRecord give the file format of the catalogs.
type extrusionRecord struct {
	Name        string  `json:"name"`
	Measurement float64 `json:"measurement"`
	Units       *Unit   `json:"units"`
}

type holeRecord struct {
	Name     string  `json:"name"`
	Diameter float64 `json:"diameter"`
	Units    *Unit   `json:"units"`
}

// checker collects the validation rules shared by both catalogs.
type checker struct {
	seen map[string]bool
}

func (c *checker) check(i int, name string, value float64, unit *Unit) (Measurement, error) {
	switch {
	case name == "":
		return Measurement{}, fmt.Errorf("%w: entry %d has no name", ErrInvalidEntry, i)
	case c.seen[name]:
		return Measurement{}, fmt.Errorf("%w: duplicate name %q", ErrInvalidEntry, name)
	case unit == nil:
		return Measurement{}, fmt.Errorf("%w: %q has no units", ErrInvalidEntry, name)
	case !(value > 0) || math.IsInf(value, 0):
		return Measurement{}, fmt.Errorf("%w: %q has invalid size %g", ErrInvalidEntry, name, value)
	}
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	c.seen[name] = true
	return Measurement{Value: value, Unit: *unit}, nil
}

// decode reads a JSON5 array of objects into v. Objects may only use the
// given field names.
func decode(r io.Reader, v any, fields ...string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var raw []map[string]any
	if err := json5.Unmarshal(data, &raw); err != nil {
		return err
	}
	for i, obj := range raw {
		for key := range obj {
			if !slices.Contains(fields, key) {
				return fmt.Errorf("entry %d: unknown field %q", i, key)
			}
		}
	}
	return json5.Unmarshal(data, v)
}

// LoadExtrusions reads a list of extrusion profiles.
// The input is a JSON5 array of objects with the fields "name",
// "measurement" and "units".
func LoadExtrusions(r io.Reader) (Extrusions, error) {
	var records []extrusionRecord
	if err := decode(r, &records, "name", "measurement", "units"); err != nil {
		return nil, fmt.Errorf("extrusion catalog: %w", err)
	}

	var c checker
	res := make(Extrusions, 0, len(records))
	for i, rec := range records {
		m, err := c.check(i, rec.Name, rec.Measurement, rec.Units)
		if err != nil {
			return nil, fmt.Errorf("extrusion catalog: %w", err)
		}
		res = append(res, Extrusion{Name: rec.Name, Pitch: m})
	}
	return res, nil
}

// LoadHoles reads a list of hole sizes.
// The input is a JSON5 array of objects with the fields "name", "diameter"
// and "units".
func LoadHoles(r io.Reader) (Holes, error) {
	var records []holeRecord
	if err := decode(r, &records, "name", "diameter", "units"); err != nil {
		return nil, fmt.Errorf("hole catalog: %w", err)
	}

	var c checker
	res := make(Holes, 0, len(records))
	for i, rec := range records {
		m, err := c.check(i, rec.Name, rec.Diameter, rec.Units)
		if err != nil {
			return nil, fmt.Errorf("hole catalog: %w", err)
		}
		res = append(res, Hole{Name: rec.Name, Diameter: m})
	}
	return res, nil
}

var (
	//go:embed data/extrusions.json5
	extrusionsJSON5 []byte

	//go:embed data/holes.json5
	holesJSON5 []byte
)

// DefaultExtrusions returns the built-in list of extrusion profiles.
func DefaultExtrusions() Extrusions {
	l, err := LoadExtrusions(bytes.NewReader(extrusionsJSON5))
	if err != nil {
		panic(err) // the embedded data is checked by the tests
	}
	return l
}

// DefaultHoles returns the built-in list of hole sizes.
func DefaultHoles() Holes {
	l, err := LoadHoles(bytes.NewReader(holesJSON5))
	if err != nil {
		panic(err)
	}
	return l
}
