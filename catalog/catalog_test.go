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
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMeasurement(t *testing.T) {
	m := Inches(1)
	if got := m.Millimeters(); got != 25.4 {
		t.Errorf("1 in = %g mm", got)
	}
	m = Millimeters(20)
	if got := m.Inches(); !scalar.EqualWithinAbs(got, 0.787401574803, 1e-9) {
		t.Errorf("20 mm = %g in", got)
	}
	if got := m.In(Millimeter); got != 20 {
		t.Errorf("20 mm = %g mm", got)
	}
	if !Millimeters(3).Less(Inches(1.0 / 8)) {
		t.Error("3 mm should be less than 1/8 in")
	}
	if got := Millimeters(2.5).String(); got != "2.5 mm" {
		t.Errorf("got %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	for _, s := range []string{"in", "inch", "inches"} {
		if u, err := ParseUnit(s); err != nil || u != Inch {
			t.Errorf("%q: got %s, %v", s, u, err)
		}
	}
	if u, err := ParseUnit("mm"); err != nil || u != Millimeter {
		t.Errorf("mm: got %s, %v", u, err)
	}
	if _, err := ParseUnit("furlong"); err == nil {
		t.Error("unknown unit accepted")
	}
}

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		in   string
		want Measurement
	}{
		{"5.5mm", Millimeters(5.5)},
		{"0.25 in", Inches(0.25)},
		{"1/8in", Inches(0.125)},
		{" 3 millimeters ", Millimeters(3)},
		{"-2mm", Millimeters(-2)},
		{"1e-3mm", Millimeters(0.001)},
		{"2.5E+1 mm", Millimeters(25)},
		{"1e1in", Inches(10)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMeasurement(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}

	for _, in := range []string{"", "mm", "5", "5 furlong", "1/0 in", "1.2.3 mm", "1e", "1e+mm", "1e-3"} {
		if _, err := ParseMeasurement(in); err == nil {
			t.Errorf("%q accepted", in)
		}
	}

	// the exponent is part of the number, not of the unit
	_, err := ParseMeasurement("1e-3 furlong")
	if err == nil || !strings.Contains(err.Error(), `"furlong"`) {
		t.Errorf("unexpected error %v", err)
	}

	var m Measurement
	if err := m.UnmarshalText([]byte("2 in")); err != nil || m != Inches(2) {
		t.Errorf("got %s, %v", m, err)
	}
}

func TestDefaults(t *testing.T) {
	ext := DefaultExtrusions()
	if len(ext) == 0 {
		t.Fatal("no default extrusions")
	}
	e, ok := ext.Find("2020")
	if !ok {
		t.Fatal("2020 profile missing")
	}
	if e.Pitch != Millimeters(20) {
		t.Errorf("2020 pitch is %s", e.Pitch)
	}

	holes := DefaultHoles()
	h, ok := holes.Find("#10 clearance")
	if !ok {
		t.Fatal("#10 clearance missing")
	}
	if h.Diameter.Unit != Inch {
		t.Errorf("#10 clearance given in %s", h.Diameter.Unit)
	}
	if _, ok := holes.Find("no such hole"); ok {
		t.Error("found a non-existent hole")
	}
}

func TestLoad(t *testing.T) {
	src := `[
		// comments and trailing commas are allowed
		{name: "a", measurement: 1, units: "inch"},
		{name: "b", measurement: 12.5, units: "mm",},
	]`
	ext, err := LoadExtrusions(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(ext) != 2 || ext[1].Pitch != Millimeters(12.5) {
		t.Errorf("got %v", ext)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"no name":   `[{measurement: 1, units: "mm"}]`,
		"duplicate": `[{name: "a", diameter: 1, units: "mm"}, {name: "a", diameter: 2, units: "mm"}]`,
		"no units":  `[{name: "a", diameter: 1}]`,
		"zero":      `[{name: "a", diameter: 0, units: "mm"}]`,
		"negative":  `[{name: "a", diameter: -3, units: "in"}]`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			if strings.Contains(src, "measurement") {
				_, err = LoadExtrusions(strings.NewReader(src))
			} else {
				_, err = LoadHoles(strings.NewReader(src))
			}
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("got %v, want ErrInvalidEntry", err)
			}
		})
	}

	// decoding errors are reported, but are not validation errors
	for _, src := range []string{`[{name: "a", diameter: 1, units: "cubit"}]`, `[{name: "a", depth: 1}]`, `{`} {
		_, err := LoadHoles(strings.NewReader(src))
		if err == nil || errors.Is(err, ErrInvalidEntry) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestHexKeys(t *testing.T) {
	keys := HexKeys()
	if len(keys) != 23 {
		t.Errorf("%d hex keys", len(keys))
	}
	keys[0] = Millimeters(100)
	if HexKeys()[0] == keys[0] {
		t.Error("HexKeys returned shared storage")
	}
}
