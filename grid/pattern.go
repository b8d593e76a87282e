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

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid from a text pattern.
//
// Each line is one row. The runes '#' and 'X' mark selected cells, '.' and
// ' ' mark unselected cells. Short rows are padded with unselected cells,
// and trailing empty lines are dropped.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]bool
	width := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		var row []bool
		col := 0
		for _, c := range line {
			col++
			switch c {
			case '#', 'X':
				row = append(row, true)
			case '.', ' ':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("line %d, column %d: unexpected %q", lineNo, col, c)
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	g := New(width, len(rows))
	for y, row := range rows {
		for x, sel := range row {
			g.Set(x, y, sel)
		}
	}
	return g, nil
}

// MustParse is like Parse for a string, but panics on error.
// This is intended for fixtures in tests.
func MustParse(pattern string) *Grid {
	g, err := Parse(strings.NewReader(pattern))
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the grid as a text pattern, in the format read by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			if g.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
