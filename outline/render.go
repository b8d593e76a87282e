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

package outline

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultDecimals is the number of decimal places used for SVG path data.
const DefaultDecimals = 4

// SVG returns the outline as SVG path data, using absolute coordinates.
//
// The result starts with a single "M" command, followed by "H", "V" or "L"
// commands for straight segments and "A" commands for arcs, and ends with
// "Z" unless the outline is open. Numbers are rounded to the given number of decimal places and
// trailing zeros are removed. Calling SVG repeatedly on the same outline
// gives identical results.
func (o *Outline) SVG(decimals int) string {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	num := func(x float64) string {
		return formatNumber(x, decimals)
	}

	var b strings.Builder
	curX, curY := num(o.Start.X), num(o.Start.Y)
	b.WriteString("M ")
	b.WriteString(curX)
	b.WriteByte(' ')
	b.WriteString(curY)

	for _, seg := range o.Segments {
		x, y := num(seg.To.X), num(seg.To.Y)
		switch seg.Kind {
		case Line:
			switch {
			case x == curX && y == curY:
				continue
			case y == curY:
				b.WriteString(" H ")
				b.WriteString(x)
			case x == curX:
				b.WriteString(" V ")
				b.WriteString(y)
			default:
				b.WriteString(" L ")
				b.WriteString(x)
				b.WriteByte(' ')
				b.WriteString(y)
			}
		case Arc:
			r := num(seg.Radius)
			flag := "0"
			if seg.Sweep {
				flag = "1"
			}
			b.WriteString(" A ")
			b.WriteString(r)
			b.WriteByte(' ')
			b.WriteString(r)
			b.WriteString(" 0 0 ")
			b.WriteString(flag)
			b.WriteByte(' ')
			b.WriteString(x)
			b.WriteByte(' ')
			b.WriteString(y)
		}
		curX, curY = x, y
	}
	if !o.Open {
		b.WriteString(" Z")
	}
	return b.String()
}

// formatNumber formats x with at most the given number of decimals.
func formatNumber(x float64, decimals int) string {
	s := strconv.FormatFloat(x, 'f', decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Path returns the outline as a geom path.
// Arcs are approximated by cubic Bézier curves, using one curve for every
// quarter circle or part thereof.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = o.Start
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		cur := o.Start
		for _, seg := range o.Segments {
			switch seg.Kind {
			case Line:
				buf[0] = seg.To
				if !yield(path.CmdLineTo, buf[:1]) {
					return
				}
			case Arc:
				if !yieldArc(yield, cur, seg) {
					return
				}
			}
			cur = seg.To
		}
		if !o.Open {
			yield(path.CmdClose, nil)
		}
	}
}

// yieldArc passes the curves of the arc from p0 described by seg to yield.
// The result is false if yield asked to stop.
func yieldArc(yield func(path.Command, []vec.Vec2) bool, p0 vec.Vec2, seg Segment) bool {
	var buf [3]vec.Vec2
	center, theta := arcGeometry(p0, seg)
	if theta == 0 || seg.Radius == 0 {
		buf[0] = seg.To
		return yield(path.CmdLineTo, buf[:1])
	}
	r := seg.Radius

	n := int(math.Ceil(theta/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := theta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	// rotate by "step" in the direction of travel
	sign := 1.0
	if !seg.Sweep {
		sign = -1
	}
	sin, cos := math.Sincos(sign * step)

	u := p0.Sub(center).Mul(1 / r)
	start := p0
	for i := range n {
		v := vec.Vec2{X: u.X*cos - u.Y*sin, Y: u.X*sin + u.Y*cos}
		end := center.Add(v.Mul(r))
		if i == n-1 {
			end = seg.To
		}
		t0 := tangent(u, seg.Sweep)
		t1 := tangent(v, seg.Sweep)
		buf[0] = start.Add(t0.Mul(k))
		buf[1] = end.Sub(t1.Mul(k))
		buf[2] = end
		if !yield(path.CmdCubeTo, buf[:]) {
			return false
		}
		u = v
		start = end
	}
	return true
}

// tangent returns the direction of travel at the point with radius vector u.
func tangent(u vec.Vec2, sweep bool) vec.Vec2 {
	t := vec.Vec2{X: -u.Y, Y: u.X}
	if !sweep {
		t = t.Mul(-1)
	}
	return t
}
