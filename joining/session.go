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
	"github.com/rs/zerolog"

	"seehuhn.de/go/jigs/drawing"
	"seehuhn.de/go/jigs/grid"
)

// Session holds the state of one plate editing session: the configuration,
// the selected cells and the most recent drawing.
//
// A Session is not safe for concurrent use.
type Session struct {
	// Logger receives diagnostic messages. The zero value discards them.
	Logger zerolog.Logger

	cfg     Config
	cells   *grid.Grid
	drawing *drawing.Drawing
}

// NewSession starts a session with an empty selection.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		Logger: zerolog.Nop(),
		cfg:    cfg,
		cells:  grid.New(cfg.Columns, cfg.Rows),
	}, nil
}

// Config returns the current configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Grid returns a copy of the current selection.
func (s *Session) Grid() *grid.Grid {
	return s.cells.Clone()
}

// Toggle flips the selection state of cell (x, y).
// Cells outside the grid are ignored and Toggle reports false.
// The drawing is not updated until the next call to Refresh.
func (s *Session) Toggle(x, y int) bool {
	return s.cells.Toggle(x, y)
}

// Set changes the selection state of cell (x, y).
// Cells outside the grid are ignored and Set reports false.
func (s *Session) Set(x, y int, selected bool) bool {
	return s.cells.Set(x, y, selected)
}

// Load replaces the selection by the selected cells of g.
// Cells of g outside the grid of the session are dropped.
func (s *Session) Load(g grid.Reader) {
	s.cells = grid.New(s.cfg.Columns, s.cfg.Rows)
	for y := range g.Height() {
		for x := range g.Width() {
			if g.Get(x, y) {
				s.cells.Set(x, y, true)
			}
		}
	}
}

// SetConfig changes the configuration. If the grid size changes, cells
// within both the old and the new size keep their state.
// Invalid configurations are rejected and leave the session unchanged.
func (s *Session) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	old := s.cells
	s.cfg = cfg
	if cfg.Columns != old.Width() || cfg.Rows != old.Height() {
		s.Load(old)
	}
	return nil
}

// Refresh recomputes the drawing from the current selection and
// configuration.
//
// If the drawing cannot be computed, the error is returned together with
// the previous drawing, which stays in place. Before the first successful
// refresh, the previous drawing is nil.
func (s *Session) Refresh() (*drawing.Drawing, error) {
	d, err := Build(s.cells, s.cfg)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("keeping previous drawing")
		return s.drawing, err
	}
	s.drawing = d

	s.Logger.Debug().
		Int("cells", s.cells.Count()).
		Int("outside", d.Count(drawing.OutsideCut)).
		Int("inside", d.Count(drawing.InsideCut)).
		Int("items", len(d.Items)).
		Msg("plate refreshed")
	return d, nil
}

// Drawing returns the result of the last successful refresh, or nil.
func (s *Session) Drawing() *drawing.Drawing {
	return s.drawing
}
