package app

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/life"
	"mad-life/internal/render"
	"mad-life/internal/ui"
)

// Input captures one frame of user commands.
type Input struct {
	ToggleRun     bool
	Step          bool
	Reset         bool
	Randomize     bool
	ToggleMenu    bool
	ToggleRainbow bool
	Quit          bool

	// Paint and Erase report held mouse buttons at CursorX/CursorY.
	Paint   bool
	Erase   bool
	CursorX int
	CursorY int
}

// Session binds user commands to the simulation and tracks display state.
type Session struct {
	cfg     *Config
	ctrl    *life.Controller
	pacer   *core.FixedStep
	cycle   render.ColorCycle
	menu    *ui.Menu
	rainbow bool
}

// NewSession builds a paused session with an empty board sized from cfg.
func NewSession(cfg *Config) *Session {
	rows, cols := cfg.Grid()
	return &Session{
		cfg:   cfg,
		ctrl:  life.NewController(rows, cols, cfg.Seed),
		pacer: core.NewFixedStep(cfg.GPS),
		menu:  ui.NewMenu(cfg.ShowMenu, cfg.Scale, render.MenuText),
	}
}

// Frame applies in and advances the simulation by at most one generation.
// It reports false once the user asked to quit.
func (s *Session) Frame(in Input) bool {
	if in.Quit {
		return false
	}
	s.edit(in)

	if in.ToggleRun {
		s.ctrl.Toggle()
	}
	if in.ToggleMenu {
		s.menu.Toggle()
	}
	if in.Reset {
		s.ctrl.Reset()
	}
	if in.Randomize {
		s.ctrl.Randomize(s.cfg.Prob)
	}
	if in.ToggleRainbow {
		s.rainbow = !s.rainbow
	}

	switch {
	case s.ctrl.Running():
		if s.pacer.Ready() {
			s.ctrl.Tick()
		}
	case in.Step:
		s.ctrl.Step()
	}

	if s.rainbow {
		s.cycle.Advance(s.ctrl.Running())
	}
	return true
}

func (s *Session) edit(in Input) {
	if !in.Paint && !in.Erase {
		return
	}
	row, col, ok := CellAt(in.CursorX, in.CursorY, s.cfg.Scale, s.ctrl.Current().Size())
	if !ok {
		return
	}
	if in.Paint {
		s.ctrl.EditCell(row, col, true)
	}
	if in.Erase {
		s.ctrl.EditCell(row, col, false)
	}
}

// Board returns the board to draw this frame.
func (s *Session) Board() *core.Board { return s.ctrl.Current() }

// LiveColor returns the fill color for live cells.
func (s *Session) LiveColor() color.Color {
	if s.rainbow {
		return s.cycle.Color()
	}
	return render.White
}

// Status summarises the session for the menu.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Generation: s.ctrl.Generation(),
		Population: s.ctrl.Population(),
		Running:    s.ctrl.Running(),
		Rainbow:    s.rainbow,
	}
}

// CellAt maps a pointer position in pixels to board coordinates. Screen x
// selects the column and screen y the row.
func CellAt(x, y, scale int, size core.Size) (row, col int, ok bool) {
	if x < 0 || y < 0 || scale <= 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}
