//go:build ebiten

package app

import (
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	menu    *ui.Menu
	scale   int
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	s := NewSession(cfg)
	return &Game{
		session: s,
		painter: render.NewGridPainter(s.Board().Size(), cfg.Scale),
		menu:    s.menu,
		scale:   cfg.Scale,
	}
}

// Update polls input and advances the session by one frame.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	in := Input{
		ToggleRun:     inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Step:          inpututil.IsKeyJustPressed(ebiten.KeyN),
		Reset:         inpututil.IsKeyJustPressed(ebiten.KeyX),
		Randomize:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleMenu:    inpututil.IsKeyJustPressed(ebiten.KeyM),
		ToggleRainbow: inpututil.IsKeyJustPressed(ebiten.KeyF),
		Quit:          inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Paint:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Erase:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		CursorX:       x,
		CursorY:       y,
	}
	if !g.session.Frame(in) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current board and the menu.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Black)
	g.painter.Blit(screen, g.session.Board(), g.session.LiveColor(), render.Black)
	g.menu.Draw(screen, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Board().Size()
	return s.W * g.scale, s.H * g.scale
}
