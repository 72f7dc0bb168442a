//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// Menu draws the key binding help over the board.
type Menu struct {
	visible bool
	margin  int
	col     color.Color
}

// NewMenu constructs a menu placed margin pixels from the top-left corner.
func NewMenu(visible bool, margin int, col color.Color) *Menu {
	if margin <= 0 {
		margin = 10
	}
	return &Menu{visible: visible, margin: margin, col: col}
}

// Toggle shows or hides the menu.
func (m *Menu) Toggle() {
	if m == nil {
		return
	}
	m.visible = !m.visible
}

// Visible reports whether the menu is drawn.
func (m *Menu) Visible() bool { return m != nil && m.visible }

// Draw renders the menu text onto screen when visible.
func (m *Menu) Draw(screen *ebiten.Image, s Status) {
	if !m.Visible() {
		return
	}
	face := basicfont.Face7x13
	y := m.margin + face.Ascent
	for _, line := range Lines(s) {
		if line != "" {
			text.Draw(screen, line, face, m.margin, y, m.col)
		}
		y += lineHeight
	}
}
