//go:build !ebiten

package ui

import "image/color"

// Menu is a no-op placeholder used when the ebiten build tag is absent.
type Menu struct{ visible bool }

// NewMenu constructs a stub menu.
func NewMenu(visible bool, _ int, _ color.Color) *Menu { return &Menu{visible: visible} }

// Toggle flips visibility.
func (m *Menu) Toggle() { m.visible = !m.visible }

// Visible reports whether the menu would be drawn.
func (m *Menu) Visible() bool { return m != nil && m.visible }

// Draw is a no-op in headless builds.
func (m *Menu) Draw(any, Status) {}
