package render

import "image/color"

var (
	// Black is the background and dead-cell color.
	Black = color.RGBA{A: 255}
	// White is the live-cell color outside of rainbow mode.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// MenuText is the color of the help menu text.
	MenuText = color.RGBA{R: 211, G: 211, B: 211, A: 255}
)

// Rainbow lists the live-cell colors cycled through in rainbow mode.
var Rainbow = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},   // red
	{R: 255, G: 195, B: 0, A: 255}, // light orange
	{R: 255, G: 125, B: 0, A: 255}, // orange
	{R: 255, G: 255, B: 0, A: 255}, // yellow
	{R: 125, G: 255, B: 0, A: 255}, // green
	{R: 0, G: 200, B: 0, A: 255},   // dark green
	{R: 0, G: 155, B: 160, A: 255}, // turquoise
	{R: 0, G: 255, B: 255, A: 255}, // cyan
	{R: 0, G: 125, B: 255, A: 255}, // ocean
	{R: 0, G: 100, B: 255, A: 255}, // blue
	{R: 0, G: 0, B: 255, A: 255},   // deep blue
	{R: 125, G: 0, B: 255, A: 255}, // violet
	{R: 155, G: 0, B: 255, A: 255}, // purple
	{R: 255, G: 0, B: 255, A: 255}, // magenta
	{R: 255, G: 0, B: 125, A: 255}, // raspberry
}

const (
	cycleRunning = 1.0
	cyclePaused  = 0.1
)

// ColorCycle walks the Rainbow palette across frames. It moves one entry per
// frame while the simulation runs and a tenth of an entry while paused.
type ColorCycle struct {
	pos float64
}

// Advance moves the cycle forward by one frame.
func (c *ColorCycle) Advance(running bool) {
	if running {
		c.pos += cycleRunning
	} else {
		c.pos += cyclePaused
	}
	if c.pos > float64(len(Rainbow)-1) {
		c.pos = 0
	}
}

// Color returns the palette entry for the current position.
func (c *ColorCycle) Color() color.RGBA {
	return Rainbow[int(c.pos)]
}
