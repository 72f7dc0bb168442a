package life

import (
	"math/rand/v2"

	"mad-life/internal/core"
)

// Controller owns a pair of boards used as a double buffer and drives the
// simulation one generation per tick while running.
type Controller struct {
	boards     [2]*core.Board
	cur        int
	running    bool
	generation int
	rng        *rand.Rand
}

// NewController returns a paused controller with two empty rows x cols
// boards. Randomize draws from a generator seeded with seed.
func NewController(rows, cols int, seed int64) *Controller {
	return &Controller{
		boards: [2]*core.Board{core.NewBoard(rows, cols), core.NewBoard(rows, cols)},
		rng:    core.NewRNG(seed),
	}
}

// Current returns the board being displayed and edited. Callers must not
// retain it across ticks.
func (c *Controller) Current() *core.Board { return c.boards[c.cur] }

func (c *Controller) scratch() *core.Board { return c.boards[1-c.cur] }

// Running reports whether ticks advance the simulation.
func (c *Controller) Running() bool { return c.running }

// SetRunning starts or pauses the simulation.
func (c *Controller) SetRunning(running bool) { c.running = running }

// Toggle flips between running and paused.
func (c *Controller) Toggle() { c.running = !c.running }

// Generation returns how many generations have elapsed since the last Reset
// or Randomize.
func (c *Controller) Generation() int { return c.generation }

// Population returns the number of live cells on the current board.
func (c *Controller) Population() int { return c.Current().Population() }

// Tick advances one generation when running and does nothing otherwise.
func (c *Controller) Tick() {
	if !c.running {
		return
	}
	c.Step()
}

// Step advances one generation regardless of the running flag.
func (c *Controller) Step() {
	AdvanceGeneration(c.Current(), c.scratch())
	c.cur = 1 - c.cur
	c.generation++
}

// Reset replaces the current board with an empty one. The scratch buffer is
// left alone since the next advance overwrites all of it.
func (c *Controller) Reset() {
	c.boards[c.cur] = core.NewBoard(c.rows(), c.cols())
	c.generation = 0
}

// Randomize replaces the current board with one where each cell is alive
// with probability prob.
func (c *Controller) Randomize(prob float64) {
	c.boards[c.cur] = core.NewRandomBoard(c.rows(), c.cols(), prob, c.rng)
	c.generation = 0
}

// EditCell sets a cell on the current board only.
func (c *Controller) EditCell(row, col int, alive bool) {
	c.Current().Set(row, col, alive)
}

func (c *Controller) rows() int { return c.boards[0].Rows() }
func (c *Controller) cols() int { return c.boards[0].Cols() }
