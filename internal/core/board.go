package core

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Cell is the state of a single grid position.
type Cell struct {
	Alive bool
}

// Board stores a fixed rows x cols grid of cells in row-major order.
type Board struct {
	rows, cols int
	cells      []Cell
}

// NewBoard allocates a board with every cell dead.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("core: invalid board size %dx%d", rows, cols))
	}
	return &Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// NewRandomBoard allocates a board where each cell is alive with probability
// prob, drawn independently from rng.
func NewRandomBoard(rows, cols int, prob float64, rng *rand.Rand) *Board {
	b := NewBoard(rows, cols)
	b.Fill(rng, prob)
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Size returns the board dimensions in the W/H form used by renderers.
func (b *Board) Size() Size { return Size{W: b.cols, H: b.rows} }

// Index returns the linear slice index for (row, col), panicking when the
// coordinates fall outside the board.
func (b *Board) Index(row, col int) int {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic(fmt.Sprintf("core: cell (%d,%d) out of range %dx%d", row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(row, col int) (int, int) {
	row = (row%b.rows + b.rows) % b.rows
	col = (col%b.cols + b.cols) % b.cols
	return row, col
}

// Get reports whether the cell at (row, col) is alive.
func (b *Board) Get(row, col int) bool { return b.cells[b.Index(row, col)].Alive }

// Set changes the state of the cell at (row, col).
func (b *Board) Set(row, col int, alive bool) { b.cells[b.Index(row, col)].Alive = alive }

// ForEachCell calls visit for every cell in row-major order.
func (b *Board) ForEachCell(visit func(row, col int, alive bool)) {
	for row := 0; row < b.rows; row++ {
		base := row * b.cols
		for col := 0; col < b.cols; col++ {
			visit(row, col, b.cells[base+col].Alive)
		}
	}
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Fill overwrites every cell, making it alive with probability prob. A
// probability of 0 always yields an empty board and 1 a full one.
func (b *Board) Fill(rng *rand.Rand, prob float64) {
	for i := range b.cells {
		b.cells[i].Alive = rng.Float64() < prob
	}
}

// SameSize reports whether other has identical dimensions.
func (b *Board) SameSize(other *Board) bool {
	return b.rows == other.rows && b.cols == other.cols
}

// Equal reports whether both boards have the same size and cell states.
func (b *Board) Equal(other *Board) bool {
	if !b.SameSize(other) {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the board as rows of '#' (alive) and '.' (dead).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	b.ForEachCell(func(row, col int, alive bool) {
		if alive {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if col == b.cols-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}
