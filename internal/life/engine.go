// Package life implements Conway's Game of Life on a toroidal core.Board.
package life

import (
	"fmt"

	"mad-life/internal/core"
)

// CountLiveNeighbors returns how many of the eight cells surrounding
// (row, col) are alive. Edges wrap, so every cell has exactly eight
// neighbours.
func CountLiveNeighbors(b *core.Board, row, col int) int {
	b.Index(row, col)
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.Get(b.Wrap(row+dr, col+dc)) {
				n++
			}
		}
	}
	return n
}

// Rule reports the next state of a cell given its current state and its live
// neighbour count (B3/S23).
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// NextState computes the state of (row, col) in the following generation.
func NextState(b *core.Board, row, col int) bool {
	return Rule(b.Get(row, col), CountLiveNeighbors(b, row, col))
}

// AdvanceGeneration writes the generation following src into dst. Every cell
// of dst is overwritten and src is left untouched. Both boards must share the
// same dimensions.
func AdvanceGeneration(src, dst *core.Board) {
	if src == dst {
		panic("life: source and destination must be distinct boards")
	}
	if !src.SameSize(dst) {
		panic(fmt.Sprintf("life: board size mismatch %dx%d vs %dx%d",
			src.Rows(), src.Cols(), dst.Rows(), dst.Cols()))
	}
	rows, cols := src.Rows(), src.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			dst.Set(row, col, NextState(src, row, col))
		}
	}
}
