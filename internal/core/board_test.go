package core

import (
	"strings"
	"testing"
)

func TestNewBoardAllDead(t *testing.T) {
	b := NewBoard(4, 7)
	if b.Rows() != 4 || b.Cols() != 7 {
		t.Fatalf("size = %dx%d, want 4x7", b.Rows(), b.Cols())
	}
	if got := b.Population(); got != 0 {
		t.Fatalf("population = %d, want 0", got)
	}
}

func TestSetGet(t *testing.T) {
	b := NewBoard(3, 5)
	b.Set(2, 4, true)
	b.Set(0, 1, true)
	b.Set(0, 1, false)
	if !b.Get(2, 4) {
		t.Fatal("cell (2,4) should be alive")
	}
	if b.Get(0, 1) {
		t.Fatal("cell (0,1) should be dead after reset")
	}
	if b.Population() != 1 {
		t.Fatalf("population = %d, want 1", b.Population())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	cases := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 3, 0},
		{"col too large", 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(3, 5)
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Get(%d,%d) did not panic", tc.row, tc.col)
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Fatalf("unexpected panic value %v", r)
				}
			}()
			b.Get(tc.row, tc.col)
		})
	}
}

func TestForEachCellRowMajor(t *testing.T) {
	b := NewBoard(2, 3)
	b.Set(1, 2, true)
	var visited [][2]int
	alive := 0
	b.ForEachCell(func(row, col int, a bool) {
		visited = append(visited, [2]int{row, col})
		if a {
			alive++
			if row != 1 || col != 2 {
				t.Fatalf("unexpected live cell (%d,%d)", row, col)
			}
		}
	})
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
	if alive != 1 {
		t.Fatalf("alive visits = %d, want 1", alive)
	}
}

func TestRandomBoardBoundaries(t *testing.T) {
	empty := NewRandomBoard(20, 30, 0, NewRNG(1))
	if empty.Population() != 0 {
		t.Fatalf("prob 0 population = %d, want 0", empty.Population())
	}
	full := NewRandomBoard(20, 30, 1, NewRNG(1))
	if full.Population() != 20*30 {
		t.Fatalf("prob 1 population = %d, want %d", full.Population(), 20*30)
	}
}

func TestRandomBoardDeterministic(t *testing.T) {
	a := NewRandomBoard(16, 16, 0.3, NewRNG(42))
	b := NewRandomBoard(16, 16, 0.3, NewRNG(42))
	if !a.Equal(b) {
		t.Fatal("same seed produced different boards")
	}
	if p := a.Population(); p == 0 || p == 16*16 {
		t.Fatalf("population %d looks degenerate for prob 0.3", p)
	}
}

func TestWrap(t *testing.T) {
	b := NewBoard(4, 6)
	cases := []struct{ row, col, wantRow, wantCol int }{
		{-1, -1, 3, 5},
		{4, 6, 0, 0},
		{9, -7, 1, 5},
		{2, 3, 2, 3},
	}
	for _, tc := range cases {
		r, c := b.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}
}

func TestStringAndClear(t *testing.T) {
	b := NewBoard(2, 3)
	b.Set(0, 0, true)
	b.Set(1, 2, true)
	if got, want := b.String(), "#..\n..#\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	b.Clear()
	if b.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
}
