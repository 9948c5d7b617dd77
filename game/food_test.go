package game

import (
	"errors"
	"image/color"
	"testing"
)

func TestRelocateAvoidsForbidden(t *testing.T) {
	grid := Grid{Width: 4, Height: 4, CellSize: 1}
	f := NewFood(grid, testRand(), color.White)

	forbidden := map[Position]struct{}{}
	for x := range 4 {
		for y := range 3 {
			forbidden[Position{x, y}] = struct{}{}
		}
	}

	for range 200 {
		if err := f.Relocate(forbidden); err != nil {
			t.Fatal(err)
		}
		if _, ok := forbidden[f.Position()]; ok {
			t.Fatalf("food placed on forbidden cell %+v", f.Position())
		}
		if !grid.Contains(f.Position()) {
			t.Fatalf("food off the board at %+v", f.Position())
		}
	}
}

func TestRelocateFindsLastFreeCell(t *testing.T) {
	grid := Grid{Width: 3, Height: 3, CellSize: 1}
	f := NewFood(grid, testRand(), color.White)

	free := Position{2, 1}
	forbidden := map[Position]struct{}{}
	for x := range 3 {
		for y := range 3 {
			if p := (Position{x, y}); p != free {
				forbidden[p] = struct{}{}
			}
		}
	}

	if err := f.Relocate(forbidden); err != nil {
		t.Fatal(err)
	}
	if f.Position() != free {
		t.Fatalf("food at %+v, want %+v", f.Position(), free)
	}
}

func TestRelocateRefusesFullBoard(t *testing.T) {
	grid := Grid{Width: 2, Height: 2, CellSize: 1}
	f := NewFood(grid, testRand(), color.White)
	f.position = Position{1, 1}

	forbidden := map[Position]struct{}{
		{0, 0}: {}, {0, 1}: {}, {1, 0}: {}, {1, 1}: {},
		// off-board cells do not count towards the board being full
		{5, 5}: {},
	}
	if err := f.Relocate(forbidden); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("got %v, want ErrBoardFull", err)
	}
	if f.Position() != (Position{1, 1}) {
		t.Errorf("failed relocation moved food to %+v", f.Position())
	}

	delete(forbidden, Position{0, 1})
	if err := f.Relocate(forbidden); err != nil {
		t.Fatal(err)
	}
	if f.Position() != (Position{0, 1}) {
		t.Errorf("food at %+v, want {0 1}", f.Position())
	}
}

func TestRelocateIsRoughlyUniform(t *testing.T) {
	grid := Grid{Width: 3, Height: 2, CellSize: 1}
	f := NewFood(grid, testRand(), color.White)

	counts := map[Position]int{}
	const n = 6000
	for range n {
		if err := f.Relocate(nil); err != nil {
			t.Fatal(err)
		}
		counts[f.Position()]++
	}

	if len(counts) != grid.Cells() {
		t.Fatalf("only %d cells ever chosen", len(counts))
	}
	for p, c := range counts {
		if c < n/grid.Cells()/2 {
			t.Errorf("cell %+v chosen %d times out of %d", p, c, n)
		}
	}
}

func TestFoodDraw(t *testing.T) {
	f := NewFood(Grid{Width: 4, Height: 4, CellSize: 1}, testRand(), color.White)
	f.position = Position{2, 3}
	s := &fakeSurface{}

	f.Draw(s)

	if len(s.frame) != 1 || s.frame[0].p != f.position || !s.frame[0].bordered {
		t.Fatalf("drew %v", s.frame)
	}
}
