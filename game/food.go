package game

import (
	"errors"
	"image/color"
	"math/rand/v2"
)

// ErrBoardFull is returned when there is no free cell left to place food on
var ErrBoardFull = errors.New("no free cell for food")

// Food is the single item the snake chases
type Food struct {
	grid     Grid
	rng      *rand.Rand
	color    color.Color
	position Position
}

// NewFood creates food in the top-left cell. Call Relocate to place it.
func NewFood(grid Grid, rng *rand.Rand, c color.Color) *Food {
	return &Food{grid: grid, rng: rng, color: c}
}

// Position returns the cell the food sits on
func (f *Food) Position() Position {
	return f.position
}

// Relocate moves the food to a uniformly random cell that is not in forbidden.
// Cells are sampled over the whole board until one is free, so a board with no
// free cell is refused up front instead of spinning.
func (f *Food) Relocate(forbidden map[Position]struct{}) error {
	taken := 0
	for p := range forbidden {
		if f.grid.Contains(p) {
			taken++
		}
	}
	if taken >= f.grid.Cells() {
		return ErrBoardFull
	}

	for {
		p := Position{
			X: f.rng.IntN(f.grid.Width),
			Y: f.rng.IntN(f.grid.Height),
		}
		if _, ok := forbidden[p]; !ok {
			f.position = p
			return nil
		}
	}
}

// Draw paints the food as a single bordered cell
func (f *Food) Draw(s Surface) {
	s.DrawCell(f.position, f.color, true)
}
