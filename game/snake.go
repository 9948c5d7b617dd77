package game

import (
	"image/color"
	"math/rand/v2"
	"slices"
)

// Snake is the player. body[0] is the head.
//
// The body settles at targetLength+1 cells: advance keeps one cell more than the
// target. The trailing cell is never drawn and the board-full check in the
// controller is written against the same +1, so the two stay consistent.
type Snake struct {
	grid  Grid
	rng   *rand.Rand
	color color.Color

	body         []Position
	direction    Direction
	pending      Direction // zero when no turn is queued
	targetLength int
}

// NewSnake creates a one-cell snake in the middle of grid heading right
func NewSnake(grid Grid, rng *rand.Rand, c color.Color) *Snake {
	return &Snake{
		grid:         grid,
		rng:          rng,
		color:        c,
		body:         []Position{grid.Center()},
		direction:    Right,
		targetLength: 1,
	}
}

// QueueTurn sets the pending direction unless d would reverse the snake onto itself.
// Reports whether the turn was queued.
func (s *Snake) QueueTurn(d Direction) bool {
	if !d.Valid() || d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// CommitDirection applies and clears the pending turn
func (s *Snake) CommitDirection() {
	if s.pending != 0 {
		s.direction = s.pending
		s.pending = 0
	}
}

// Advance moves the head one cell and trims the tail down to targetLength+1 cells
func (s *Snake) Advance() {
	head := s.grid.Step(s.Head(), s.direction)
	s.body = slices.Insert(s.body, 0, head)
	for len(s.body) > s.targetLength+1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Head returns the cell at the front of the snake
func (s *Snake) Head() Position {
	return s.body[0]
}

// Grow raises the target length by one; the body catches up on the next advance
func (s *Snake) Grow() {
	s.targetLength++
}

// Reset puts the snake back in the middle at length 1, facing a random direction
func (s *Snake) Reset() {
	s.targetLength = 1
	s.body = []Position{s.grid.Center()}
	s.direction = RandomDirection(s.rng)
	s.pending = 0
}

// SelfCollision reports whether the head shares a cell with the rest of the body
func (s *Snake) SelfCollision() bool {
	return slices.Contains(s.body[1:], s.Head())
}

// Occupies reports whether any body cell is p
func (s *Snake) Occupies(p Position) bool {
	return slices.Contains(s.body, p)
}

// Body returns a copy of the occupied cells, head first
func (s *Snake) Body() []Position {
	return slices.Clone(s.body)
}

// Cells returns the set of occupied cells
func (s *Snake) Cells() map[Position]struct{} {
	set := make(map[Position]struct{}, len(s.body))
	for _, p := range s.body {
		set[p] = struct{}{}
	}
	return set
}

func (s *Snake) Len() int { return len(s.body) }

func (s *Snake) TargetLength() int { return s.targetLength }

func (s *Snake) Direction() Direction { return s.direction }

// Pending returns the queued turn, if any
func (s *Snake) Pending() (Direction, bool) {
	return s.pending, s.pending != 0
}

// Draw paints every cell but the trailing one, head last so it sits on top
func (s *Snake) Draw(surface Surface) {
	for _, p := range s.body[:len(s.body)-1] {
		surface.DrawCell(p, s.color, true)
	}
	surface.DrawCell(s.Head(), s.color, true)
}
