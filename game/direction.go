package game

import "math/rand/v2"

// Direction the snake travels in
type Direction uint8

// Constants for snake direction
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every valid direction
var Directions = [...]Direction{Up, Down, Left, Right}

// Vector returns the unit step for d. Screen y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction that would reverse d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// RandomDirection picks one of the four directions uniformly
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.IntN(len(Directions))]
}
