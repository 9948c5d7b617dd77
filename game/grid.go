package game

// Position is a cell coordinate on the board
type Position struct {
	X, Y int
}

// Add returns p offset by d's unit vector (unwrapped)
func (p Position) Add(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the toroidal board, measured in cells
type Grid struct {
	Width, Height int

	// size of one cell in pixels
	CellSize int
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the cell the snake starts on
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies on the board
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the board, both axes modulo the board size
func (g Grid) Wrap(p Position) Position {
	return Position{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

// Step moves one cell from p in direction d, wrapping at the edges
func (g Grid) Step(p Position, d Direction) Position {
	return g.Wrap(p.Add(d))
}

// Pixel returns the top-left pixel of cell p
func (g Grid) Pixel(p Position) (x, y int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// PixelSize returns the board size in pixels
func (g Grid) PixelSize() (w, h int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}

// CellAt returns the cell containing pixel (x, y), wrapped onto the board
func (g Grid) CellAt(x, y int) Position {
	return g.Wrap(Position{X: floorDiv(x, g.CellSize), Y: floorDiv(y, g.CellSize)})
}

// Go's % keeps the dividend's sign
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func floorDiv(v, n int) int {
	q := v / n
	if v%n != 0 && v < 0 {
		q--
	}
	return q
}
