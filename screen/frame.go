package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mikenye/torus-snake/game"
)

// a cell queued for drawing, in pixels
type tile struct {
	x, y     float32
	c        color.Color
	bordered bool
}

// Frame is the game.Surface for the window. The controller builds a frame
// during ebiten's Update; Present commits it and Render paints the last
// committed frame during ebiten's Draw.
type Frame struct {
	grid   game.Grid
	border color.Color

	background color.Color
	building   []tile

	shownBackground color.Color
	shown           []tile
}

// NewFrame creates an empty frame filled with background
func NewFrame(grid game.Grid, border, background color.Color) *Frame {
	return &Frame{
		grid:            grid,
		border:          border,
		background:      background,
		shownBackground: background,
	}
}

func (f *Frame) Clear(c color.Color) {
	f.background = c
	f.building = f.building[:0]
}

func (f *Frame) DrawCell(p game.Position, c color.Color, bordered bool) {
	x, y := f.grid.Pixel(p)
	f.building = append(f.building, tile{x: float32(x), y: float32(y), c: c, bordered: bordered})
}

// Present swaps the frame being built with the one on screen
func (f *Frame) Present() error {
	f.shown, f.building = f.building, f.shown[:0]
	f.shownBackground = f.background
	return nil
}

// Render draws the last presented frame onto dst
func (f *Frame) Render(dst *ebiten.Image) {
	dst.Fill(f.shownBackground)
	size := float32(f.grid.CellSize)
	for _, t := range f.shown {
		vector.DrawFilledRect(dst, t.x, t.y, size, size, t.c, false)
		if t.bordered {
			// keep the 1px outline inside the cell
			vector.StrokeRect(dst, t.x+0.5, t.y+0.5, size-1, size-1, 1, f.border, false)
		}
	}
}
