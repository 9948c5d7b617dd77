package game

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Palette holds the colors used to render a frame
type Palette struct {
	// fill behind every cell
	Background color.RGBA

	// outline drawn around bordered cells
	Border color.RGBA

	// food cell fill
	Food color.RGBA

	// snake segment fill
	Snake color.RGBA
}

// Config holds the constants fixed at startup.
// Width and Height are in cells, CellSize in pixels, TPS in ticks per second.
type Config struct {
	Width, Height int
	CellSize      int
	TPS           int
	Palette       Palette
}

// DefaultConfig returns a 640x480 board of 20px cells ticking 20 times per second
func DefaultConfig() Config {
	return Config{
		Width:    32,
		Height:   24,
		CellSize: 20,
		TPS:      20,
		Palette: Palette{
			Background: color.RGBA{0, 0, 0, 255},
			Border:     color.RGBA{93, 216, 228, 255},
			Food:       color.RGBA{255, 0, 0, 255},
			Snake:      color.RGBA{0, 255, 0, 255},
		},
	}
}

// Validate checks the config describes a playable board.
// A single-cell board is rejected: the snake would fill it permanently and food could never be placed.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Width*c.Height < 2:
		return fmt.Errorf("%w: grid %dx%d has fewer than 2 cells", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.TPS < 1:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// Grid returns the board geometry described by the config
func (c Config) Grid() Grid {
	return Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}

// ScreenSize returns the size of the board in pixels
func (c Config) ScreenSize() (w, h int) {
	return c.Grid().PixelSize()
}
