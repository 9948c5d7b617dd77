package game

import (
	"errors"
	"testing"
)

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 4, Height: 3, CellSize: 10}

	tests := []struct {
		in, want Position
	}{
		{Position{0, 0}, Position{0, 0}},
		{Position{3, 2}, Position{3, 2}},
		{Position{4, 0}, Position{0, 0}},
		{Position{-1, 0}, Position{3, 0}},
		{Position{0, -1}, Position{0, 2}},
		{Position{0, 3}, Position{0, 0}},
		{Position{-5, 7}, Position{3, 1}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestGridStepAtBorders(t *testing.T) {
	g := Grid{Width: 5, Height: 4, CellSize: 1}

	tests := []struct {
		name string
		from Position
		d    Direction
		want Position
	}{
		{"left edge moving left", Position{0, 2}, Left, Position{4, 2}},
		{"right edge moving right", Position{4, 2}, Right, Position{0, 2}},
		{"top edge moving up", Position{1, 0}, Up, Position{1, 3}},
		{"bottom edge moving down", Position{1, 3}, Down, Position{1, 0}},
		{"interior", Position{2, 2}, Right, Position{3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Step(tt.from, tt.d)
			if got != tt.want {
				t.Errorf("Step(%+v, %s) = %+v, want %+v", tt.from, tt.d, got, tt.want)
			}
			if !g.Contains(got) {
				t.Errorf("Step left the board: %+v", got)
			}
		})
	}
}

func TestGridPixels(t *testing.T) {
	g := DefaultConfig().Grid()

	if w, h := g.PixelSize(); w != 640 || h != 480 {
		t.Fatalf("PixelSize = %dx%d, want 640x480", w, h)
	}
	if x, y := g.Pixel(Position{3, 2}); x != 60 || y != 40 {
		t.Errorf("Pixel = (%d,%d), want (60,40)", x, y)
	}
	if p := g.CellAt(65, 59); p != (Position{3, 2}) {
		t.Errorf("CellAt = %+v, want {3 2}", p)
	}
	if p := g.CellAt(-1, 480); p != (Position{31, 0}) {
		t.Errorf("CellAt wrapped = %+v, want {31 0}", p)
	}
	if c := g.Center(); c != (Position{16, 12}) {
		t.Errorf("Center = %+v, want {16 12}", c)
	}
	if g.Cells() != 32*24 {
		t.Errorf("Cells = %d", g.Cells())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		valid bool
	}{
		{"default", func(*Config) {}, true},
		{"two cells", func(c *Config) { c.Width, c.Height = 2, 1 }, true},
		{"single cell", func(c *Config) { c.Width, c.Height = 1, 1 }, false},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -3 }, false},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }, false},
		{"zero tps", func(c *Config) { c.TPS = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDirectionOpposites(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: opposite is not an involution", d)
		}
		if d.Opposite() == d {
			t.Errorf("%s is its own opposite", d)
		}
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and %s do not cancel", d, d.Opposite())
		}
	}
}

func TestRandomDirectionCoversAll(t *testing.T) {
	rng := testRand()
	seen := map[Direction]int{}
	for range 400 {
		d := RandomDirection(rng)
		if !d.Valid() {
			t.Fatalf("invalid direction %d", d)
		}
		seen[d]++
	}
	if len(seen) != 4 {
		t.Errorf("only saw %v", seen)
	}
}
