// Package term runs the game inside a terminal using tcell.
//
// Each board cell is two terminal columns wide so cells come out roughly square.
// Bordered cells are drawn as "[]" in the border color over the cell color.
package term

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/mikenye/torus-snake/game"
)

// terminal columns per board cell
const cellColumns = 2

// Terminal adapts a tcell screen to the game's Surface and InputSource
type Terminal struct {
	screen tcell.Screen
	grid   game.Grid
	border tcell.Color
	clock  *Ticker

	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// Open initialises the real terminal and checks the board fits in it
func Open(cfg game.Config) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	t, err := New(s, cfg)
	if err != nil {
		s.Fini()
		return nil, err
	}
	return t, nil
}

// New wraps an initialised screen and starts reading its events.
// Close releases the screen.
func New(s tcell.Screen, cfg game.Config) (*Terminal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := s.Size()
	if w < cfg.Width*cellColumns || h < cfg.Height {
		return nil, fmt.Errorf("terminal is %dx%d, a %dx%d board needs %dx%d",
			w, h, cfg.Width, cfg.Height, cfg.Width*cellColumns, cfg.Height)
	}

	s.HideCursor()
	t := &Terminal{
		screen: s,
		grid:   cfg.Grid(),
		border: tcellColor(cfg.Palette.Border),
		clock:  NewTicker(cfg.TPS),
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go t.pollEvents()
	glog.Infof("terminal %dx%d, board %dx%d, %d ticks per second", w, h, cfg.Width, cfg.Height, cfg.TPS)
	return t, nil
}

// Frontend returns the terminal as the game's surface, input and clock
func (t *Terminal) Frontend() game.Frontend {
	return game.Frontend{Surface: t, Input: t, Clock: t.clock}
}

// Close stops the clock and the event reader and restores the terminal
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.clock.Stop()
		t.screen.Fini()
	})
}

// feeds tcell events into a buffered channel until the screen is finalised
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll drains every buffered event without blocking
func (t *Terminal) Poll() []game.Event {
	var out []game.Event
	for {
		select {
		case ev := <-t.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				t.screen.Sync()
				continue
			}
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

// arrows steer; Escape, Ctrl-C and q quit
func translate(ev tcell.Event) (game.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.Event{}, false
	}
	switch key.Key() {
	case tcell.KeyUp:
		return game.KeyDown(game.Up), true
	case tcell.KeyDown:
		return game.KeyDown(game.Down), true
	case tcell.KeyLeft:
		return game.KeyDown(game.Left), true
	case tcell.KeyRight:
		return game.KeyDown(game.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		if key.Rune() == 'q' || key.Rune() == 'Q' {
			return game.Quit(), true
		}
	}
	return game.Event{}, false
}

// Clear blanks the terminal and paints the board area in c
func (t *Terminal) Clear(c color.Color) {
	t.screen.Clear()
	st := tcell.StyleDefault.Background(tcellColor(c))
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width*cellColumns; x++ {
			t.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (t *Terminal) DrawCell(p game.Position, c color.Color, bordered bool) {
	st := tcell.StyleDefault.Background(tcellColor(c))
	left, right := ' ', ' '
	if bordered {
		st = st.Foreground(t.border)
		left, right = '[', ']'
	}
	x := p.X * cellColumns
	t.screen.SetContent(x, p.Y, left, nil, st)
	t.screen.SetContent(x+1, p.Y, right, nil, st)
}

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
