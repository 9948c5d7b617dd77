package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mikenye/torus-snake/game"
)

// Keyboard is the game.InputSource for the window. ebiten reports key state per
// update, which runs faster than the game ticks, so presses are queued here until
// the controller polls.
type Keyboard struct {
	queue []game.Event
	keys  []ebiten.Key
}

// Collect queues the keys pressed since the previous ebiten update, and a quit
// if the window close button was pressed
func (k *Keyboard) Collect() {
	if ebiten.IsWindowBeingClosed() {
		k.queue = append(k.queue, game.Quit())
	}
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if ev, ok := eventForKey(key); ok {
			k.queue = append(k.queue, ev)
		}
	}
}

// Poll returns and clears the queued events
func (k *Keyboard) Poll() []game.Event {
	evs := k.queue
	k.queue = nil
	return evs
}

// arrows steer, Q or Escape quits
func eventForKey(key ebiten.Key) (game.Event, bool) {
	switch key {
	case ebiten.KeyArrowUp:
		return game.KeyDown(game.Up), true
	case ebiten.KeyArrowDown:
		return game.KeyDown(game.Down), true
	case ebiten.KeyArrowLeft:
		return game.KeyDown(game.Left), true
	case ebiten.KeyArrowRight:
		return game.KeyDown(game.Right), true
	case ebiten.KeyQ, ebiten.KeyEscape:
		return game.Quit(), true
	}
	return game.Event{}, false
}
