package game

import (
	"errors"
	"fmt"
)

// ErrQuit signals the player asked to stop. It ends the loop; it is not a failure.
var ErrQuit = errors.New("quit requested")

// EventKind identifies an input event
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
)

// Event is one discrete input event. Dir is only meaningful for EventKeyDown.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// Quit returns a quit event
func Quit() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key press for direction d
func KeyDown(d Direction) Event {
	return Event{Kind: EventKeyDown, Dir: d}
}

func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return fmt.Sprintf("key %s", e.Dir)
	}
	return "unknown"
}

// HandleEvent dispatches one input event: quit returns ErrQuit, a direction key queues a turn,
// anything else is ignored.
func (c *Controller) HandleEvent(ev Event) error {
	switch ev.Kind {
	case EventQuit:
		return ErrQuit
	case EventKeyDown:
		c.snake.QueueTurn(ev.Dir)
	}
	return nil
}
