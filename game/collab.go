package game

import (
	"context"
	"image/color"
)

// Surface is the rendering collaborator. A frame is Clear, any number of DrawCell calls, then Present.
type Surface interface {
	Clear(c color.Color)

	// DrawCell fills cell p with c; bordered cells get an outline in the surface's border color
	DrawCell(p Position, c color.Color, bordered bool)

	Present() error
}

// Drawer is anything that can paint itself onto a Surface
type Drawer interface {
	Draw(s Surface)
}

// InputSource is the input collaborator. Poll returns every event buffered since the last call and never blocks.
type InputSource interface {
	Poll() []Event
}

// Clock is the timing collaborator. Tick blocks until the next tick is due or ctx is done.
type Clock interface {
	Tick(ctx context.Context) error
}

// ResetReason says why the snake was put back to its starting state
type ResetReason uint8

const (
	// head ran into the body
	ResetCollision ResetReason = iota + 1

	// food eaten with no room left to grow
	ResetBoardFull
)

func (r ResetReason) String() string {
	switch r {
	case ResetCollision:
		return "collision"
	case ResetBoardFull:
		return "board full"
	}
	return "unknown"
}

// Listener receives game events as the controller applies them. Calls happen on the tick goroutine.
type Listener interface {
	FoodEaten(at Position)
	SnakeReset(reason ResetReason)
}

// Frontend bundles the collaborators a Controller drives
type Frontend struct {
	Surface Surface
	Input   InputSource

	// only needed by Controller.Run; frontends that own their loop may leave it nil
	Clock Clock
}
