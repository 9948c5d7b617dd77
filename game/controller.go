// Package game is the snake on a wraparound board: the snake, the food and the
// controller that ticks them. Drawing, input and timing are left to a Frontend.
package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/golang/glog"
)

// State of the loop controller
type State uint8

const (
	// ticking normally
	StateRunning State = iota + 1

	// quit was requested; absorbing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Controller owns the snake and the food and runs one tick at a time.
// It is not safe for concurrent use; every call must come from the tick goroutine.
type Controller struct {
	cfg  Config
	grid Grid
	fe   Frontend

	snake *Snake
	food  *Food

	state    State
	ticks    uint64
	listener Listener
}

// NewRand returns a generator seeded from the wall clock
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// New creates a controller with a fresh snake in the middle of the board and food placed away from it.
// rng may be nil, in which case a clock-seeded generator is used.
func New(cfg Config, fe Frontend, rng *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fe.Surface == nil || fe.Input == nil {
		return nil, errors.New("frontend needs a surface and an input source")
	}
	if rng == nil {
		rng = NewRand()
	}

	grid := cfg.Grid()
	c := &Controller{
		cfg:   cfg,
		grid:  grid,
		fe:    fe,
		snake: NewSnake(grid, rng, cfg.Palette.Snake),
		food:  NewFood(grid, rng, cfg.Palette.Food),
		state: StateRunning,
	}
	if err := c.food.Relocate(c.snake.Cells()); err != nil {
		return nil, err
	}
	glog.V(1).Infof("new game on %dx%d board, food at %+v", grid.Width, grid.Height, c.food.Position())
	return c, nil
}

// SetListener registers l to receive eat and reset events. nil clears it.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// Step runs one tick: drain input, turn, move, eat, collide, draw.
// Returns ErrQuit once a quit event has been seen; the rest of that tick is skipped
// and every later call returns ErrQuit without touching the game.
func (c *Controller) Step() error {
	if c.state == StateTerminated {
		return ErrQuit
	}

	for _, ev := range c.fe.Input.Poll() {
		if err := c.HandleEvent(ev); err != nil {
			c.state = StateTerminated
			glog.Infof("terminating after %d ticks: %v", c.ticks, err)
			return err
		}
	}

	c.ticks++
	c.snake.CommitDirection()
	c.snake.Advance()
	if glog.V(2) {
		glog.Infof("tick %d: head %+v heading %s, length %d/%d",
			c.ticks, c.snake.Head(), c.snake.Direction(), c.snake.Len(), c.snake.TargetLength())
	}

	// eat before collision; both may reset in the same tick
	if c.snake.Head() == c.food.Position() {
		c.eat()
	}
	if c.snake.SelfCollision() {
		c.reset(ResetCollision)
	}

	return c.draw()
}

// Run ticks on the frontend clock until quit (returns nil), ctx ends, or a collaborator fails
func (c *Controller) Run(ctx context.Context) error {
	if c.fe.Clock == nil {
		return errors.New("run needs a clock")
	}
	for {
		if err := c.fe.Clock.Tick(ctx); err != nil {
			return err
		}
		if err := c.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (c *Controller) eat() {
	at := c.food.Position()

	// growth is only possible while the settled body still fits on the board
	if c.snake.TargetLength()+1 >= c.grid.Cells() {
		c.reset(ResetBoardFull)
		return
	}

	c.snake.Grow()
	if err := c.food.Relocate(c.snake.Cells()); err != nil {
		glog.Warningf("placing food after eating at %+v: %v", at, err)
		c.reset(ResetBoardFull)
		return
	}
	glog.V(1).Infof("ate food at %+v, target length %d, next food at %+v",
		at, c.snake.TargetLength(), c.food.Position())
	if c.listener != nil {
		c.listener.FoodEaten(at)
	}
}

func (c *Controller) reset(reason ResetReason) {
	glog.V(1).Infof("reset (%s) at tick %d with length %d", reason, c.ticks, c.snake.Len())
	c.snake.Reset()
	if c.listener != nil {
		c.listener.SnakeReset(reason)
	}
}

func (c *Controller) draw() error {
	s := c.fe.Surface
	s.Clear(c.cfg.Palette.Background)
	for _, d := range []Drawer{c.food, c.snake} {
		d.Draw(s)
	}
	return s.Present()
}

func (c *Controller) State() State { return c.state }

// Ticks returns how many ticks have run
func (c *Controller) Ticks() uint64 { return c.ticks }

func (c *Controller) Snake() *Snake { return c.snake }

func (c *Controller) Food() *Food { return c.food }

func (c *Controller) Grid() Grid { return c.grid }

func (c *Controller) Config() Config { return c.cfg }
