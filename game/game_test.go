package game

import (
	"context"
	"image/color"
	"math/rand/v2"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return cfg
}

type drawnCell struct {
	p        Position
	c        color.Color
	bordered bool
}

// records frames instead of painting them
type fakeSurface struct {
	background color.Color
	frame      []drawnCell
	presented  []drawnCell
	presents   int
	err        error
}

func (s *fakeSurface) Clear(c color.Color) {
	s.background = c
	s.frame = s.frame[:0]
}

func (s *fakeSurface) DrawCell(p Position, c color.Color, bordered bool) {
	s.frame = append(s.frame, drawnCell{p: p, c: c, bordered: bordered})
}

func (s *fakeSurface) Present() error {
	s.presents++
	s.presented = append([]drawnCell(nil), s.frame...)
	return s.err
}

// hands out one batch of events per Poll
type fakeInput struct {
	batches [][]Event
}

func (in *fakeInput) push(evs ...Event) {
	in.batches = append(in.batches, evs)
}

func (in *fakeInput) Poll() []Event {
	if len(in.batches) == 0 {
		return nil
	}
	evs := in.batches[0]
	in.batches = in.batches[1:]
	return evs
}

// never blocks; counts ticks and cancels after limit when set
type fakeClock struct {
	ticks  int
	limit  int
	cancel context.CancelFunc
}

func (c *fakeClock) Tick(ctx context.Context) error {
	c.ticks++
	if c.limit > 0 && c.ticks > c.limit && c.cancel != nil {
		c.cancel()
	}
	return ctx.Err()
}

type recordingListener struct {
	eaten  []Position
	resets []ResetReason
}

func (l *recordingListener) FoodEaten(at Position) {
	l.eaten = append(l.eaten, at)
}

func (l *recordingListener) SnakeReset(reason ResetReason) {
	l.resets = append(l.resets, reason)
}
