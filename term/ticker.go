package term

import (
	"context"
	"time"
)

// Ticker is a game.Clock firing a fixed number of times per second
type Ticker struct {
	t *time.Ticker
}

func NewTicker(tps int) *Ticker {
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(tps))}
}

// Tick blocks until the next tick or until ctx is done.
// Ticks missed while the caller was busy are dropped, not queued.
func (k *Ticker) Tick(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-k.t.C:
		return nil
	}
}

func (k *Ticker) Stop() {
	k.t.Stop()
}
