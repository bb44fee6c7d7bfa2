package world

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Run drives Tick() at rate until ctx is cancelled, checked only between
// ticks — consistent with an update either completing or the process
// exiting, never being interrupted mid-tick. clk is injected so tests can
// pass clock.NewMock() for deterministic timing.
func (w *World) Run(ctx context.Context, clk clock.Clock, rate time.Duration) {
	ticker := clk.Ticker(rate)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick()
		}
	}
}
