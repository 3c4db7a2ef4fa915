package pong

import (
	"context"
	"time"
)

// Frontend is an input source and drawing surface driven by Run.
type Frontend interface {
	Canvas
	// PollEvents returns the events received since the previous call
	// without blocking.
	PollEvents() []Event
}

// Run drives g with the standard Input → Update → Draw cycle until a close
// event is seen. The loop sleeps for whatever is left of each frame's time
// budget; cancelling ctx is the only way to interrupt that wait.
func Run(ctx context.Context, g *Game, f Frontend) error {
	frameTime := g.Rules().FrameTime
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		frameStart := time.Now()

		if err := g.Tick(f.PollEvents(), f); err != nil {
			return err
		}
		if g.Closed() {
			return nil
		}

		elapsed := time.Since(frameStart)
		if elapsed >= frameTime {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		timer.Reset(frameTime - elapsed)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
