package driver

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTickLimit is returned when a run exceeds its tick budget
var ErrTickLimit = errors.New("tick limit reached")

// RunOptions tunes a headless run
type RunOptions struct {
	// MaxTicks bounds the number of ticks; 0 means unbounded.
	MaxTicks int
	// NoDelay skips the timer between ticks.
	NoDelay bool
}

// Run drives s on the calling goroutine until it finishes, fails, or ctx is
// cancelled. Each tick runs to completion before the next timer is armed,
// so at most one tick is ever in flight.
func Run(ctx context.Context, s *Session, opts RunOptions) error {
	ticks := 0
	for s.Active() {
		if opts.MaxTicks > 0 && ticks >= opts.MaxTicks {
			s.Cancel()
			return fmt.Errorf("%w after %d ticks", ErrTickLimit, ticks)
		}

		if opts.NoDelay {
			if err := ctx.Err(); err != nil {
				s.Cancel()
				return err
			}
		} else if err := wait(ctx, s.Interval()); err != nil {
			s.Cancel()
			return err
		}

		if _, err := s.Advance(); err != nil {
			return err
		}
		ticks++
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Generation issues tokens for scheduled ticks. Cancelling bumps the
// generation so every outstanding token is ignored when it fires; this is
// how an event-loop scheduler cancels a pending timer.
type Generation struct {
	current uint64
}

// Token returns the token to attach to the next scheduled tick
func (g *Generation) Token() uint64 {
	return g.current
}

// Cancel invalidates every outstanding token
func (g *Generation) Cancel() {
	g.current++
}

// Valid reports whether a fired tick still belongs to the live schedule
func (g *Generation) Valid(token uint64) bool {
	return token == g.current
}
