package driver

import (
	"fmt"
	"time"

	"github.com/yildizm/SortVis/internal/sorting"
)

// RunConfig is supplied once at run start and never changes afterwards
type RunConfig struct {
	Algorithm     sorting.Kind
	Arrangement   string
	TickInterval  time.Duration
	SweepInterval time.Duration
	BarWidth      int
	// Countdown is the number of one-second countdown ticks before the
	// stepper starts.
	Countdown int
	Seed      uint64
}

// Validate rejects settings a run cannot start with
func (c RunConfig) Validate() error {
	if !c.Algorithm.Supported() {
		if _, err := sorting.ParseKind(c.Algorithm.String()); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", sorting.ErrUnsupportedAlgorithm, c.Algorithm.DisplayName())
	}
	if c.TickInterval < time.Millisecond {
		return fmt.Errorf("%w: tick interval must be at least 1ms, got %v", sorting.ErrInvalidConfig, c.TickInterval)
	}
	if c.SweepInterval < 0 {
		return fmt.Errorf("%w: sweep interval must be non-negative, got %v", sorting.ErrInvalidConfig, c.SweepInterval)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("%w: bar width must be at least 1, got %d", sorting.ErrInvalidConfig, c.BarWidth)
	}
	if c.Countdown < 0 {
		return fmt.Errorf("%w: countdown must be non-negative, got %d", sorting.ErrInvalidConfig, c.Countdown)
	}
	if c.Arrangement != "" {
		if _, err := sorting.ParseArrangement(c.Arrangement); err != nil {
			return err
		}
	}
	return nil
}

// sweepInterval falls back to the tick interval
func (c RunConfig) sweepInterval() time.Duration {
	if c.SweepInterval > 0 {
		return c.SweepInterval
	}
	return c.TickInterval
}
