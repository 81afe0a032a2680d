package refresh

import (
	"context"
	"log/slog"
	"time"
)

// Defaults for Waiter. Five attempts three seconds apart bounds a wait
// at fifteen seconds.
const (
	DefaultMaxAttempts = 5
	DefaultInterval    = 3 * time.Second
)

// Probe reports whether the awaited data has arrived.
// Returning an error aborts the wait immediately.
type Probe func(ctx context.Context) (bool, error)

// Waiter polls a probe at a fixed interval until it reports success,
// the attempt budget runs out, or the context is cancelled.
// The zero value is not usable; use NewWaiter.
type Waiter struct {
	maxAttempts int
	interval    time.Duration
	logger      *slog.Logger
}

// NewWaiter creates a Waiter. Non-positive maxAttempts is rejected;
// a non-positive interval falls back to DefaultInterval.
func NewWaiter(maxAttempts int, interval time.Duration) (*Waiter, error) {
	if maxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Waiter{
		maxAttempts: maxAttempts,
		interval:    interval,
		logger:      slog.Default(),
	}, nil
}

// Await polls probe until it reports true. Returns ErrDataUnavailable
// when the budget is exhausted, the probe's error if one occurs, or the
// context error on cancellation. There is no sleep after the last attempt.
func (w *Waiter) Await(ctx context.Context, probe Probe) error {
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ok, err := probe(ctx)
		if err != nil {
			return err
		}
		if ok {
			if attempt > 1 {
				w.logger.Debug("awaited data arrived", "attempt", attempt)
			}
			return nil
		}

		if attempt == w.maxAttempts {
			break
		}

		w.logger.Debug("awaited data not ready, will poll again",
			"attempt", attempt, "maxAttempts", w.maxAttempts)

		timer := time.NewTimer(w.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return ErrDataUnavailable
}
