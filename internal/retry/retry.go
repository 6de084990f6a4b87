package retry

import (
	"context"
	"fmt"
	"time"
)

type Config struct {
	Attempts int
	Delay    time.Duration
	Backoff  bool // linear backoff: delay grows with the attempt number
}

// Do runs fn up to Attempts times, sleeping between tries, and stops early
// when the context is cancelled.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if attempt == cfg.Attempts {
				return fmt.Errorf("failed after %d attempts: %w", cfg.Attempts, err)
			}

			delay := cfg.Delay
			if cfg.Backoff {
				delay = time.Duration(attempt) * cfg.Delay
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				continue
			}
		}
		return nil
	}

	return lastErr
}
