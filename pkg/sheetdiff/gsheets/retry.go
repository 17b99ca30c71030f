package gsheets

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// RetryConfig controls how API calls are retried.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Timeout    time.Duration
}

// withRetry runs operation until it succeeds, the retries are exhausted or
// ctx is done. Each attempt gets its own timeout.
func withRetry[T any](ctx context.Context, cfg RetryConfig, operation func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		opCtx, cancel := ctx, context.CancelFunc(func() {})
		if cfg.Timeout > 0 {
			opCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		}
		result, err := operation(opCtx)
		cancel()
		if err == nil {
			return result, nil
		}
		lastErr = err

		log.Debug().Err(err).Int("attempt", attempt+1).Msg("Sheets API call failed")

		if attempt < cfg.MaxRetries {
			delay := backoffDelay(attempt, cfg.BaseDelay, cfg.MaxDelay)
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, fmt.Errorf("operation failed after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

func backoffDelay(attempt int, base, maxDelay time.Duration) time.Duration {
	// 2^30 is the largest safe multiplier for int
	delay := time.Duration(1<<min(attempt, 30)) * base
	if delay > maxDelay {
		delay = maxDelay
	}

	// jitter between 0.5x and 1.5x
	delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	return min(delay, maxDelay)
}
