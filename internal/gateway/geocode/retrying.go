package geocode

import (
	"context"
	"errors"
	"time"

	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig bounds the retry loop of a Retrying geocoder.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Retrying decorates a Geocoder with bounded exponential-backoff retries.
type Retrying struct {
	next    Geocoder
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetrying wraps next with retries. Returns nil when next is nil.
func NewRetrying(next Geocoder, logger logx.Logger, retries counter, cfg RetryConfig) *Retrying {
	if next == nil {
		return nil
	}
	return &Retrying{next: next, logger: logger, retries: retries, cfg: cfg}
}

func (g *Retrying) Resolve(ctx context.Context, address string) (Point, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		p, err := g.next.Resolve(ctx, address)
		if err == nil {
			return p, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("geocoder retry",
			logx.String("address", address),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return Point{}, lastErr
}

// isRetryable treats transport failures as transient; an address with no
// results will not improve on retry.
func isRetryable(err error) bool {
	return !errors.Is(err, errNoResults) && !errors.Is(err, context.Canceled)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
