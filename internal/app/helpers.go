package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkyoshi/easy-bites-sub000/internal/repository"
)

// swapped out in tests
var newPool = repository.NewPool

// connectDbWithRetry dials Postgres up to retries times, sleeping delay
// between attempts. Each attempt gets its own bounded timeout so one hung
// dial cannot eat the whole retry budget. Runs before the container logger
// exists, hence the stdlib log.
func connectDbWithRetry(ctx context.Context, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	const attemptTimeout = 3 * time.Second

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			log.Printf("db connected on attempt %d", attempt)
			return pool, nil
		}

		lastErr = err
		log.Printf("db connect failed (attempt %d/%d): %v", attempt, retries, err)
		if attempt == retries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}
