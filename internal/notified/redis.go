package notified

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dispatch:notified:"

// Redis is a Store backed by per-order marker keys, so the announced set
// survives restarts and is shared between workers.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis store. Marker keys expire after ttl so the set
// does not grow without bound.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (s *Redis) Contains(ctx context.Context, orderID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+orderID).Result()
	if err != nil {
		return false, fmt.Errorf("check notified marker for order %s: %w", orderID, err)
	}
	return n > 0, nil
}

func (s *Redis) Add(ctx context.Context, orderID string) error {
	if err := s.client.Set(ctx, keyPrefix+orderID, "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("set notified marker for order %s: %w", orderID, err)
	}
	return nil
}
