// Package notified tracks which orders have already been broadcast to
// couriers, so repeated order events do not page the fleet twice.
package notified

import (
	"context"
	"sync"
)

// Store records order ids that have been announced.
type Store interface {
	// Contains reports whether the order was announced already.
	Contains(ctx context.Context, orderID string) (bool, error)
	// Add marks the order as announced. Adding twice is not an error.
	Add(ctx context.Context, orderID string) error
}

// InMemory is a process-local Store. Contents are lost on restart.
type InMemory struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewInMemory creates an empty InMemory store.
func NewInMemory() *InMemory {
	return &InMemory{seen: make(map[string]struct{})}
}

func (s *InMemory) Contains(_ context.Context, orderID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[orderID]
	return ok, nil
}

func (s *InMemory) Add(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[orderID] = struct{}{}
	return nil
}
