//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders

package orders

import (
	"context"
)

// DispatchPort abstracts the subset of dispatch service operations
// needed by orders Processor when handling order events
type DispatchPort interface {
	NotifyNewOrder(ctx context.Context, orderID string) error
}

// AnnouncedSet records orders that must never be announced (again).
type AnnouncedSet interface {
	Add(ctx context.Context, orderID string) error
}
