// Package dispatchtx defines the repository surface available inside a
// dispatch transaction. Implementations run every call on the same database
// transaction so that courier and order rows stay locked until commit.
package dispatchtx

import (
	"context"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

// Repository is the transactional view used while accepting an order and
// while completing a delivery.
type Repository interface {
	// GetCourierForUpdate locks the courier row. Returns nil when absent.
	GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error)
	// GetOrderForUpdate locks the order row. Returns nil when absent.
	GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	// DeliveryExists reports whether any delivery in the given statuses
	// already references the order.
	DeliveryExists(ctx context.Context, orderID string, statuses ...domain.DeliveryStatus) (bool, error)
	InsertDelivery(ctx context.Context, d *domain.Delivery) (int64, error)
	// GetDeliveryForUpdate locks the delivery row. Returns nil when absent.
	GetDeliveryForUpdate(ctx context.Context, id int64) (*domain.Delivery, error)
	SaveDelivery(ctx context.Context, d *domain.Delivery) error
	SetCourierAvailability(ctx context.Context, id int64, available bool) error
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
