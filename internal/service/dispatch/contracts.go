//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/geocode"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/ports/dispatchtx"
)

type courierRepository interface {
	SetLocation(ctx context.Context, id int64, lat, lng float64) (bool, error)
	ListAvailable(ctx context.Context) ([]domain.Courier, error)
}

type orderRepository interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
}

type deliveryRepository interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}

type notifiedStore interface {
	Contains(ctx context.Context, orderID string) (bool, error)
	Add(ctx context.Context, orderID string) error
}

type geocoder interface {
	Resolve(ctx context.Context, address string) (geocode.Point, error)
}

type notifier interface {
	NotifyCourier(ctx context.Context, n notify.CourierNotice) error
	NotifyCustomer(ctx context.Context, n notify.CustomerNotice) error
}

type counter interface {
	Inc()
}
