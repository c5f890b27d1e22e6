package fulfillment

import (
	"context"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/ports/dispatchtx"
)

type deliveryRepository interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	ListByCourierAndStatus(ctx context.Context, courierID int64, statuses ...domain.DeliveryStatus) ([]domain.Delivery, error)
	Save(ctx context.Context, d *domain.Delivery) error
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}

type orderRepository interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
}

type notifier interface {
	NotifyCustomer(ctx context.Context, n notify.CustomerNotice) error
}
