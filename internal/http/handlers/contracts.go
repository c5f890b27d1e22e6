package handlers

import (
	"context"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/courier"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/dispatch"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/fulfillment"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/stats"
)

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	ListAvailable(ctx context.Context) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
	Delete(ctx context.Context, id int64) error
	SetLocation(ctx context.Context, id int64, lat, lng float64) error
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// NewCourierUsecase wires a courier Service into a courierUsecase.
func NewCourierUsecase(svc *courier.Service) courierUsecase {
	return svc
}

type dispatchUsecase interface {
	NearbyOrders(ctx context.Context, courierID int64, lat, lng float64) ([]dispatch.NearbyOrder, error)
	NotifyNewOrder(ctx context.Context, orderID string) (dispatch.NotifyResult, error)
	Accept(ctx context.Context, courierID int64, orderID string) (*domain.Delivery, error)
}

// NewDispatchUsecase wires a dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type fulfillmentUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
	ListAll(ctx context.Context) ([]domain.Delivery, error)
	Active(ctx context.Context, courierID int64) ([]domain.Delivery, error)
	History(ctx context.Context, courierID int64) ([]domain.Delivery, error)
	Complete(ctx context.Context, deliveryID int64, success bool, notes, proofImage string) (*domain.Delivery, error)
	Rate(ctx context.Context, deliveryID int64, rating int, comment string) (*domain.Delivery, error)
}

// NewFulfillmentUsecase wires a fulfillment Service into a fulfillmentUsecase.
func NewFulfillmentUsecase(svc *fulfillment.Service) fulfillmentUsecase {
	return svc
}

type statsUsecase interface {
	Weekly(ctx context.Context, courierID int64) (stats.WeeklyStats, error)
	Ratings(ctx context.Context, courierID int64) (stats.RatingSummary, error)
	AverageRating(ctx context.Context, courierID int64) (float64, error)
}

// NewStatsUsecase wires a stats Service into a statsUsecase.
func NewStatsUsecase(svc *stats.Service) statsUsecase {
	return svc
}
