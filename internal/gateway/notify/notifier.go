// Package notify publishes courier and customer notifications.
package notify

import "context"

// CourierNotice invites one courier to pick up a dispatchable order.
type CourierNotice struct {
	CourierID    int64   `json:"courier_id"`
	CourierName  string  `json:"courier_name"`
	OrderID      string  `json:"order_id"`
	RestaurantID int64   `json:"restaurant_id"`
	Restaurant   string  `json:"restaurant"`
	Address      string  `json:"address"`
	TotalAmount  float64 `json:"total_amount"`
	DistanceKm   float64 `json:"distance_km"`
}

// CustomerNotice tells a customer about a change to their order.
type CustomerNotice struct {
	OrderID    string `json:"order_id"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	CourierID  int64  `json:"courier_id,omitempty"`
}

// Notifier delivers notices to the outside world.
type Notifier interface {
	NotifyCourier(ctx context.Context, n CourierNotice) error
	NotifyCustomer(ctx context.Context, n CustomerNotice) error
}

// Nop is a Notifier that drops everything, for deployments without Kafka.
type Nop struct{}

func (Nop) NotifyCourier(context.Context, CourierNotice) error { return nil }
func (Nop) NotifyCustomer(context.Context, CustomerNotice) error {
	return nil
}
