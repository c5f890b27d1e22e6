package orders

import "time"

// Event is the order-status change published on the orders topic. Only the
// status decides the action; CreatedAt is carried for logging.
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
