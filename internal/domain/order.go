package domain

import "time"

// OrderStatus represents the status of an order.
type OrderStatus string

// Order is a food order read by the dispatch core. Orders are created
// elsewhere; this core consumes them and advances their status.
type Order struct {
	ID              string
	RestaurantID    int64
	CustomerID      int64
	Status          OrderStatus
	DeliveryAddress string
	TotalAmount     float64
	CreatedAt       time.Time
}

// Restaurant is the pickup side of an order.
type Restaurant struct {
	ID      int64
	Name    string
	Address string
}
