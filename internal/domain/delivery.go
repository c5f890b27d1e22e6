package domain

import "time"

// DeliveryStatus represents the status of a delivery.
type DeliveryStatus string

// Delivery ties an order to the courier fulfilling it. A delivery record is
// created only when a courier accepts an order; the pickup and dropoff
// coordinates are geocoded once at that point and never change afterwards.
type Delivery struct {
	ID            int64
	OrderID       string
	CourierID     int64
	PickupLat     float64
	PickupLng     float64
	DeliveryLat   float64
	DeliveryLng   float64
	Status        DeliveryStatus
	Notes         string
	ProofImage    string
	Rating        *int
	RatingComment string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Rated reports whether the customer has rated the delivery.
func (d *Delivery) Rated() bool { return d.Rating != nil }

// DailyDeliveryRollup is one day of a courier's completed-delivery totals.
type DailyDeliveryRollup struct {
	Day        time.Time
	Deliveries int64
	OrderTotal float64
}

// List of valid ratings
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an acceptable customer rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
