package handlers

import (
	"time"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

type courierDTO struct {
	ID            int64              `json:"id"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Phone         string             `json:"phone"`
	VehicleType   domain.VehicleType `json:"vehicle_type"`
	VehicleNumber string             `json:"vehicle_number"`
	LicenseNumber string             `json:"license_number"`
	IsAvailable   bool               `json:"is_available"`
	CurrentLat    *float64           `json:"current_lat,omitempty"`
	CurrentLng    *float64           `json:"current_lng,omitempty"`
}

type createCourierRequest struct {
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Phone         string             `json:"phone"`
	VehicleType   domain.VehicleType `json:"vehicle_type"`
	VehicleNumber string             `json:"vehicle_number"`
	LicenseNumber string             `json:"license_number"`
}

type updateCourierRequest struct {
	FirstName     *string             `json:"first_name,omitempty"`
	LastName      *string             `json:"last_name,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	VehicleType   *domain.VehicleType `json:"vehicle_type,omitempty"`
	VehicleNumber *string             `json:"vehicle_number,omitempty"`
	LicenseNumber *string             `json:"license_number,omitempty"`
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type availabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

type nearbyOrderDTO struct {
	OrderID           string  `json:"order_id"`
	RestaurantID      int64   `json:"restaurant_id"`
	RestaurantName    string  `json:"restaurant_name"`
	RestaurantAddress string  `json:"restaurant_address"`
	DeliveryAddress   string  `json:"delivery_address"`
	TotalAmount       float64 `json:"total_amount"`
	DistanceKm        float64 `json:"distance_km"`
}

type notifyOrderRequest struct {
	OrderID string `json:"order_id"`
}

type notifyOrderResponse struct {
	NotifiedCouriers int  `json:"notified_couriers"`
	AlreadyNotified  bool `json:"already_notified"`
}

type acceptOrderRequest struct {
	CourierID int64  `json:"courier_id"`
	OrderID   string `json:"order_id"`
}

type deliveryDTO struct {
	ID            int64                 `json:"id"`
	OrderID       string                `json:"order_id"`
	CourierID     int64                 `json:"courier_id"`
	PickupLat     float64               `json:"pickup_lat"`
	PickupLng     float64               `json:"pickup_lng"`
	DeliveryLat   float64               `json:"delivery_lat"`
	DeliveryLng   float64               `json:"delivery_lng"`
	Status        domain.DeliveryStatus `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	ProofImage    string                `json:"proof_image,omitempty"`
	Rating        *int                  `json:"rating,omitempty"`
	RatingComment string                `json:"rating_comment,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type completeDeliveryRequest struct {
	Success    bool   `json:"success"`
	Notes      string `json:"notes,omitempty"`
	ProofImage string `json:"proof_image,omitempty"`
}

type rateDeliveryRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type dayStatsDTO struct {
	Day        time.Time `json:"day"`
	Deliveries int64     `json:"deliveries"`
	Earnings   float64   `json:"earnings"`
}

type weeklyStatsDTO struct {
	CourierID  int64         `json:"courier_id"`
	From       time.Time     `json:"from"`
	To         time.Time     `json:"to"`
	Days       []dayStatsDTO `json:"days"`
	Deliveries int64         `json:"deliveries"`
	Earnings   float64       `json:"earnings"`
}

type ratingSummaryDTO struct {
	CourierID    int64         `json:"courier_id"`
	Distribution map[int]int64 `json:"distribution"`
}

type averageRatingDTO struct {
	CourierID int64   `json:"courier_id"`
	Average   float64 `json:"average"`
}
