package domain

// List of possible order statuses
const (
	OrderPending            OrderStatus = "PENDING"
	OrderRestaurantAccepted OrderStatus = "RESTAURANT_ACCEPTED"
	OrderDriverAssigned     OrderStatus = "DRIVER_ASSIGNED"
	OrderDelivered          OrderStatus = "DELIVERED"
	OrderCancelled          OrderStatus = "CANCELLED"
	OrderDeliveryFailed     OrderStatus = "DELIVERY_FAILED"
)

// List of possible delivery statuses
const (
	DeliveryAccepted  DeliveryStatus = "ACCEPTED"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

// List of possible vehicle types
const (
	VehicleBike      VehicleType = "bike"
	VehicleMotorbike VehicleType = "motorbike"
	VehicleCar       VehicleType = "car"
	VehicleBicycle   VehicleType = "bicycle"
)

// orderTransitions is the full order state machine. A status missing from the
// map is terminal.
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderPending: {
		OrderRestaurantAccepted: true,
		OrderCancelled:          true,
	},
	OrderRestaurantAccepted: {
		OrderDriverAssigned: true,
		OrderCancelled:      true,
	},
	OrderDriverAssigned: {
		OrderDelivered:      true,
		OrderDeliveryFailed: true,
	},
}

// deliveryTransitions is the delivery state machine: a delivery starts in
// ACCEPTED and ends in DELIVERED or FAILED, with no way back.
var deliveryTransitions = map[DeliveryStatus]map[DeliveryStatus]bool{
	DeliveryAccepted: {
		DeliveryDelivered: true,
		DeliveryFailed:    true,
	},
}

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderRestaurantAccepted, OrderDriverAssigned,
	OrderDelivered, OrderCancelled, OrderDeliveryFailed,
}

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryAccepted, DeliveryDelivered, DeliveryFailed,
}

var allowedVehicleTypes = [...]VehicleType{
	VehicleBike, VehicleMotorbike, VehicleCar, VehicleBicycle,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal order transition.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return orderTransitions[s][next]
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal delivery transition.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	return deliveryTransitions[s][next]
}

// Terminal reports whether no transition leaves s.
func (s DeliveryStatus) Terminal() bool {
	return s.Valid() && len(deliveryTransitions[s]) == 0
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// OrderStatusOnCompletion maps a completion outcome to the order status the
// fulfillment flow must record.
func OrderStatusOnCompletion(completed bool) OrderStatus {
	if completed {
		return OrderDelivered
	}
	return OrderDeliveryFailed
}

// DeliveryStatusOnCompletion maps a completion outcome to the delivery status
// the fulfillment flow must record.
func DeliveryStatusOnCompletion(completed bool) DeliveryStatus {
	if completed {
		return DeliveryDelivered
	}
	return DeliveryFailed
}
