package handlers

import (
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/dispatch"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/stats"
)

func (r createCourierRequest) toModel() *domain.Courier {
	return &domain.Courier{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
		LicenseNumber: r.LicenseNumber,
	}
}

func (r updateCourierRequest) toModel(id int64) domain.PartialCourierUpdate {
	return domain.PartialCourierUpdate{
		ID:            id,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
		LicenseNumber: r.LicenseNumber,
	}
}

func courierToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Phone:         c.Phone,
		VehicleType:   c.VehicleType,
		VehicleNumber: c.VehicleNumber,
		LicenseNumber: c.LicenseNumber,
		IsAvailable:   c.IsAvailable,
		CurrentLat:    c.CurrentLat,
		CurrentLng:    c.CurrentLng,
	}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}

func nearbyToResponse(list []dispatch.NearbyOrder) []nearbyOrderDTO {
	out := make([]nearbyOrderDTO, 0, len(list))
	for _, n := range list {
		out = append(out, nearbyOrderDTO{
			OrderID:           n.Order.ID,
			RestaurantID:      n.Restaurant.ID,
			RestaurantName:    n.Restaurant.Name,
			RestaurantAddress: n.Restaurant.Address,
			DeliveryAddress:   n.Order.DeliveryAddress,
			TotalAmount:       n.Order.TotalAmount,
			DistanceKm:        n.DistanceKm,
		})
	}
	return out
}

func deliveryToResponse(d domain.Delivery) deliveryDTO {
	return deliveryDTO{
		ID:            d.ID,
		OrderID:       d.OrderID,
		CourierID:     d.CourierID,
		PickupLat:     d.PickupLat,
		PickupLng:     d.PickupLng,
		DeliveryLat:   d.DeliveryLat,
		DeliveryLng:   d.DeliveryLng,
		Status:        d.Status,
		Notes:         d.Notes,
		ProofImage:    d.ProofImage,
		Rating:        d.Rating,
		RatingComment: d.RatingComment,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func deliveriesToResponse(list []domain.Delivery) []deliveryDTO {
	out := make([]deliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func weeklyToResponse(s stats.WeeklyStats) weeklyStatsDTO {
	days := make([]dayStatsDTO, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, dayStatsDTO{
			Day:        d.Day,
			Deliveries: d.Deliveries,
			Earnings:   d.Earnings,
		})
	}
	return weeklyStatsDTO{
		CourierID:  s.CourierID,
		From:       s.From,
		To:         s.To,
		Days:       days,
		Deliveries: s.Deliveries,
		Earnings:   s.Earnings,
	}
}

func ratingsToResponse(s stats.RatingSummary) ratingSummaryDTO {
	return ratingSummaryDTO{
		CourierID:    s.CourierID,
		Distribution: s.Distribution,
	}
}
