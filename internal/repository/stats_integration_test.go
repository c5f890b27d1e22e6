//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/repository"
)

type StatsRepositorySuite struct {
	suite.Suite
	repo        *repository.StatsRepo
	courierRepo *repository.CourierRepo
}

func (s *StatsRepositorySuite) SetupSuite() {
	s.repo = repository.NewStatsRepo(tcPool)
	s.courierRepo = repository.NewCourierRepo(tcPool)
}

func (s *StatsRepositorySuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"deliveries", "orders", "restaurants", "couriers"} {
		_, err := tcPool.Exec(ctx, `TRUNCATE `+table+` RESTART IDENTITY CASCADE`)
		s.Require().NoError(err)
	}
}

func (s *StatsRepositorySuite) createCourier(n int) int64 {
	id, err := s.courierRepo.Create(context.Background(), &domain.Courier{
		FirstName:     "Kasun",
		LastName:      fmt.Sprintf("Perera%d", n),
		Phone:         fmt.Sprintf("+9477000000%d", n),
		VehicleType:   domain.VehicleBicycle,
		VehicleNumber: fmt.Sprintf("WP-%04d", n),
		LicenseNumber: fmt.Sprintf("B%07d", n),
	})
	s.Require().NoError(err)
	return id
}

// seedDelivery inserts a completed delivery with a backdated updated_at and a
// matching order carrying the given total.
func (s *StatsRepositorySuite) seedDelivery(courierID int64, status domain.DeliveryStatus, total float64, completedAt time.Time, rating *int) {
	ctx := context.Background()

	var restaurantID int64
	err := tcPool.QueryRow(ctx, `
		INSERT INTO restaurants(name, address) VALUES('Green Cabin', 'Colpetty') RETURNING id
	`).Scan(&restaurantID)
	s.Require().NoError(err)

	orderID := uuid.NewString()
	_, err = tcPool.Exec(ctx, `
		INSERT INTO orders(id, restaurant_id, customer_id, status, delivery_address, total_amount)
		VALUES($1,$2,7,$3,'12 Ward Place',$4)
	`, orderID, restaurantID, domain.OrderDelivered, total)
	s.Require().NoError(err)

	_, err = tcPool.Exec(ctx, `
		INSERT INTO deliveries(order_id, courier_id, pickup_lat, pickup_lng, delivery_lat, delivery_lng, status, rating, updated_at)
		VALUES($1,$2,6.9,79.8,6.91,79.81,$3,$4,$5)
	`, orderID, courierID, status, rating, completedAt)
	s.Require().NoError(err)
}

func (s *StatsRepositorySuite) TestDailyRollups_GroupsByDayWindowAndStatus() {
	ctx := context.Background()
	courierID := s.createCourier(1)

	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7)

	s.seedDelivery(courierID, domain.DeliveryDelivered, 1000, weekStart.Add(25*time.Hour), nil)
	s.seedDelivery(courierID, domain.DeliveryDelivered, 500, weekStart.Add(30*time.Hour), nil)
	s.seedDelivery(courierID, domain.DeliveryDelivered, 200, weekStart.Add(96*time.Hour), nil)
	// outside the window
	s.seedDelivery(courierID, domain.DeliveryDelivered, 900, weekStart.Add(-time.Hour), nil)
	// failed deliveries never count
	s.seedDelivery(courierID, domain.DeliveryFailed, 700, weekStart.Add(72*time.Hour), nil)

	rollups, err := s.repo.DailyRollups(ctx, courierID, weekStart, weekEnd)
	s.Require().NoError(err)
	s.Require().Len(rollups, 2)

	s.Equal(weekStart.AddDate(0, 0, 1), rollups[0].Day.UTC())
	s.Equal(int64(2), rollups[0].Deliveries)
	s.InDelta(1500.0, rollups[0].OrderTotal, 0.001)

	s.Equal(weekStart.AddDate(0, 0, 4), rollups[1].Day.UTC())
	s.Equal(int64(1), rollups[1].Deliveries)
	s.InDelta(200.0, rollups[1].OrderTotal, 0.001)
}

func (s *StatsRepositorySuite) TestDailyRollups_Empty() {
	ctx := context.Background()
	courierID := s.createCourier(1)

	now := time.Now().UTC()
	rollups, err := s.repo.DailyRollups(ctx, courierID, now.AddDate(0, 0, -7), now)
	s.Require().NoError(err)
	s.Empty(rollups)
}

func (s *StatsRepositorySuite) TestRatingCountsAndAverage() {
	ctx := context.Background()
	courierID := s.createCourier(1)
	other := s.createCourier(2)

	now := time.Now().UTC()
	five, four := 5, 4
	s.seedDelivery(courierID, domain.DeliveryDelivered, 100, now, &five)
	s.seedDelivery(courierID, domain.DeliveryDelivered, 100, now, &five)
	s.seedDelivery(courierID, domain.DeliveryDelivered, 100, now, &four)
	s.seedDelivery(courierID, domain.DeliveryDelivered, 100, now, nil)
	s.seedDelivery(other, domain.DeliveryDelivered, 100, now, &four)

	counts, err := s.repo.RatingCounts(ctx, courierID)
	s.Require().NoError(err)
	s.Equal(map[int]int64{5: 2, 4: 1}, counts)

	avg, err := s.repo.AverageRating(ctx, courierID)
	s.Require().NoError(err)
	s.Require().NotNil(avg)
	s.InDelta(14.0/3.0, *avg, 0.001)
}

func (s *StatsRepositorySuite) TestAverageRating_NoRatings() {
	ctx := context.Background()
	courierID := s.createCourier(1)

	avg, err := s.repo.AverageRating(ctx, courierID)
	s.Require().NoError(err)
	s.Nil(avg)
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}
