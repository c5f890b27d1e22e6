//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/ports/dispatchtx"
	"github.com/devkyoshi/easy-bites-sub000/internal/repository"
)

type DeliveryRepositorySuite struct {
	suite.Suite
	deliveryRepo *repository.DeliveryRepo
	courierRepo  *repository.CourierRepo
	orderRepo    *repository.OrderRepo
}

func (s *DeliveryRepositorySuite) SetupSuite() {
	s.deliveryRepo = repository.NewDeliveryRepo(tcPool)
	s.courierRepo = repository.NewCourierRepo(tcPool)
	s.orderRepo = repository.NewOrderRepo(tcPool)
}

func (s *DeliveryRepositorySuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"deliveries", "orders", "restaurants", "couriers"} {
		_, err := tcPool.Exec(ctx, `TRUNCATE `+table+` RESTART IDENTITY CASCADE`)
		s.Require().NoError(err)
	}
}

func (s *DeliveryRepositorySuite) createCourier(n int) int64 {
	id, err := s.courierRepo.Create(context.Background(), &domain.Courier{
		FirstName:     "Kasun",
		LastName:      fmt.Sprintf("Perera%d", n),
		Phone:         fmt.Sprintf("+9477000000%d", n),
		VehicleType:   domain.VehicleMotorbike,
		VehicleNumber: fmt.Sprintf("WP-%04d", n),
		LicenseNumber: fmt.Sprintf("B%07d", n),
	})
	s.Require().NoError(err)
	return id
}

func (s *DeliveryRepositorySuite) createOrder(status domain.OrderStatus) string {
	ctx := context.Background()

	var restaurantID int64
	err := tcPool.QueryRow(ctx, `
		INSERT INTO restaurants(name, address) VALUES('Upali''s', 'Colombo 07') RETURNING id
	`).Scan(&restaurantID)
	s.Require().NoError(err)

	orderID := uuid.NewString()
	_, err = tcPool.Exec(ctx, `
		INSERT INTO orders(id, restaurant_id, customer_id, status, delivery_address, total_amount)
		VALUES($1,$2,42,$3,'221B Galle Road',2450.00)
	`, orderID, restaurantID, status)
	s.Require().NoError(err)
	return orderID
}

func (s *DeliveryRepositorySuite) acceptInTx(ctx context.Context, courierID int64, orderID string) (int64, error) {
	var deliveryID int64
	err := s.deliveryRepo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		order, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		s.Require().NotNil(order)

		taken, err := tx.DeliveryExists(ctx, orderID, domain.DeliveryAccepted, domain.DeliveryDelivered)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("order %s already taken", orderID)
		}

		deliveryID, err = tx.InsertDelivery(ctx, &domain.Delivery{
			OrderID:     orderID,
			CourierID:   courierID,
			PickupLat:   6.9271,
			PickupLng:   79.8612,
			DeliveryLat: 6.9300,
			DeliveryLng: 79.8500,
			Status:      domain.DeliveryAccepted,
		})
		if err != nil {
			return err
		}
		if err := tx.SetCourierAvailability(ctx, courierID, false); err != nil {
			return err
		}
		return tx.UpdateOrderStatus(ctx, orderID, domain.OrderDriverAssigned)
	})
	return deliveryID, err
}

func (s *DeliveryRepositorySuite) TestWithTx_AcceptFlow() {
	ctx := context.Background()

	courierID := s.createCourier(1)
	orderID := s.createOrder(domain.OrderRestaurantAccepted)

	deliveryID, err := s.acceptInTx(ctx, courierID, orderID)
	s.Require().NoError(err)
	s.Require().Positive(deliveryID)

	d, err := s.deliveryRepo.Get(ctx, deliveryID)
	s.Require().NoError(err)
	s.Require().NotNil(d)
	s.Equal(domain.DeliveryAccepted, d.Status)
	s.Equal(orderID, d.OrderID)

	courier, err := s.courierRepo.Get(ctx, courierID)
	s.Require().NoError(err)
	s.False(courier.IsAvailable)

	order, err := s.orderRepo.Get(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(domain.OrderDriverAssigned, order.Status)
}

func (s *DeliveryRepositorySuite) TestWithTx_RollbackOnError() {
	ctx := context.Background()

	courierID := s.createCourier(1)
	orderID := s.createOrder(domain.OrderRestaurantAccepted)

	err := s.deliveryRepo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		if _, err := tx.InsertDelivery(ctx, &domain.Delivery{
			OrderID:   orderID,
			CourierID: courierID,
			Status:    domain.DeliveryAccepted,
		}); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	s.Require().Error(err)

	d, err := s.deliveryRepo.GetByOrder(ctx, orderID)
	s.Require().NoError(err)
	s.Nil(d)
}

func (s *DeliveryRepositorySuite) TestWithTx_ConcurrentAccept_OnlyOneWins() {
	ctx := context.Background()

	orderID := s.createOrder(domain.OrderRestaurantAccepted)

	const racers = 8
	courierIDs := make([]int64, racers)
	for i := range courierIDs {
		courierIDs[i] = s.createCourier(i)
	}

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.acceptInTx(ctx, courierIDs[i], orderID)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		}
	}
	s.Equal(1, wins)

	var total int
	s.Require().NoError(tcPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM deliveries WHERE order_id=$1`, orderID).Scan(&total))
	s.Equal(1, total)
}

func (s *DeliveryRepositorySuite) TestExistsByOrderInStatuses_IgnoresFailed() {
	ctx := context.Background()

	courierID := s.createCourier(1)
	orderID := s.createOrder(domain.OrderRestaurantAccepted)

	deliveryID, err := s.acceptInTx(ctx, courierID, orderID)
	s.Require().NoError(err)

	d, err := s.deliveryRepo.Get(ctx, deliveryID)
	s.Require().NoError(err)
	d.Status = domain.DeliveryFailed
	s.Require().NoError(s.deliveryRepo.Save(ctx, d))

	taken, err := s.deliveryRepo.ExistsByOrderInStatuses(ctx, orderID,
		domain.DeliveryAccepted, domain.DeliveryDelivered)
	s.Require().NoError(err)
	s.False(taken)
}

func (s *DeliveryRepositorySuite) TestListByCourierAndStatus() {
	ctx := context.Background()

	courierID := s.createCourier(1)
	other := s.createCourier(2)

	first, err := s.acceptInTx(ctx, courierID, s.createOrder(domain.OrderRestaurantAccepted))
	s.Require().NoError(err)
	_, err = s.acceptInTx(ctx, other, s.createOrder(domain.OrderRestaurantAccepted))
	s.Require().NoError(err)

	d, err := s.deliveryRepo.Get(ctx, first)
	s.Require().NoError(err)
	d.Status = domain.DeliveryDelivered
	s.Require().NoError(s.deliveryRepo.Save(ctx, d))

	active, err := s.deliveryRepo.ListByCourierAndStatus(ctx, courierID, domain.DeliveryAccepted)
	s.Require().NoError(err)
	s.Empty(active)

	history, err := s.deliveryRepo.ListByCourierAndStatus(ctx, courierID,
		domain.DeliveryDelivered, domain.DeliveryFailed)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(first, history[0].ID)
}

func (s *DeliveryRepositorySuite) TestSave_PersistsRating() {
	ctx := context.Background()

	courierID := s.createCourier(1)
	deliveryID, err := s.acceptInTx(ctx, courierID, s.createOrder(domain.OrderRestaurantAccepted))
	s.Require().NoError(err)

	d, err := s.deliveryRepo.Get(ctx, deliveryID)
	s.Require().NoError(err)

	rating := 5
	d.Status = domain.DeliveryDelivered
	d.Rating = &rating
	d.RatingComment = "fast and friendly"
	s.Require().NoError(s.deliveryRepo.Save(ctx, d))

	got, err := s.deliveryRepo.Get(ctx, deliveryID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Rating)
	s.Equal(5, *got.Rating)
	s.Equal("fast and friendly", got.RatingComment)
}

func TestDeliveryRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositorySuite))
}
