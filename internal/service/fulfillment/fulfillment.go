// Package fulfillment tracks a delivery from acceptance to its terminal
// outcome and carries courier ratings.
package fulfillment

import (
	"context"
	"strings"
	"time"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
	"github.com/devkyoshi/easy-bites-sub000/internal/ports/dispatchtx"
)

// Service coordinates delivery completion and rating.
type Service struct {
	deliveries       deliveryRepository
	orders           orderRepository
	notifier         notifier
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a fulfillment Service.
func NewService(deliveries deliveryRepository, orders orderRepository, n notifier, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		deliveries:       deliveries,
		orders:           orders,
		notifier:         n,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get retrieves a delivery by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.deliveries.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrDeliveryNotFound
	}
	return d, nil
}

// ListAll returns every delivery, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.deliveries.List(ctx)
}

// Active returns the courier's in-flight deliveries.
// Returns apperr.ErrNoContent when there are none.
func (s *Service) Active(ctx context.Context, courierID int64) ([]domain.Delivery, error) {
	return s.listForCourier(ctx, courierID, domain.DeliveryAccepted)
}

// History returns the courier's delivered deliveries. Failed ones are not
// part of the history view. Returns apperr.ErrNoContent when there are none.
func (s *Service) History(ctx context.Context, courierID int64) ([]domain.Delivery, error) {
	return s.listForCourier(ctx, courierID, domain.DeliveryDelivered)
}

func (s *Service) listForCourier(ctx context.Context, courierID int64, statuses ...domain.DeliveryStatus) ([]domain.Delivery, error) {
	if courierID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	out, err := s.deliveries.ListByCourierAndStatus(ctx, courierID, statuses...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, apperr.ErrNoContent
	}
	return out, nil
}

// Complete finishes a delivery one way or the other. The courier becomes
// available again and the order reaches its terminal status in the same
// transaction. Completing twice fails with apperr.ErrDeliveryDone.
func (s *Service) Complete(ctx context.Context, deliveryID int64, success bool, notes, proofImage string) (*domain.Delivery, error) {
	if deliveryID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result *domain.Delivery
	err := s.deliveries.WithTx(ctx, func(tx dispatchtx.Repository) error {
		d, err := tx.GetDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrDeliveryNotFound
		}
		if d.Status.Terminal() {
			return apperr.ErrDeliveryDone
		}

		d.Status = domain.DeliveryStatusOnCompletion(success)
		// The request's notes and proof are taken as-is: completing with
		// blanks clears what was there before.
		d.Notes = strings.TrimSpace(notes)
		d.ProofImage = strings.TrimSpace(proofImage)
		if err := tx.SaveDelivery(ctx, d); err != nil {
			return err
		}

		if err := tx.SetCourierAvailability(ctx, d.CourierID, true); err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(ctx, d.OrderID, domain.OrderStatusOnCompletion(success)); err != nil {
			return err
		}

		result = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery completed",
		logx.String("event", "delivery_completed"),
		logx.Int64("delivery_id", result.ID),
		logx.String("order_id", result.OrderID),
		logx.Int64("courier_id", result.CourierID),
		logx.String("status", string(result.Status)),
	)

	s.notifyCustomer(ctx, result)

	return result, nil
}

// notifyCustomer is best-effort: the completion is already committed.
func (s *Service) notifyCustomer(ctx context.Context, d *domain.Delivery) {
	order, err := s.orders.Get(ctx, d.OrderID)
	if err != nil || order == nil {
		s.logger.Warn("order lookup for customer notification failed",
			logx.String("order_id", d.OrderID),
			logx.Any("err", err),
		)
		return
	}
	if err := s.notifier.NotifyCustomer(ctx, notify.CustomerNotice{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     string(order.Status),
		CourierID:  d.CourierID,
	}); err != nil {
		s.logger.Warn("customer notification failed",
			logx.String("order_id", order.ID),
			logx.Any("err", err),
		)
	}
}

// Rate attaches a customer rating to a delivered delivery. Re-rating
// overwrites the previous value.
func (s *Service) Rate(ctx context.Context, deliveryID int64, rating int, comment string) (*domain.Delivery, error) {
	if deliveryID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.deliveries.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrDeliveryNotFound
	}
	if d.Status != domain.DeliveryDelivered {
		return nil, apperr.ErrDeliveryNotDone
	}
	if !domain.ValidRating(rating) {
		return nil, apperr.ErrInvalidRating
	}

	d.Rating = &rating
	d.RatingComment = strings.TrimSpace(comment)
	if err := s.deliveries.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
