// Package dispatch matches restaurant-accepted orders with nearby couriers
// and hands orders to exactly one courier.
package dispatch

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/geocode"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/geo"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
	"github.com/devkyoshi/easy-bites-sub000/internal/ports/dispatchtx"
)

// NearbyOrder is a dispatchable order annotated with its distance from the
// courier.
type NearbyOrder struct {
	Order      domain.Order
	Restaurant domain.Restaurant
	DistanceKm float64
}

// Service coordinates order discovery, announcement and acceptance.
type Service struct {
	couriers         courierRepository
	orders           orderRepository
	deliveries       deliveryRepository
	notified         notifiedStore
	geocoder         geocoder
	notifier         notifier
	radiusKm         float64
	operationTimeout time.Duration
	logger           logx.Logger
	acceptConflicts  counter
	geocodeFailures  counter
}

// Options carries the optional collaborators of a dispatch Service.
type Options struct {
	RadiusKm         float64
	OperationTimeout time.Duration
	AcceptConflicts  counter
	GeocodeFailures  counter
}

// NewService creates a dispatch Service.
func NewService(
	couriers courierRepository,
	orders orderRepository,
	deliveries deliveryRepository,
	notified notifiedStore,
	g geocoder,
	n notifier,
	logger logx.Logger,
	opts Options,
) *Service {
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = 5.0
	}
	if opts.OperationTimeout <= 0 {
		opts.OperationTimeout = 3 * time.Second
	}
	return &Service{
		couriers:         couriers,
		orders:           orders,
		deliveries:       deliveries,
		notified:         notified,
		geocoder:         g,
		notifier:         n,
		radiusKm:         opts.RadiusKm,
		operationTimeout: opts.OperationTimeout,
		logger:           logger,
		acceptConflicts:  opts.AcceptConflicts,
		geocodeFailures:  opts.GeocodeFailures,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// NearbyOrders persists the courier's reported position and returns the
// dispatchable orders whose delivery address is within the service radius,
// closest first. Orders whose address cannot be geocoded are skipped rather
// than failing the whole listing.
func (s *Service) NearbyOrders(ctx context.Context, courierID int64, lat, lng float64) ([]NearbyOrder, error) {
	if courierID <= 0 || !domain.ValidCoordinates(lat, lng) {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.couriers.SetLocation(ctx, courierID, lat, lng)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrCourierNotFound
	}

	orders, err := s.orders.ListByStatus(ctx, domain.OrderRestaurantAccepted)
	if err != nil {
		return nil, err
	}

	restaurants := make(map[int64]*domain.Restaurant)
	// Orders re-announced within one request share a delivery address, so
	// geocode each address once.
	points := make(map[string]geocode.Point)

	var out []NearbyOrder
	for _, order := range orders {
		point, seen := points[order.DeliveryAddress]
		if !seen {
			point, err = s.geocoder.Resolve(ctx, order.DeliveryAddress)
			if err != nil {
				if s.geocodeFailures != nil {
					s.geocodeFailures.Inc()
				}
				s.logger.Warn("skipping order, delivery address not geocodable",
					logx.String("order_id", order.ID),
					logx.Any("err", err),
				)
				continue
			}
			points[order.DeliveryAddress] = point
		}

		dist := geo.DistanceKm(lat, lng, point.Lat, point.Lng)
		if dist > s.radiusKm {
			continue
		}

		rest, cached := restaurants[order.RestaurantID]
		if !cached {
			rest, err = s.orders.GetRestaurant(ctx, order.RestaurantID)
			if err != nil {
				return nil, err
			}
			restaurants[order.RestaurantID] = rest
		}
		if rest == nil {
			continue
		}
		out = append(out, NearbyOrder{Order: order, Restaurant: *rest, DistanceKm: dist})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}

// NotifyResult summarises one announcement round.
type NotifyResult struct {
	NotifiedCouriers int
	AlreadyNotified  bool
}

// NotifyNewOrder invites every available courier within the service radius to
// pick up the order, at most once per order. The order is marked as announced
// only after at least one courier was reached, so a round where nobody was
// eligible can be retried by a later event.
func (s *Service) NotifyNewOrder(ctx context.Context, orderID string) (NotifyResult, error) {
	var res NotifyResult

	if err := validateOrderID(orderID); err != nil {
		return res, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	seen, err := s.notified.Contains(ctx, orderID)
	if err != nil {
		return res, err
	}
	if seen {
		res.AlreadyNotified = true
		return res, nil
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return res, err
	}
	if order == nil {
		return res, apperr.ErrOrderNotFound
	}
	if order.Status != domain.OrderRestaurantAccepted {
		return res, nil
	}

	rest, err := s.orders.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return res, err
	}

	dropoff, err := s.geocoder.Resolve(ctx, order.DeliveryAddress)
	if err != nil {
		return res, err
	}

	couriers, err := s.couriers.ListAvailable(ctx)
	if err != nil {
		return res, err
	}

	for _, c := range couriers {
		if c.CurrentLat == nil || c.CurrentLng == nil {
			continue
		}
		dist := geo.DistanceKm(*c.CurrentLat, *c.CurrentLng, dropoff.Lat, dropoff.Lng)
		if dist > s.radiusKm {
			continue
		}

		notice := notify.CourierNotice{
			CourierID:    c.ID,
			CourierName:  c.FullName(),
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Address:      order.DeliveryAddress,
			TotalAmount:  order.TotalAmount,
			DistanceKm:   dist,
		}
		if rest != nil {
			notice.Restaurant = rest.Name
		}
		if err := s.notifier.NotifyCourier(ctx, notice); err != nil {
			s.logger.Warn("courier notification failed",
				logx.Int64("courier_id", c.ID),
				logx.String("order_id", order.ID),
				logx.Any("err", err),
			)
			continue
		}
		res.NotifiedCouriers++
	}

	if res.NotifiedCouriers > 0 {
		if err := s.notified.Add(ctx, orderID); err != nil {
			return res, err
		}
	}

	s.logger.Info("order announced to couriers",
		logx.String("event", "order_announced"),
		logx.String("order_id", order.ID),
		logx.Int("notified", res.NotifiedCouriers),
	)
	return res, nil
}

// Accept assigns the order to the courier. At most one courier ever wins an
// order: racers are serialized on the order row lock and lose with
// apperr.ErrOrderTaken.
func (s *Service) Accept(ctx context.Context, courierID int64, orderID string) (*domain.Delivery, error) {
	if courierID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if err := validateOrderID(orderID); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// Geocoding talks to an external API, so both endpoints are resolved
	// before any row is locked.
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.ErrOrderNotFound
	}
	rest, err := s.orders.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, apperr.ErrRestaurantNotFound
	}

	pickup, err := s.geocoder.Resolve(ctx, rest.Address)
	if err != nil {
		return nil, err
	}
	dropoff, err := s.geocoder.Resolve(ctx, order.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	var (
		delivery   *domain.Delivery
		customerID int64
	)
	err = s.deliveries.WithTx(ctx, func(tx dispatchtx.Repository) error {
		courier, err := tx.GetCourierForUpdate(ctx, courierID)
		if err != nil {
			return err
		}
		if courier == nil {
			return apperr.ErrCourierNotFound
		}
		if !courier.IsAvailable {
			return apperr.ErrCourierBusy
		}

		order, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.ErrOrderNotFound
		}
		if order.Status != domain.OrderRestaurantAccepted {
			return apperr.ErrOrderTaken
		}

		taken, err := tx.DeliveryExists(ctx, orderID,
			domain.DeliveryAccepted, domain.DeliveryDelivered)
		if err != nil {
			return err
		}
		if taken {
			return apperr.ErrOrderTaken
		}

		d := &domain.Delivery{
			OrderID:     orderID,
			CourierID:   courierID,
			PickupLat:   pickup.Lat,
			PickupLng:   pickup.Lng,
			DeliveryLat: dropoff.Lat,
			DeliveryLng: dropoff.Lng,
			Status:      domain.DeliveryAccepted,
		}
		d.ID, err = tx.InsertDelivery(ctx, d)
		if err != nil {
			return err
		}

		if err := tx.SetCourierAvailability(ctx, courierID, false); err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(ctx, orderID, domain.OrderDriverAssigned); err != nil {
			return err
		}

		delivery = d
		customerID = order.CustomerID
		return nil
	})
	if err != nil {
		// A busy courier is a conflict too, but not a lost race: it keeps
		// its own code and stays out of the race counter.
		if errors.Is(err, apperr.ErrCourierBusy) {
			return nil, err
		}
		if errors.Is(err, apperr.ErrConflict) {
			if s.acceptConflicts != nil {
				s.acceptConflicts.Inc()
			}
			return nil, apperr.ErrOrderTaken
		}
		return nil, err
	}

	s.logger.Info("order accepted",
		logx.String("event", "order_accepted"),
		logx.String("order_id", orderID),
		logx.Int64("courier_id", courierID),
		logx.Int64("delivery_id", delivery.ID),
	)

	// The assignment is committed; a notification failure must not undo it.
	if err := s.notifier.NotifyCustomer(ctx, notify.CustomerNotice{
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     string(domain.OrderDriverAssigned),
		CourierID:  courierID,
	}); err != nil {
		s.logger.Warn("customer notification failed",
			logx.String("order_id", orderID),
			logx.Any("err", err),
		)
	}

	return delivery, nil
}

func validateOrderID(orderID string) error {
	if uuid.Validate(orderID) != nil {
		return apperr.ErrInvalid
	}
	return nil
}
