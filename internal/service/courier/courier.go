package courier

import (
	"context"
	"strings"
	"time"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

// Service coordinates courier business logic and orchestrates repository calls.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a courier for creation.
func validateCreate(c *domain.Courier) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(c.Phone) {
		return apperr.ErrInvalid
	}
	if c.VehicleType == "" {
		c.VehicleType = domain.VehicleBike
	}
	if !c.VehicleType.Valid() {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.VehicleNumber) == "" || strings.TrimSpace(c.LicenseNumber) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialCourierUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.FirstName == nil && u.LastName == nil && u.Phone == nil &&
		u.VehicleType == nil && u.VehicleNumber == nil && u.LicenseNumber == nil {
		return apperr.ErrInvalid
	}
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) == "" {
		return apperr.ErrInvalid
	}
	if u.LastName != nil && strings.TrimSpace(*u.LastName) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.VehicleType != nil && !u.VehicleType.Valid() {
		return apperr.ErrInvalid
	}
	if u.VehicleNumber != nil && strings.TrimSpace(*u.VehicleNumber) == "" {
		return apperr.ErrInvalid
	}
	if u.LicenseNumber != nil && strings.TrimSpace(*u.LicenseNumber) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrCourierNotFound
	}
	return c, nil
}

// List returns couriers with optional pagination.
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// ListAvailable returns couriers that are free for dispatch and have a known
// location. An empty pool is apperr.ErrNoContent.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	list, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperr.ErrNoContent
	}
	return list, nil
}

// Create persists a new courier and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}

// UpdatePartial applies a partial update to a courier. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrCourierNotFound
	}
	return true, nil
}

// Delete removes a courier by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrCourierNotFound
	}
	return nil
}

// SetLocation records the courier's current coordinates.
func (s *Service) SetLocation(ctx context.Context, id int64, lat, lng float64) error {
	if id <= 0 || !domain.ValidCoordinates(lat, lng) {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.SetLocation(ctx, id, lat, lng)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrCourierNotFound
	}
	return nil
}

// SetAvailability toggles whether the courier can receive new orders.
func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrCourierNotFound
	}
	return nil
}
