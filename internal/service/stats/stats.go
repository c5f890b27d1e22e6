// Package stats aggregates per-courier delivery and rating figures.
package stats

import (
	"context"
	"time"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

// DayStats is one day of a courier's completed deliveries and earnings.
type DayStats struct {
	Day        time.Time
	Deliveries int64
	Earnings   float64
}

// WeeklyStats summarizes a courier's trailing seven days, one entry per day,
// oldest first. Days without completed deliveries carry zeros.
type WeeklyStats struct {
	CourierID  int64
	From       time.Time
	To         time.Time
	Days       []DayStats
	Deliveries int64
	Earnings   float64
}

// RatingSummary is a courier's rating distribution over values 1..5.
type RatingSummary struct {
	CourierID    int64
	Distribution map[int]int64
}

// Service computes courier statistics.
type Service struct {
	repo             statsRepository
	couriers         courierReader
	earningsRate     float64
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a stats Service. earningsRate is the courier's share of
// each delivered order's total.
func NewService(repo statsRepository, couriers courierReader, earningsRate float64, timeout time.Duration) *Service {
	if earningsRate <= 0 {
		earningsRate = 0.10
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		couriers:         couriers,
		earningsRate:     earningsRate,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) courierExists(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	c, err := s.couriers.Get(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperr.ErrCourierNotFound
	}
	return nil
}

// trailingWeek returns the seven-calendar-day window ending with today:
// [midnight six days ago, next midnight), all UTC.
func trailingWeek(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 1)
	return to.AddDate(0, 0, -7), to
}

// Weekly returns the courier's per-day delivery counts and earnings over the
// trailing seven days. A window without a single completed delivery is
// apperr.ErrNoContent, not a rollup of zeros.
func (s *Service) Weekly(ctx context.Context, courierID int64) (WeeklyStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.courierExists(ctx, courierID); err != nil {
		return WeeklyStats{}, err
	}

	from, to := trailingWeek(s.now())
	rollups, err := s.repo.DailyRollups(ctx, courierID, from, to)
	if err != nil {
		return WeeklyStats{}, err
	}

	byDay := make(map[string]domain.DailyDeliveryRollup, len(rollups))
	for _, dr := range rollups {
		byDay[dr.Day.UTC().Format(time.DateOnly)] = dr
	}

	out := WeeklyStats{
		CourierID: courierID,
		From:      from,
		To:        to,
		Days:      make([]DayStats, 0, 7),
	}
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		dr := byDay[day.Format(time.DateOnly)]
		earned := dr.OrderTotal * s.earningsRate
		out.Days = append(out.Days, DayStats{
			Day:        day,
			Deliveries: dr.Deliveries,
			Earnings:   earned,
		})
		out.Deliveries += dr.Deliveries
		out.Earnings += earned
	}
	if out.Deliveries == 0 {
		return WeeklyStats{}, apperr.ErrNoContent
	}
	return out, nil
}

// Ratings returns the courier's rating distribution. A courier with no rated
// deliveries is apperr.ErrNoContent.
func (s *Service) Ratings(ctx context.Context, courierID int64) (RatingSummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.courierExists(ctx, courierID); err != nil {
		return RatingSummary{}, err
	}

	counts, err := s.repo.RatingCounts(ctx, courierID)
	if err != nil {
		return RatingSummary{}, err
	}

	var total int64
	dist := make(map[int]int64, domain.MaxRating)
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		dist[r] = counts[r]
		total += counts[r]
	}
	if total == 0 {
		return RatingSummary{}, apperr.ErrNoContent
	}

	return RatingSummary{CourierID: courierID, Distribution: dist}, nil
}

// AverageRating returns the courier's mean rating. No ratings at all is
// apperr.ErrNoContent, which is deliberately not the same as an average
// of zero.
func (s *Service) AverageRating(ctx context.Context, courierID int64) (float64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.courierExists(ctx, courierID); err != nil {
		return 0, err
	}

	avg, err := s.repo.AverageRating(ctx, courierID)
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, apperr.ErrNoContent
	}
	return *avg, nil
}
