package stats

import (
	"context"
	"time"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

type statsRepository interface {
	DailyRollups(ctx context.Context, courierID int64, from, to time.Time) ([]domain.DailyDeliveryRollup, error)
	RatingCounts(ctx context.Context, courierID int64) (map[int]int64, error)
	AverageRating(ctx context.Context, courierID int64) (*float64, error)
}

type courierReader interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
}
