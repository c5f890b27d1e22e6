package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

// StatsRepo aggregates courier performance figures from completed deliveries.
type StatsRepo struct{ db *pgxpool.Pool }

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo { return &StatsRepo{db: db} }

// DailyRollups returns the courier's per-day delivery count and summed order
// totals for deliveries completed in [from, to), oldest day first. Days with
// no completed deliveries produce no row.
func (r *StatsRepo) DailyRollups(ctx context.Context, courierID int64, from, to time.Time) ([]domain.DailyDeliveryRollup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date_trunc('day', d.updated_at) AS day,
		       COUNT(*),
		       COALESCE(SUM(o.total_amount), 0)
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.courier_id = $1
		  AND d.status = $2
		  AND d.updated_at >= $3 AND d.updated_at < $4
		GROUP BY day
		ORDER BY day
	`, courierID, domain.DeliveryDelivered, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily rollups for courier %d: %w", courierID, err)
	}
	defer rows.Close()

	var out []domain.DailyDeliveryRollup
	for rows.Next() {
		var dr domain.DailyDeliveryRollup
		if err := rows.Scan(&dr.Day, &dr.Deliveries, &dr.OrderTotal); err != nil {
			return nil, err
		}
		out = append(out, dr)
	}
	return out, rows.Err()
}

// RatingCounts returns how many of the courier's deliveries received each
// rating value. Unrated deliveries are ignored.
func (r *StatsRepo) RatingCounts(ctx context.Context, courierID int64) (map[int]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rating, COUNT(*)
		FROM deliveries
		WHERE courier_id=$1 AND rating IS NOT NULL
		GROUP BY rating
	`, courierID)
	if err != nil {
		return nil, fmt.Errorf("rating counts for courier %d: %w", courierID, err)
	}
	defer rows.Close()

	out := make(map[int]int64)
	for rows.Next() {
		var rating int
		var n int64
		if err := rows.Scan(&rating, &n); err != nil {
			return nil, err
		}
		out[rating] = n
	}
	return out, rows.Err()
}

// AverageRating returns the courier's mean rating, or nil when no delivery
// has been rated yet.
func (r *StatsRepo) AverageRating(ctx context.Context, courierID int64) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx, `
		SELECT AVG(rating) FROM deliveries WHERE courier_id=$1 AND rating IS NOT NULL
	`, courierID).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average rating for courier %d: %w", courierID, err)
	}
	return avg, nil
}
