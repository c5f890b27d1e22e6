package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

const orderColumns = `id, restaurant_id, customer_id, status, delivery_address, total_amount, created_at`

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.RestaurantID, &o.CustomerID, &o.Status,
		&o.DeliveryAddress, &o.TotalAmount, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Get - returns order by its ID.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// ListByStatus returns orders in the given status, newest first.
func (r *OrderRepo) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status=$1
		ORDER BY created_at DESC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("list orders by status %s: %w", status, err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// GetRestaurant - returns restaurant by its ID.
func (r *OrderRepo) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.QueryRow(ctx,
		`SELECT id, name, address FROM restaurants WHERE id=$1`, id,
	).Scan(&rest.ID, &rest.Name, &rest.Address)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return &rest, nil
}
