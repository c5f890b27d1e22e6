package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
	"github.com/devkyoshi/easy-bites-sub000/internal/ports/dispatchtx"
)

const deliveryColumns = `id, order_id, courier_id, pickup_lat, pickup_lng,
	delivery_lat, delivery_lng, status, notes, proof_image, rating, rating_comment,
	created_at, updated_at`

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct{ db *pgxpool.Pool }

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo { return &DeliveryRepo{db: db} }

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(&d.ID, &d.OrderID, &d.CourierID, &d.PickupLat, &d.PickupLng,
		&d.DeliveryLat, &d.DeliveryLng, &d.Status, &d.Notes, &d.ProofImage,
		&d.Rating, &d.RatingComment, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Get - returns delivery by its ID.
func (r *DeliveryRepo) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d: %w", id, err)
	}
	return d, nil
}

// GetByOrder returns the delivery referencing the order, or nil.
func (r *DeliveryRepo) GetByOrder(ctx context.Context, orderID string) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE order_id=$1`, orderID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery for order %s: %w", orderID, err)
	}
	return d, nil
}

// List returns all deliveries, newest first.
func (r *DeliveryRepo) List(ctx context.Context) ([]domain.Delivery, error) {
	return r.collect(ctx, `SELECT `+deliveryColumns+` FROM deliveries ORDER BY created_at DESC`)
}

// ListByCourierAndStatus returns the courier's deliveries in the given
// statuses, newest first.
func (r *DeliveryRepo) ListByCourierAndStatus(ctx context.Context, courierID int64, statuses ...domain.DeliveryStatus) ([]domain.Delivery, error) {
	return r.collect(ctx, `
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE courier_id=$1 AND status=ANY($2)
		ORDER BY created_at DESC
	`, courierID, statusStrings(statuses))
}

func (r *DeliveryRepo) collect(ctx context.Context, q string, args ...any) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// ExistsByOrderInStatuses reports whether any delivery in the given statuses
// references the order.
func (r *DeliveryRepo) ExistsByOrderInStatuses(ctx context.Context, orderID string, statuses ...domain.DeliveryStatus) (bool, error) {
	return deliveryExists(ctx, r.db, orderID, statuses)
}

// Save persists mutable delivery fields.
func (r *DeliveryRepo) Save(ctx context.Context, d *domain.Delivery) error {
	return saveDelivery(ctx, r.db, d)
}

// WithTx runs fn inside a database transaction. The transaction is rolled
// back when fn returns an error or panics, committed otherwise.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&txRepo{tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// txRepo implements dispatchtx.Repository over a single pgx transaction.
type txRepo struct{ tx pgx.Tx }

func (r *txRepo) GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error) {
	c, err := scanCourier(r.tx.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock courier %d: %w", id, err)
	}
	return c, nil
}

func (r *txRepo) GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock order %s: %w", id, err)
	}
	return o, nil
}

func (r *txRepo) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.tx.QueryRow(ctx,
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

func (r *txRepo) DeliveryExists(ctx context.Context, orderID string, statuses ...domain.DeliveryStatus) (bool, error) {
	return deliveryExists(ctx, r.tx, orderID, statuses)
}

func (r *txRepo) InsertDelivery(ctx context.Context, d *domain.Delivery) (int64, error) {
	var id int64
	err := r.tx.QueryRow(ctx, `
		INSERT INTO deliveries(order_id, courier_id, pickup_lat, pickup_lng, delivery_lat, delivery_lng, status, notes)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`, d.OrderID, d.CourierID, d.PickupLat, d.PickupLng, d.DeliveryLat, d.DeliveryLng, d.Status, d.Notes).Scan(&id)
	if err != nil {
		// unique(order_id) backstop: a racer slipped in between the lock and
		// the insert
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("insert delivery for order %s: %w", d.OrderID, err)
	}
	return id, nil
}

func (r *txRepo) GetDeliveryForUpdate(ctx context.Context, id int64) (*domain.Delivery, error) {
	d, err := scanDelivery(r.tx.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock delivery %d: %w", id, err)
	}
	return d, nil
}

func (r *txRepo) SaveDelivery(ctx context.Context, d *domain.Delivery) error {
	return saveDelivery(ctx, r.tx, d)
}

func (r *txRepo) SetCourierAvailability(ctx context.Context, id int64, available bool) error {
	_, err := r.tx.Exec(ctx, `
		UPDATE couriers SET is_available=$2, updated_at=now() WHERE id=$1
	`, id, available)
	if err != nil {
		return fmt.Errorf("set courier %d availability: %w", id, err)
	}
	return nil
}

func (r *txRepo) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	_, err := r.tx.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func deliveryExists(ctx context.Context, q rowQuerier, orderID string, statuses []domain.DeliveryStatus) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM deliveries WHERE order_id=$1 AND status=ANY($2))
	`, orderID, statusStrings(statuses)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check delivery for order %s: %w", orderID, err)
	}
	return exists, nil
}

func saveDelivery(ctx context.Context, q rowQuerier, d *domain.Delivery) error {
	var updated bool
	err := q.QueryRow(ctx, `
		UPDATE deliveries
		SET status=$2, notes=$3, proof_image=$4, rating=$5, rating_comment=$6, updated_at=now()
		WHERE id=$1
		RETURNING TRUE
	`, d.ID, d.Status, d.Notes, d.ProofImage, d.Rating, d.RatingComment).Scan(&updated)
	if err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("save delivery %d: no such delivery", d.ID)
		}
		return fmt.Errorf("save delivery %d: %w", d.ID, err)
	}
	return nil
}

func statusStrings(statuses []domain.DeliveryStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
