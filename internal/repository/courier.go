package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

const courierColumns = `id, first_name, last_name, phone, vehicle_type,
	vehicle_number, license_number, is_available, current_lat, current_lng,
	created_at, updated_at`

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

func scanCourier(row pgx.Row) (*domain.Courier, error) {
	var c domain.Courier
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.VehicleType,
		&c.VehicleNumber, &c.LicenseNumber, &c.IsAvailable,
		&c.CurrentLat, &c.CurrentLng, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get - returns courier by its ID.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	c, err := scanCourier(r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return c, nil
}

// List returns couriers ordered by id. If limit/offset are nil, returns the full list.
func (r *CourierRepo) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	q := `SELECT ` + courierColumns + ` FROM couriers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Courier, 0, capacity)
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListAvailable returns couriers that are available and have reported a location.
func (r *CourierRepo) ListAvailable(ctx context.Context) ([]domain.Courier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courierColumns+`
		FROM couriers
		WHERE is_available AND current_lat IS NOT NULL AND current_lng IS NOT NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}
	defer rows.Close()

	var out []domain.Courier
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Create - creates a new courier.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO couriers(first_name, last_name, phone, vehicle_type, vehicle_number, license_number, is_available)
		VALUES($1,$2,$3,$4,$5,$6,TRUE)
		RETURNING id
	`, c.FirstName, c.LastName, c.Phone, c.VehicleType, c.VehicleNumber, c.LicenseNumber).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a courier and returns true if a row was affected.
// Duplicate vehicle or license numbers surface as apperr.ErrConflict.
func (r *CourierRepo) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET
            first_name     = COALESCE($2, first_name),
            last_name      = COALESCE($3, last_name),
            phone          = COALESCE($4, phone),
            vehicle_type   = COALESCE($5, vehicle_type),
            vehicle_number = COALESCE($6, vehicle_number),
            license_number = COALESCE($7, license_number),
            updated_at     = now()
        WHERE id = $1
    `, u.ID, u.FirstName, u.LastName, u.Phone, u.VehicleType, u.VehicleNumber, u.LicenseNumber)

	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update courier %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a courier and returns true if a row was affected.
func (r *CourierRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM couriers WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete courier %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetLocation stores the courier's most recent coordinates and returns true if
// a row was affected.
func (r *CourierRepo) SetLocation(ctx context.Context, id int64, lat, lng float64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE couriers
		SET current_lat=$2, current_lng=$3, updated_at=now()
		WHERE id=$1
	`, id, lat, lng)
	if err != nil {
		return false, fmt.Errorf("set courier %d location: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetAvailability flips the courier's availability flag and returns true if a
// row was affected.
func (r *CourierRepo) SetAvailability(ctx context.Context, id int64, available bool) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE couriers
		SET is_available=$2, updated_at=now()
		WHERE id=$1
	`, id, available)
	if err != nil {
		return false, fmt.Errorf("set courier %d availability: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
