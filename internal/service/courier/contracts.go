package courier

import (
	"context"

	"github.com/devkyoshi/easy-bites-sub000/internal/domain"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	ListAvailable(ctx context.Context) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SetLocation(ctx context.Context, id int64, lat, lng float64) (bool, error)
	SetAvailability(ctx context.Context, id int64, available bool) (bool, error)
}
