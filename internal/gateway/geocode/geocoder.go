// Package geocode resolves street addresses to coordinates for dispatch
// distance checks.
package geocode

import (
	"context"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
)

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Geocoder resolves a street address to a Point.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (Point, error)
}

// Disabled is a Geocoder for deployments without a geocoding key. Every call
// fails with apperr.ErrGeocodeUnavailable.
type Disabled struct{}

func (Disabled) Resolve(context.Context, string) (Point, error) {
	return Point{}, apperr.ErrGeocodeUnavailable
}
