package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/devkyoshi/easy-bites-sub000/internal/apperr"
)

// errNoResults marks an address the API could not match at all.
var errNoResults = errors.New("no results")

// geocodeClient is the slice of the Google Maps client used here.
type geocodeClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Google resolves addresses through the Google Geocoding API.
type Google struct {
	client  geocodeClient
	timeout time.Duration
}

// NewGoogle creates a Google geocoder. Returns nil when apiKey is empty so
// callers can fall back to Disabled.
func NewGoogle(apiKey string, timeout time.Duration) (*Google, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &Google{client: client, timeout: timeout}, nil
}

// Resolve geocodes the address, bounding each call by the configured timeout.
func (g *Google) Resolve(ctx context.Context, address string) (Point, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return Point{}, fmt.Errorf("geocode %q: %w: %w", address, apperr.ErrGeocodeUnavailable, err)
	}
	if len(results) == 0 {
		return Point{}, fmt.Errorf("geocode %q: %w: %w", address, errNoResults, apperr.ErrGeocodeUnavailable)
	}

	loc := results[0].Geometry.Location
	return Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
