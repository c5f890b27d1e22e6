// Package apperr defines the error taxonomy shared by services and the HTTP
// boundary. Errors come in two layers: sentinel kinds matched with errors.Is,
// and coded domain errors that wrap a kind and carry a stable wire code.
package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoContent indicates a query succeeded but the result set is legitimately
// empty. Distinct from ErrNotFound: the subject exists, its data does not.
var ErrNoContent = errors.New("no content")

// ErrUnavailable indicates an external dependency is down or not configured.
var ErrUnavailable = errors.New("dependency unavailable")

// Error is a coded domain error. It unwraps to its kind so callers keep using
// errors.Is against the sentinels above while the boundary layer reports the
// code to clients.
type Error struct {
	Code string
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

// New creates a coded domain error of the given kind.
func New(kind error, code, msg string) *Error {
	return &Error{Code: code, Kind: kind, Msg: msg}
}

// List of coded dispatch/fulfillment errors
var (
	ErrCourierNotFound    = New(ErrNotFound, "DRIVER_NOT_FOUND", "courier not found")
	ErrCourierBusy        = New(ErrConflict, "DRIVER_NOT_AVAILABLE", "courier is not available")
	ErrOrderNotFound      = New(ErrNotFound, "ORDER_NOT_FOUND", "order not found")
	ErrRestaurantNotFound = New(ErrNotFound, "RESTAURANT_NOT_FOUND", "restaurant not found")
	ErrOrderTaken         = New(ErrConflict, "DRIVER_ACCEPTED_ORDER", "order already accepted by another courier")
	ErrGeocodeUnavailable = New(ErrUnavailable, "GEOCODING_UNAVAILABLE", "geocoding service unavailable")
	ErrDeliveryNotFound   = New(ErrNotFound, "DELIVERY_NOT_FOUND", "delivery not found")
	ErrDeliveryDone       = New(ErrConflict, "DELIVERY_ALREADY_COMPLETED", "delivery already completed")
	ErrDeliveryNotDone    = New(ErrInvalid, "DELIVERY_NOT_COMPLETED", "delivery is not completed")
	ErrInvalidRating      = New(ErrInvalid, "INVALID_RATING", "rating must be between 1 and 5")
)

// Code returns the wire code of err, or the empty string if err carries none.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
