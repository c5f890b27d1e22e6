package domain

import (
	"regexp"
	"strings"
	"time"
)

// VehicleType represents the vehicle a courier delivers with.
type VehicleType string

// Courier represents a delivery courier.
type Courier struct {
	ID            int64
	FirstName     string
	LastName      string
	Phone         string
	VehicleType   VehicleType
	VehicleNumber string
	LicenseNumber string
	IsAvailable   bool
	CurrentLat    *float64
	CurrentLng    *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns the courier's display name used in notifications.
func (c *Courier) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasLocation reports whether the courier has reported a location at least once.
func (c *Courier) HasLocation() bool {
	return c.CurrentLat != nil && c.CurrentLng != nil
}

// PartialCourierUpdate carries optional fields to update a courier.
// A nil field means “do not change” that attribute.
type PartialCourierUpdate struct {
	ID            int64
	FirstName     *string
	LastName      *string
	Phone         *string
	VehicleType   *VehicleType
	VehicleNumber *string
	LicenseNumber *string
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{9,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// ValidCoordinates reports whether the pair is within the WGS84 decimal-degree range.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
