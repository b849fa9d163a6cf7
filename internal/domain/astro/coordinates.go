package astro

import (
	apperrors "github.com/yanqian/panchang-api/pkg/errors"
)

// Coordinates is an immutable geographic position attached to every
// calculation request. Latitude and longitude are in decimal degrees,
// longitude east-positive.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Validate rejects positions outside the geographic ranges.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return apperrors.Invalid("latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return apperrors.Invalid("longitude must be between -180 and 180")
	}
	return nil
}

// Observer is the geodetic position handed to the ephemeris backend.
// Elevation is in meters above the ellipsoid.
type Observer struct {
	Coordinates
	Elevation float64
}
