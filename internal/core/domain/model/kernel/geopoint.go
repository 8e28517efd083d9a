package kernel

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created using NewGeoPoint or
// UnknownGeoPoint to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or UnknownGeoPoint constructors")

// GeoPoint represents a geographic coordinate pair (latitude, longitude) in
// decimal degrees. GeoPoint is an immutable value object; the zero value is
// invalid and will fail validation - use constructors to create instances.
//
// The system uses a sentinel convention inherited from the mobile clients:
// coordinates with a negative component mean "position not known". Travel-time
// estimation is only attempted between two known points; IsKnown reports which
// side of the convention a point is on.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(35.6892, 51.3890)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(35.689200,51.389000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]. Returns an error if either value is out of bounds.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(lat), point.setLongitude(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// UnknownGeoPoint creates the sentinel point meaning "position not known".
// The returned point passes Validate but reports IsKnown() == false, so
// consumers skip travel-time estimation for it.
func UnknownGeoPoint() GeoPoint {
	return GeoPoint{
		lat:   -1,
		lon:   -1,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the GeoPoint was properly constructed using a constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lon
}

// IsKnown reports whether the point carries a usable position.
// Following the sentinel convention, any negative component means the
// client did not provide a location.
func (p GeoPoint) IsKnown() bool {
	return p.lat >= 0 && p.lon >= 0
}

// String returns a human-readable representation in the format
// "GeoPoint(lat,lon)" with six decimal places. Implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lon)
}

// IsEqual compares two points for equality of both coordinates.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (p *GeoPoint) setLatitude(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (p *GeoPoint) setLongitude(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}
