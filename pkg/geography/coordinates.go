// Package geography provides validated geographic value objects:
// coordinates, locations, continents, countries, and postal addresses.
//
// Every type is constructed through a validating factory and is immutable
// afterwards. Coordinate types reject NaN, infinities, and out-of-range
// degrees at the single point of construction.
package geography

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var (
	_ valueobject.ValueObject[Latitude]  = Latitude{}
	_ valueobject.ValueObject[Longitude] = Longitude{}
	_ valueobject.ValueObject[Altitude]  = Altitude{}
)

// Latitude is the north-south position of a point on the Earth's surface,
// in degrees. The North Pole is 90, the South Pole is -90.
type Latitude struct {
	degrees float64
}

// NewLatitude creates a Latitude value.
// Invariants enforced:
//   - Degrees must be a finite number (not NaN, not infinite).
//   - Degrees must be between -90 and 90 inclusive.
func NewLatitude(degrees float64) (Latitude, error) {
	if !finite(degrees) || degrees < -90 || degrees > 90 {
		return Latitude{}, fmt.Errorf("%w: got %v", ErrInvalidLatitude, degrees)
	}
	return Latitude{degrees: degrees}, nil
}

// Degrees returns the latitude in degrees.
func (l Latitude) Degrees() float64 { return l.degrees }

// Equals reports whether two latitudes represent the same position.
func (l Latitude) Equals(other Latitude) bool { return l.degrees == other.degrees }

// MarshalJSON implements json.Marshaler interface. The wire form is a
// bare number.
func (l Latitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.degrees)
}

// UnmarshalJSON implements json.Unmarshaler interface. The decoded value
// is re-validated.
func (l *Latitude) UnmarshalJSON(data []byte) error {
	var degrees float64
	if err := json.Unmarshal(data, &degrees); err != nil {
		return err
	}
	parsed, err := NewLatitude(degrees)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Longitude is the east-west position of a point on the Earth's surface,
// in degrees. The Prime Meridian is 0, the antimeridian is ±180.
type Longitude struct {
	degrees float64
}

// NewLongitude creates a Longitude value.
// Invariants enforced:
//   - Degrees must be a finite number (not NaN, not infinite).
//   - Degrees must be between -180 and 180 inclusive.
func NewLongitude(degrees float64) (Longitude, error) {
	if !finite(degrees) || degrees < -180 || degrees > 180 {
		return Longitude{}, fmt.Errorf("%w: got %v", ErrInvalidLongitude, degrees)
	}
	return Longitude{degrees: degrees}, nil
}

// Degrees returns the longitude in degrees.
func (l Longitude) Degrees() float64 { return l.degrees }

// Equals reports whether two longitudes represent the same position.
func (l Longitude) Equals(other Longitude) bool { return l.degrees == other.degrees }

// MarshalJSON implements json.Marshaler interface.
func (l Longitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.degrees)
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (l *Longitude) UnmarshalJSON(data []byte) error {
	var degrees float64
	if err := json.Unmarshal(data, &degrees); err != nil {
		return err
	}
	parsed, err := NewLongitude(degrees)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Altitude is a height relative to sea level, in meters. The accepted
// range is -1000 to 10000 meters, covering surface and aviation use.
type Altitude struct {
	meters float64
}

// NewAltitude creates an Altitude value.
// Invariants enforced:
//   - Meters must be a finite number (not NaN, not infinite).
//   - Meters must be between -1000 and 10000 inclusive.
func NewAltitude(meters float64) (Altitude, error) {
	if !finite(meters) || meters < -1000 || meters > 10000 {
		return Altitude{}, fmt.Errorf("%w: got %v", ErrInvalidAltitude, meters)
	}
	return Altitude{meters: meters}, nil
}

// Meters returns the altitude in meters.
func (a Altitude) Meters() float64 { return a.meters }

// Equals reports whether two altitudes represent the same height.
func (a Altitude) Equals(other Altitude) bool { return a.meters == other.meters }

// MarshalJSON implements json.Marshaler interface.
func (a Altitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.meters)
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (a *Altitude) UnmarshalJSON(data []byte) error {
	var meters float64
	if err := json.Unmarshal(data, &meters); err != nil {
		return err
	}
	parsed, err := NewAltitude(meters)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
