package geography

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[GeoLocation] = GeoLocation{}

// GeoLocation is a point on the Earth's surface: a latitude, a longitude,
// and an altitude. Validation is delegated to the component constructors.
type GeoLocation struct {
	latitude  Latitude
	longitude Longitude
	altitude  Altitude
}

// NewGeoLocation creates a GeoLocation from raw coordinates. Each
// component is validated through its own constructor.
func NewGeoLocation(latitude, longitude, altitude float64) (GeoLocation, error) {
	lat, err := NewLatitude(latitude)
	if err != nil {
		return GeoLocation{}, err
	}
	lon, err := NewLongitude(longitude)
	if err != nil {
		return GeoLocation{}, err
	}
	alt, err := NewAltitude(altitude)
	if err != nil {
		return GeoLocation{}, err
	}
	return GeoLocation{latitude: lat, longitude: lon, altitude: alt}, nil
}

// NewGeoLocationWithoutAltitude creates a GeoLocation at sea level.
// Useful when only latitude and longitude are known, e.g. from a GPS fix.
func NewGeoLocationWithoutAltitude(latitude, longitude float64) (GeoLocation, error) {
	return NewGeoLocation(latitude, longitude, 0)
}

// Latitude returns the latitude of the location.
func (g GeoLocation) Latitude() Latitude { return g.latitude }

// Longitude returns the longitude of the location.
func (g GeoLocation) Longitude() Longitude { return g.longitude }

// Altitude returns the altitude of the location.
func (g GeoLocation) Altitude() Altitude { return g.altitude }

// Coordinates returns the latitude, longitude, and altitude as a tuple.
func (g GeoLocation) Coordinates() (Latitude, Longitude, Altitude) {
	return g.latitude, g.longitude, g.altitude
}

// Equals reports whether two locations have identical coordinates.
func (g GeoLocation) Equals(other GeoLocation) bool {
	return g.latitude.Equals(other.latitude) &&
		g.longitude.Equals(other.longitude) &&
		g.altitude.Equals(other.altitude)
}

// String returns the location as "lat, lon, alt m".
func (g GeoLocation) String() string {
	return fmt.Sprintf(
		"%v, %v, %v m",
		g.latitude.Degrees(), g.longitude.Degrees(), g.altitude.Meters(),
	)
}

// MarshalJSON implements json.Marshaler interface.
func (g GeoLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Latitude  Latitude  `json:"latitude"`
		Longitude Longitude `json:"longitude"`
		Altitude  Altitude  `json:"altitude"`
	}{g.latitude, g.longitude, g.altitude})
}

// UnmarshalJSON implements json.Unmarshaler interface. Components are
// re-validated through NewGeoLocation.
func (g *GeoLocation) UnmarshalJSON(data []byte) error {
	var aux struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Altitude  float64 `json:"altitude"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	parsed, err := NewGeoLocation(aux.Latitude, aux.Longitude, aux.Altitude)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
