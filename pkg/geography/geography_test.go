package geography_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/valobs/pkg/geography"
	"github.com/amirasaad/valobs/pkg/valueobject"
)

func TestNewLatitude(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		wantErr bool
	}{
		{"mid range", 60.0, false},
		{"south pole", -90.0, false},
		{"north pole", 90.0, false},
		{"just above range", 90.1, true},
		{"just below range", -90.1, true},
		{"NaN", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geography.NewLatitude(tt.degrees)
			if tt.wantErr {
				require.ErrorIs(t, err, geography.ErrInvalidLatitude)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.degrees, got.Degrees())
		})
	}
}

func TestNewLongitude(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		wantErr bool
	}{
		{"prime meridian", 0.0, false},
		{"antimeridian east", 180.0, false},
		{"antimeridian west", -180.0, false},
		{"just above range", 180.1, true},
		{"just below range", -180.1, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geography.NewLongitude(tt.degrees)
			if tt.wantErr {
				require.ErrorIs(t, err, geography.ErrInvalidLongitude)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewAltitude(t *testing.T) {
	tests := []struct {
		name    string
		meters  float64
		wantErr bool
	}{
		{"everest", 8848.0, false},
		{"floor", -1000.0, false},
		{"ceiling", 10000.0, false},
		{"below floor", -1000.1, true},
		{"above ceiling", 10000.1, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geography.NewAltitude(tt.meters)
			if tt.wantErr {
				require.ErrorIs(t, err, geography.ErrInvalidAltitude)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCoordinate_Equality(t *testing.T) {
	a, err := geography.NewLatitude(60.0)
	require.NoError(t, err)
	b, err := geography.NewLatitude(60.0)
	require.NoError(t, err)
	c, err := geography.NewLatitude(61.0)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestCoordinate_JSON(t *testing.T) {
	lat, err := geography.NewLatitude(60.5)
	require.NoError(t, err)

	data, err := json.Marshal(lat)
	require.NoError(t, err)
	assert.Equal(t, "60.5", string(data))

	back, err := valueobject.RoundTrip(lat)
	require.NoError(t, err)
	assert.True(t, lat.Equals(back))

	var bad geography.Latitude
	err = json.Unmarshal([]byte("91"), &bad)
	require.ErrorIs(t, err, geography.ErrInvalidLatitude)
}

func TestNewGeoLocation(t *testing.T) {
	loc, err := geography.NewGeoLocation(27.9881, 86.9250, 8848.0)
	require.NoError(t, err)

	lat, lon, alt := loc.Coordinates()
	assert.InEpsilon(t, 27.9881, lat.Degrees(), 1e-9)
	assert.InEpsilon(t, 86.9250, lon.Degrees(), 1e-9)
	assert.InEpsilon(t, 8848.0, alt.Meters(), 1e-9)

	_, err = geography.NewGeoLocation(91.0, 0, 0)
	require.ErrorIs(t, err, geography.ErrInvalidLatitude)
	_, err = geography.NewGeoLocation(0, 181.0, 0)
	require.ErrorIs(t, err, geography.ErrInvalidLongitude)
	_, err = geography.NewGeoLocation(0, 0, 10001.0)
	require.ErrorIs(t, err, geography.ErrInvalidAltitude)
}

func TestNewGeoLocationWithoutAltitude(t *testing.T) {
	loc, err := geography.NewGeoLocationWithoutAltitude(60.0, 25.0)
	require.NoError(t, err)
	assert.Zero(t, loc.Altitude().Meters())
}

func TestGeoLocation_JSON(t *testing.T) {
	loc, err := geography.NewGeoLocation(60.0, 25.0, 100.0)
	require.NoError(t, err)

	data, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude": 60, "longitude": 25, "altitude": 100}`, string(data))

	back, err := valueobject.RoundTrip(loc)
	require.NoError(t, err)
	assert.True(t, loc.Equals(back))
}

func TestParseContinent(t *testing.T) {
	for _, c := range []geography.Continent{
		geography.Africa, geography.Antarctica, geography.Asia, geography.Europe,
		geography.NorthAmerica, geography.Oceania, geography.SouthAmerica,
	} {
		got, err := geography.ParseContinent(string(c))
		require.NoError(t, err)
		assert.True(t, got.Equals(c))
	}

	_, err := geography.ParseContinent("Atlantis")
	require.ErrorIs(t, err, geography.ErrUnknownContinent)
}

func TestContinent_JSON(t *testing.T) {
	data, err := json.Marshal(geography.SouthAmerica)
	require.NoError(t, err)
	assert.Equal(t, `"SouthAmerica"`, string(data))

	back, err := valueobject.RoundTrip(geography.SouthAmerica)
	require.NoError(t, err)
	assert.True(t, geography.SouthAmerica.Equals(back))
}

func TestNewCountry(t *testing.T) {
	tests := []struct {
		name        string
		countryName string
		code        string
		wantErr     bool
	}{
		{"valid", "Egypt", "EG", false},
		{"lowercase code normalized", "United States", "us", false},
		{"empty name", "", "EG", true},
		{"blank name", "   ", "EG", true},
		{"one-letter code", "Egypt", "E", true},
		{"three-letter code", "Egypt", "EGY", true},
		{"digits in code", "Egypt", "E1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geography.NewCountry(tt.countryName, tt.code)
			if tt.wantErr {
				require.ErrorIs(t, err, geography.ErrInvalidCountry)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.Name().String())
			assert.Len(t, got.Code().String(), 2)
		})
	}
}

func TestCountry_JSON(t *testing.T) {
	country, err := geography.NewCountry("Egypt", "EG")
	require.NoError(t, err)

	data, err := json.Marshal(country)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Egypt", "code": "EG"}`, string(data))

	back, err := valueobject.RoundTrip(country)
	require.NoError(t, err)
	assert.True(t, country.Equals(back))
}

func TestNewAddress(t *testing.T) {
	egypt, err := geography.NewCountry("Egypt", "EG")
	require.NoError(t, err)

	addr, err := geography.NewAddress("1 Tahrir Sq", "Cairo", "", "11511", egypt)
	require.NoError(t, err)
	assert.Equal(t, "Cairo", addr.City())
	assert.Empty(t, addr.State())

	_, err = geography.NewAddress("", "Cairo", "", "11511", egypt)
	require.ErrorIs(t, err, geography.ErrInvalidAddress)
	_, err = geography.NewAddress("1 Tahrir Sq", "", "", "11511", egypt)
	require.ErrorIs(t, err, geography.ErrInvalidAddress)
	_, err = geography.NewAddress("1 Tahrir Sq", "Cairo", "", "", egypt)
	require.ErrorIs(t, err, geography.ErrInvalidAddress)
}

func TestAddress_JSON(t *testing.T) {
	us, err := geography.NewCountry("United States", "US")
	require.NoError(t, err)
	addr, err := geography.NewAddress("1600 Pennsylvania Ave", "Washington", "DC", "20500", us)
	require.NoError(t, err)

	back, err := valueobject.RoundTrip(addr)
	require.NoError(t, err)
	assert.True(t, addr.Equals(back))
}
