package geography

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[Country] = Country{}

// CountryCode is an ISO 3166-1 alpha-2 country code (e.g., "US", "EG").
type CountryCode string

// NewCountryCode validates and normalizes a two-letter country code.
// Lowercase input is accepted and uppercased.
func NewCountryCode(code string) (CountryCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 2 ||
		normalized[0] < 'A' || normalized[0] > 'Z' ||
		normalized[1] < 'A' || normalized[1] > 'Z' {
		return "", fmt.Errorf("%w: code must be two letters, got %q", ErrInvalidCountry, code)
	}
	return CountryCode(normalized), nil
}

// String returns the two-letter code.
func (c CountryCode) String() string { return string(c) }

// CountryName is a non-empty country name.
type CountryName string

// NewCountryName validates a country name: non-empty after trimming.
func NewCountryName(name string) (CountryName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name must not be empty", ErrInvalidCountry)
	}
	return CountryName(trimmed), nil
}

// String returns the country name.
func (n CountryName) String() string { return string(n) }

// Country pairs a country name with its ISO 3166-1 alpha-2 code.
type Country struct {
	name CountryName
	code CountryCode
}

// NewCountry creates a Country from a raw name and code.
func NewCountry(name, code string) (Country, error) {
	n, err := NewCountryName(name)
	if err != nil {
		return Country{}, err
	}
	c, err := NewCountryCode(code)
	if err != nil {
		return Country{}, err
	}
	return Country{name: n, code: c}, nil
}

// Name returns the country name.
func (c Country) Name() CountryName { return c.name }

// Code returns the ISO 3166-1 alpha-2 code.
func (c Country) Code() CountryCode { return c.code }

// Equals reports whether name and code both match.
func (c Country) Equals(other Country) bool {
	return c.name == other.name && c.code == other.code
}

// MarshalJSON implements json.Marshaler interface.
func (c Country) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}{string(c.name), string(c.code)})
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (c *Country) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	parsed, err := NewCountry(aux.Name, aux.Code)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
