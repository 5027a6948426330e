package geography

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[Address] = Address{}

// Address is a postal address within a country. Street, city, and postal
// code are required; state is optional (not every country has one).
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    Country
}

// NewAddress creates a validated postal address. Fields are trimmed;
// street, city, and postal code must be non-empty.
func NewAddress(street, city, state, postalCode string, country Country) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	postalCode = strings.TrimSpace(postalCode)

	switch {
	case street == "":
		return Address{}, fmt.Errorf("%w: street must not be empty", ErrInvalidAddress)
	case city == "":
		return Address{}, fmt.Errorf("%w: city must not be empty", ErrInvalidAddress)
	case postalCode == "":
		return Address{}, fmt.Errorf("%w: postal code must not be empty", ErrInvalidAddress)
	}

	return Address{
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region, possibly empty.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() Country { return a.country }

// Equals reports whether every field matches.
func (a Address) Equals(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country.Equals(other.country)
}

// MarshalJSON implements json.Marshaler interface.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Street     string  `json:"street"`
		City       string  `json:"city"`
		State      string  `json:"state,omitempty"`
		PostalCode string  `json:"postal_code"`
		Country    Country `json:"country"`
	}{a.street, a.city, a.state, a.postalCode, a.country})
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (a *Address) UnmarshalJSON(data []byte) error {
	var aux struct {
		Street     string  `json:"street"`
		City       string  `json:"city"`
		State      string  `json:"state"`
		PostalCode string  `json:"postal_code"`
		Country    Country `json:"country"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	parsed, err := NewAddress(aux.Street, aux.City, aux.State, aux.PostalCode, aux.Country)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
