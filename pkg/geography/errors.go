package geography

import "errors"

// Common geography package errors
var (
	// ErrInvalidLatitude is returned when a latitude is outside [-90, 90]
	// degrees or not a finite number.
	ErrInvalidLatitude = errors.New("latitude must be a finite number between -90 and 90")

	// ErrInvalidLongitude is returned when a longitude is outside
	// [-180, 180] degrees or not a finite number.
	ErrInvalidLongitude = errors.New("longitude must be a finite number between -180 and 180")

	// ErrInvalidAltitude is returned when an altitude is outside
	// [-1000, 10000] meters or not a finite number.
	ErrInvalidAltitude = errors.New("altitude must be a finite number between -1000 and 10000")

	// ErrUnknownContinent is returned when a value is not one of the seven
	// continents.
	ErrUnknownContinent = errors.New("unknown continent")

	// ErrInvalidCountry is returned when a country name or code is invalid.
	ErrInvalidCountry = errors.New("invalid country")

	// ErrInvalidAddress is returned when a required address field is empty.
	ErrInvalidAddress = errors.New("invalid address")
)
