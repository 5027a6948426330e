package communication

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[PhoneNumber] = PhoneNumber{}

// ErrInvalidPhoneNumber is returned when a string cannot be parsed as a
// valid phone number.
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// PhoneNumber is a validated phone number, stored in canonical E.164
// form (e.g. "+14155552671").
type PhoneNumber struct {
	e164 string
}

// NewPhoneNumber parses and validates a phone number. The region is an
// ISO 3166-1 alpha-2 code used to resolve national-format numbers; it is
// ignored when the number carries a leading "+" country code.
func NewPhoneNumber(number, region string) (PhoneNumber, error) {
	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return PhoneNumber{}, fmt.Errorf("%w: %v", ErrInvalidPhoneNumber, err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return PhoneNumber{}, fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, number)
	}

	return PhoneNumber{e164: phonenumbers.Format(parsed, phonenumbers.E164)}, nil
}

// E164 returns the number in canonical E.164 form.
func (p PhoneNumber) E164() string { return p.e164 }

// String returns the number in canonical E.164 form.
func (p PhoneNumber) String() string { return p.e164 }

// Equals reports whether two values are the same canonical number.
func (p PhoneNumber) Equals(other PhoneNumber) bool { return p.e164 == other.e164 }

// MarshalJSON implements json.Marshaler interface. The wire form is the
// E.164 string.
func (p PhoneNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.e164)
}

// UnmarshalJSON implements json.Unmarshaler interface. The decoded number
// is re-validated; E.164 input needs no region.
func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewPhoneNumber(s, "")
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
