// Package communication provides validated contact-identifier value
// objects: email addresses and phone numbers.
package communication

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[Email] = Email{}

// ErrInvalidEmail is returned when a string is not a valid email address.
var ErrInvalidEmail = errors.New("invalid email address")

// validate is constructed once at package initialization and only read
// afterwards.
var validate = validator.New()

const (
	emailMinLength = 5
	emailMaxLength = 30
)

// Email is a validated, normalized email address.
// The address is sanitized on construction: surrounding whitespace is
// trimmed and the address is lowercased.
type Email struct {
	address string
}

// NewEmail creates an Email value.
// Invariants enforced:
//   - The sanitized address is between 5 and 30 characters.
//   - The address is syntactically valid.
func NewEmail(address string) (Email, error) {
	sanitized := strings.ToLower(strings.TrimSpace(address))

	if n := utf8.RuneCountInString(sanitized); n < emailMinLength || n > emailMaxLength {
		return Email{}, fmt.Errorf(
			"%w: must be between %d and %d characters, got %d",
			ErrInvalidEmail, emailMinLength, emailMaxLength, n,
		)
	}
	if err := validate.Var(sanitized, "email"); err != nil {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, address)
	}

	return Email{address: sanitized}, nil
}

// Address returns the sanitized address.
func (e Email) Address() string { return e.address }

// String returns the sanitized address.
func (e Email) String() string { return e.address }

// Equals reports whether two values hold the same sanitized address.
func (e Email) Equals(other Email) bool { return e.address == other.address }

// MarshalJSON implements json.Marshaler interface. The wire form is a
// bare string.
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.address)
}

// UnmarshalJSON implements json.Unmarshaler interface. The decoded
// address is re-validated.
func (e *Email) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewEmail(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
