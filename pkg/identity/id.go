// Package identity provides a UUID-backed identifier value object.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[ID] = ID{}

// ErrInvalidID is returned when a string is not a valid, non-nil UUID.
var ErrInvalidID = errors.New("invalid id")

// ID identifies a domain entity. It wraps a non-nil UUID; the nil UUID
// is rejected so an accidentally zero-valued identifier cannot pass for
// a real one.
type ID struct {
	value uuid.UUID
}

// NewID returns a new random ID.
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID validates and parses an ID from its canonical string form.
func ParseID(s string) (ID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	if parsed == uuid.Nil {
		return ID{}, fmt.Errorf("%w: nil uuid", ErrInvalidID)
	}
	return ID{value: parsed}, nil
}

// UUID returns the wrapped UUID.
func (id ID) UUID() uuid.UUID { return id.value }

// Equals reports whether two identifiers are the same.
func (id ID) Equals(other ID) bool { return id.value == other.value }

// String returns the canonical UUID string.
func (id ID) String() string { return id.value.String() }

// MarshalJSON implements json.Marshaler interface. The wire form is the
// canonical UUID string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value.String())
}

// UnmarshalJSON implements json.Unmarshaler interface. The decoded
// string is re-validated through ParseID.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
