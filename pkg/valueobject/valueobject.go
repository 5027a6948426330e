// Package valueobject defines the contract shared by every validated domain
// value in this library.
//
// A value object has no identity beyond its attributes. It is created only
// through a validating constructor, compared structurally, and survives a
// serialize/deserialize round trip as an equal value. Invariants:
//   - Construction fails rather than producing an invalid instance.
//   - Instances are immutable; operations return new values.
//   - Two instances with equal attributes are equal.
package valueobject

import "encoding/json"

// ValueObject is satisfied by every validated domain value type.
// T is the concrete type itself, e.g. money.Money.
type ValueObject[T any] interface {
	// Equals reports whether the value is structurally equal to other.
	Equals(other T) bool

	json.Marshaler
}

// RoundTrip serializes v to JSON and deserializes it into a fresh value.
// Deserialization goes through the type's UnmarshalJSON, so the result has
// been re-validated. Used by tests to assert serialize-then-deserialize
// yields an equal value.
func RoundTrip[T any](v T) (T, error) {
	var out T

	data, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
