// Package temporal provides validated calendar and clock value objects
// wrapping the standard library time package.
//
// Each type narrows time.Time to the components it represents: Date has
// no time of day, Time has no calendar day, DateTime is a UTC instant,
// and DateTimeTZ is an instant with a fixed zone offset.
package temporal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var (
	_ valueobject.ValueObject[Date]       = Date{}
	_ valueobject.ValueObject[Time]       = Time{}
	_ valueobject.ValueObject[DateTime]   = DateTime{}
	_ valueobject.ValueObject[DateTimeTZ] = DateTimeTZ{}
)

// Common temporal package errors
var (
	// ErrInvalidDate is returned when year, month, and day do not name a
	// real calendar day.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidTime is returned when a clock time component is out of range.
	ErrInvalidTime = errors.New("invalid clock time")

	// ErrInvalidDateTime is returned when an instant is the zero time.
	ErrInvalidDateTime = errors.New("invalid date-time")
)

// Date is a calendar day without a time of day, e.g. 2024-02-29.
type Date struct {
	t time.Time
}

// NewDate creates a Date.
// Invariants enforced:
//   - Year, month, and day must name a real calendar day: 2024-02-30
//     is rejected, not normalized to March.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{t: t}, nil
}

// DateOf returns the calendar day of the given instant, in the instant's
// location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// Equals reports whether two values name the same calendar day.
func (d Date) Equals(other Date) bool { return d.t.Equal(other.t) }

// String returns the date in ISO 8601 form, e.g. "2024-02-29".
func (d Date) String() string { return d.t.Format(time.DateOnly) }

// MarshalJSON implements json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	*d = Date{t: t}
	return nil
}

// Time is a clock time without a calendar day, e.g. 13:37:00.
type Time struct {
	hour, minute, second int
}

// NewTime creates a Time.
// Invariants enforced:
//   - Hour in [0, 23], minute and second in [0, 59].
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Time{}, fmt.Errorf(
			"%w: %02d:%02d:%02d", ErrInvalidTime, hour, minute, second,
		)
	}
	return Time{hour: hour, minute: minute, second: second}, nil
}

// Hour returns the hour in [0, 23].
func (t Time) Hour() int { return t.hour }

// Minute returns the minute in [0, 59].
func (t Time) Minute() int { return t.minute }

// Second returns the second in [0, 59].
func (t Time) Second() int { return t.second }

// Equals reports whether two values name the same clock time.
func (t Time) Equals(other Time) bool { return t == other }

// String returns the time in ISO 8601 form, e.g. "13:37:00".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// MarshalJSON implements json.Marshaler interface.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.TimeOnly, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	*t = Time{hour: parsed.Hour(), minute: parsed.Minute(), second: parsed.Second()}
	return nil
}

// DateTime is an instant in time, normalized to UTC.
type DateTime struct {
	t time.Time
}

// NewDateTime creates a DateTime from an instant. The zero time is
// rejected; the instant is normalized to UTC.
func NewDateTime(t time.Time) (DateTime, error) {
	if t.IsZero() {
		return DateTime{}, fmt.Errorf("%w: zero time", ErrInvalidDateTime)
	}
	return DateTime{t: t.UTC()}, nil
}

// Instant returns the wrapped UTC instant.
func (d DateTime) Instant() time.Time { return d.t }

// Equals reports whether two values are the same instant.
func (d DateTime) Equals(other DateTime) bool { return d.t.Equal(other.t) }

// String returns the instant in RFC 3339 form.
func (d DateTime) String() string { return d.t.Format(time.RFC3339Nano) }

// MarshalJSON implements json.Marshaler interface.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}
	parsed, err := NewDateTime(t)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateTimeTZ is an instant in time that keeps its fixed zone offset.
// Unlike DateTime, two values at the same instant but different offsets
// are not equal.
type DateTimeTZ struct {
	t time.Time
}

// NewDateTimeTZ creates a DateTimeTZ from an instant, preserving the
// instant's zone offset. The zero time is rejected.
func NewDateTimeTZ(t time.Time) (DateTimeTZ, error) {
	if t.IsZero() {
		return DateTimeTZ{}, fmt.Errorf("%w: zero time", ErrInvalidDateTime)
	}
	_, offset := t.Zone()
	return DateTimeTZ{t: t.In(time.FixedZone("", offset))}, nil
}

// Instant returns the wrapped instant with its offset.
func (d DateTimeTZ) Instant() time.Time { return d.t }

// Equals reports whether two values are the same instant at the same
// offset.
func (d DateTimeTZ) Equals(other DateTimeTZ) bool {
	_, a := d.t.Zone()
	_, b := other.t.Zone()
	return d.t.Equal(other.t) && a == b
}

// String returns the instant in RFC 3339 form with its offset.
func (d DateTimeTZ) String() string { return d.t.Format(time.RFC3339Nano) }

// MarshalJSON implements json.Marshaler interface.
func (d DateTimeTZ) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (d *DateTimeTZ) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}
	parsed, err := NewDateTimeTZ(t)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
