// Package currency provides a closed enumeration of ISO 4217 currency codes.
//
// A Code is an opaque, equality-comparable tag. The set of valid codes is
// fixed at build time; anything outside it is rejected at the single point
// of construction (Parse or UnmarshalJSON). Codes carry no decimal-places
// metadata: the minor-unit count is assumed by the caller (e.g. cents for
// USD).
package currency

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[Code] = Code("")

// ErrUnknownCurrency is returned when a code is not in the supported set.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Code represents an ISO 4217 currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes
const (
	AED Code = "AED" // UAE Dirham
	AUD Code = "AUD" // Australian Dollar
	BRL Code = "BRL" // Brazilian Real
	CAD Code = "CAD" // Canadian Dollar
	CHF Code = "CHF" // Swiss Franc
	CNY Code = "CNY" // Chinese Yuan
	DKK Code = "DKK" // Danish Krone
	EGP Code = "EGP" // Egyptian Pound
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
	HKD Code = "HKD" // Hong Kong Dollar
	INR Code = "INR" // Indian Rupee
	JPY Code = "JPY" // Japanese Yen
	KRW Code = "KRW" // South Korean Won
	KWD Code = "KWD" // Kuwaiti Dinar
	MXN Code = "MXN" // Mexican Peso
	NOK Code = "NOK" // Norwegian Krone
	NZD Code = "NZD" // New Zealand Dollar
	PLN Code = "PLN" // Polish Zloty
	SAR Code = "SAR" // Saudi Riyal
	SEK Code = "SEK" // Swedish Krona
	SGD Code = "SGD" // Singapore Dollar
	TRY Code = "TRY" // Turkish Lira
	USD Code = "USD" // US Dollar
	ZAR Code = "ZAR" // South African Rand
)

// supported is the closed set of valid codes. Built once at package
// initialization and never mutated afterwards.
var supported = map[Code]struct{}{
	AED: {}, AUD: {}, BRL: {}, CAD: {}, CHF: {},
	CNY: {}, DKK: {}, EGP: {}, EUR: {}, GBP: {},
	HKD: {}, INR: {}, JPY: {}, KRW: {}, KWD: {},
	MXN: {}, NOK: {}, NZD: {}, PLN: {}, SAR: {},
	SEK: {}, SGD: {}, TRY: {}, USD: {}, ZAR: {},
}

// Parse returns the Code for s, accepting lowercase and surrounding
// whitespace. Returns ErrUnknownCurrency for anything outside the
// supported set.
func Parse(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return code, nil
}

// IsValid reports whether the code is in the supported set.
func (c Code) IsValid() bool {
	_, ok := supported[c]
	return ok
}

// Equals reports whether two codes are the same currency.
func (c Code) Equals(other Code) bool {
	return c == other
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// MarshalJSON implements json.Marshaler interface.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// UnmarshalJSON implements json.Unmarshaler interface.
// The decoded code is re-validated against the supported set.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Codes returns all supported currency codes. The returned slice is a
// fresh copy in unspecified order.
func Codes() []Code {
	codes := make([]Code, 0, len(supported))
	for c := range supported {
		codes = append(codes, c)
	}
	return codes
}
