// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in minor units (e.g., cents for USD) and is
//     strictly positive at every construction point, direct or derived.
//   - Currency must be a supported ISO 4217 code.
//   - All arithmetic operations require matching currencies.
//   - Instances are immutable; every operation returns a new Money.
package money

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/amirasaad/valobs/pkg/currency"
	"github.com/amirasaad/valobs/pkg/valueobject"
)

var _ valueobject.ValueObject[Money] = Money{}

// Amount represents a monetary amount as an unsigned integer in minor
// currency units (e.g., cents for USD).
type Amount = uint64

// Money represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in minor units and is strictly positive.
//   - Currency must be a supported ISO 4217 code.
//   - All arithmetic operations require matching currencies.
type Money struct {
	amount   Amount
	currency currency.Code
}

// New creates a new Money value object with the given minor-unit amount
// and currency code.
// Invariants enforced:
//   - Amount must be strictly positive.
//   - Currency must be in the supported code set.
//
// This is the sole validation gate: every operation that produces a new
// Money routes its result through this check.
//
// Returns Money or an error if any invariant is violated.
func New(amount Amount, code currency.Code) (Money, error) {
	if amount == 0 {
		return Money{}, fmt.Errorf("%w: got zero", ErrInvalidAmount)
	}
	if !code.IsValid() {
		return Money{}, fmt.Errorf("%w: %q", currency.ErrUnknownCurrency, code)
	}

	return Money{amount: amount, currency: code}, nil
}

// Must creates a Money value from the given amount and currency.
// Panics if any invariant is violated. Intended for tests and
// compile-time-known values.
func Must(amount Amount, code currency.Code) Money {
	m, err := New(amount, code)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%d, %s): %v", amount, code, err))
	}
	return m
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() Amount {
	return m.amount
}

// Currency returns the currency code of the Money value.
func (m Money) Currency() currency.Code {
	return m.currency
}

// Equals reports whether both amount and currency are equal.
// No cross-currency equality or ordering is defined.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// IsSameCurrency reports whether the Money value has the same currency
// as another Money value.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// checkCurrency fails with ErrMismatchedCurrencies when the operands of a
// binary operation carry different currencies.
func (m Money) checkCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf(
			"%w: %s and %s",
			ErrMismatchedCurrencies,
			m.currency,
			other.currency,
		)
	}
	return nil
}

// Add returns a new Money value with the sum of amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The sum must not overflow the amount range.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	sum := m.amount + other.amount
	if sum < m.amount {
		return Money{}, fmt.Errorf(
			"%w: %d + %d", ErrAmountExceedsMaxSafeInt, m.amount, other.amount,
		)
	}

	return New(sum, m.currency)
}

// Subtract returns a new Money value with the difference of amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The minuend must exceed the subtrahend: a smaller minuend fails with
//     ErrNegativeResult (checked before subtracting, amounts are unsigned)
//     and an equal one fails re-validation with ErrInvalidAmount.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	if m.amount < other.amount {
		return Money{}, fmt.Errorf(
			"%w: %d - %d", ErrNegativeResult, m.amount, other.amount,
		)
	}

	return New(m.amount-other.amount, m.currency)
}

// Multiply scales the amount by a factor, rounding half away from zero.
//
// Unlike every other operation, the result is not re-validated: a factor
// that rounds the amount to zero yields a Money that would fail New.
// Multiply is a raw-value transform; callers needing the constructor
// guarantee should rebuild the result with New.
func (m Money) Multiply(factor float64) Money {
	product := math.Round(float64(m.amount) * factor)
	return Money{amount: saturate(product), currency: m.currency}
}

// Divide scales the amount down by a divisor, rounding half away from zero.
// Invariants enforced:
//   - Divisor must not be zero.
//   - The result is re-validated: a quotient that rounds to zero (or below)
//     fails with ErrInvalidAmount.
func (m Money) Divide(divisor float64) (Money, error) {
	if divisor == 0 {
		return Money{}, fmt.Errorf("%w: cannot divide by zero", ErrInvalidScalar)
	}

	quotient := math.Round(float64(m.amount) / divisor)
	return New(saturate(quotient), m.currency)
}

// String returns the minor-unit amount followed by the currency code,
// e.g. "1050 USD".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// MarshalJSON implements json.Marshaler interface.
// The wire form is {"amount": <uint>, "currency": "<ISO 4217 code>"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   Amount        `json:"amount"`
		Currency currency.Code `json:"currency"`
	}{
		Amount:   m.amount,
		Currency: m.currency,
	})
}

// UnmarshalJSON implements json.Unmarshaler interface.
// The decoded value is re-validated through New.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   Amount `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	code, err := currency.Parse(aux.Currency)
	if err != nil {
		return err
	}

	parsed, err := New(aux.Amount, code)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// maxAmountFloat is the smallest float64 that exceeds the Amount range.
const maxAmountFloat = float64(math.MaxUint64)

// saturate converts a rounded float to an Amount: NaN and non-positive
// values become 0, values beyond the range become the maximum amount.
func saturate(f float64) Amount {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= maxAmountFloat:
		return math.MaxUint64
	default:
		return Amount(f)
	}
}
