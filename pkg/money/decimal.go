package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirasaad/valobs/pkg/currency"
)

// FromDecimal creates a Money value from a major-unit decimal amount,
// scaled by the given number of decimal places (e.g. 2 for USD cents).
// The scaling is exact; no floating-point arithmetic is involved.
// Invariants enforced:
//   - The scaled amount must be a whole number of minor units.
//   - The scaled amount must be positive and fit the amount range.
func FromDecimal(d decimal.Decimal, code currency.Code, decimals int32) (Money, error) {
	minor := d.Shift(decimals)
	if !minor.IsInteger() {
		return Money{}, fmt.Errorf(
			"%w: %s has more than %d decimal places", ErrInvalidAmount, d, decimals,
		)
	}
	if minor.Sign() <= 0 {
		return Money{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, d)
	}

	units := minor.BigInt()
	if !units.IsUint64() {
		return Money{}, fmt.Errorf("%w: %s", ErrAmountExceedsMaxSafeInt, d)
	}

	return New(units.Uint64(), code)
}

// Decimal returns the amount as a major-unit decimal, scaled down by the
// given number of decimal places.
func (m Money) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromUint64(m.amount).Shift(-decimals)
}
