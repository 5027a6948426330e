package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when a construction would produce a
	// zero amount, directly or through a derived operation.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMismatchedCurrencies is returned when performing operations on
	// money with different currencies.
	ErrMismatchedCurrencies = errors.New("mismatched currencies")

	// ErrNegativeResult is returned when a subtraction would underflow
	// (minuend smaller than subtrahend).
	ErrNegativeResult = errors.New("resulting amount cannot be negative")

	// ErrInvalidScalar is returned when a divide scalar is zero.
	ErrInvalidScalar = errors.New("scalar must not be zero")

	// ErrInvalidPartCount is returned when Allocate is called with zero parts.
	ErrInvalidPartCount = errors.New("part count must be positive")

	// ErrInvalidRatio is returned when an allocation ratio is non-positive,
	// NaN, or infinite.
	ErrInvalidRatio = errors.New("ratio must be positive and finite")

	// ErrAmountExceedsMaxSafeInt is returned when an amount exceeds the
	// maximum safe integer value.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)
