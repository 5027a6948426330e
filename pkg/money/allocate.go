package money

import (
	"fmt"
	"math"
)

// Allocate splits the amount into the given number of parts using
// largest-remainder distribution: each part receives the floor share, and
// the integer remainder is handed out one minor unit at a time to the
// first parts.
// Invariants enforced:
//   - Part count must be positive.
//   - Every part is constructed through New, so splitting into more parts
//     than there are minor units fails with ErrInvalidAmount.
//
// Guarantees:
//   - The parts sum to the original amount exactly; no unit is lost or
//     gained to rounding.
//   - The sequence of amounts is non-increasing.
func (m Money) Allocate(parts uint) ([]Money, error) {
	if parts == 0 {
		return nil, fmt.Errorf("%w: got zero parts", ErrInvalidPartCount)
	}

	low := m.amount / Amount(parts)
	remainder := m.amount % Amount(parts)

	allocated := make([]Money, 0, parts)
	for i := uint(0); i < parts; i++ {
		share := low
		if Amount(i) < remainder {
			share++
		}

		part, err := New(share, m.currency)
		if err != nil {
			return nil, err
		}
		allocated = append(allocated, part)
	}

	return allocated, nil
}

// AllocateByRatio splits the amount proportionally to the given ratios.
// Every ratio is validated up front, before any output is computed: a
// non-positive, NaN, or infinite ratio fails fast with ErrInvalidRatio.
// An empty ratio sequence yields an empty result, not an error.
//
// Each share is round(amount * ratio / total) constructed through New, so
// a ratio small enough to round its share to zero fails with
// ErrInvalidAmount.
//
// Unlike Allocate, no remainder redistribution is performed: the parts
// sum to the original amount only approximately, within
// ±(len(ratios) - 1) minor units of independent per-share rounding.
func (m Money) AllocateByRatio(ratios []float64) ([]Money, error) {
	if len(ratios) == 0 {
		return []Money{}, nil
	}

	var total float64
	for _, r := range ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, r)
		}
		total += r
	}

	allocated := make([]Money, 0, len(ratios))
	for _, r := range ratios {
		share := math.Round(float64(m.amount) * r / total)

		part, err := New(saturate(share), m.currency)
		if err != nil {
			return nil, err
		}
		allocated = append(allocated, part)
	}

	return allocated, nil
}
