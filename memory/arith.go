package memory

import (
	"fmt"
	"math"
)

// Byte counts are accumulated in int64 and every step is checked, so a huge
// geometry fails with ErrOverflow instead of wrapping to a small estimate.
// All operands are non-negative.

func mulBytes(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt64/b {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

func addBytes(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// product multiplies non-negative factors.
func product(values []int) (int64, error) {
	total := int64(1)
	for _, v := range values {
		var err error
		if total, err = mulBytes(total, int64(v)); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// weightedSum returns sum(counts[i] * weights[i]).
func weightedSum(counts, weights []int64) (int64, error) {
	var total int64
	for i := range counts {
		term, err := mulBytes(counts[i], weights[i])
		if err != nil {
			return 0, err
		}
		if total, err = addBytes(total, term); err != nil {
			return 0, err
		}
	}
	return total, nil
}
