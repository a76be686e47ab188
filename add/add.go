// Package add sums two uint8 values under an explicit overflow policy.
package add

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned by CheckedAdd when the sum does not fit in a uint8.
var ErrOverflow = errors.New("uint8 addition overflows")

// Add returns a + b. Sums above 255 wrap modulo 256, so Add(200, 100) == 44.
func Add(a, b uint8) uint8 {
	return a + b
}

// CheckedAdd returns a + b, or ErrOverflow when the sum exceeds math.MaxUint8.
func CheckedAdd(a, b uint8) (uint8, error) {
	if a > math.MaxUint8-b {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// SaturatingAdd returns a + b clamped to math.MaxUint8.
func SaturatingAdd(a, b uint8) uint8 {
	if a > math.MaxUint8-b {
		return math.MaxUint8
	}
	return a + b
}

// Sum folds Add over values, so it wraps the same way. Sum() is 0.
func Sum(values ...uint8) uint8 {
	var total uint8
	for _, v := range values {
		total = Add(total, v)
	}
	return total
}
