// File: stats.go
// Title: Aggregate Functions over float64
// Description: Sum, mean, minimum and maximum over float64 values. The
//              numeric builtins of the interpreter delegate to these.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation, float64 counterparts of the
//                      decimal aggregate helpers

package mathx

import (
	"errors"
	"math"
)

// ErrEmpty is returned by aggregates that need at least one value
var ErrEmpty = errors.New("mathx: no values")

// Sum calculates the sum of the values; the sum of nothing is 0
func Sum(values ...float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum
}

// Mean calculates the arithmetic mean of the values
func Mean(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return Sum(values...) / float64(len(values)), nil
}

// Min finds the minimum value
func Min(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}

	min := values[0]
	for _, value := range values[1:] {
		if value < min {
			min = value
		}
	}
	return min, nil
}

// Max finds the maximum value
func Max(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}

	max := values[0]
	for _, value := range values[1:] {
		if value > max {
			max = value
		}
	}
	return max, nil
}

// IsInteger reports whether v is finite and has no fractional part
func IsInteger(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v)
}
