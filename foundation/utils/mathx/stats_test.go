// File: stats_test.go
// Title: Aggregate Function Tests
// Description: Tests for Sum, Mean, Min, Max and IsInteger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package mathx

import (
	"errors"
	"math"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"several", []float64{1, 2, 3.5}, 6.5},
		{"negative", []float64{-1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Sum(tt.values...); result != tt.expected {
				t.Errorf("Sum(%v) = %v; want %v", tt.values, result, tt.expected)
			}
		})
	}
}

func TestAggregates(t *testing.T) {
	values := []float64{3, -2, 8, 1}

	tests := []struct {
		name     string
		fn       func(...float64) (float64, error)
		expected float64
	}{
		{"Mean", Mean, 2.5},
		{"Min", Min, -2},
		{"Max", Max, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.fn(values...)
			if err != nil {
				t.Fatalf("%s(%v) error = %v", tt.name, values, err)
			}
			if result != tt.expected {
				t.Errorf("%s(%v) = %v; want %v", tt.name, values, result, tt.expected)
			}

			if _, err := tt.fn(); !errors.Is(err, ErrEmpty) {
				t.Errorf("%s() error = %v; want ErrEmpty", tt.name, err)
			}
		})
	}
}

func TestIsInteger(t *testing.T) {
	tests := []struct {
		value    float64
		expected bool
	}{
		{0, true},
		{7, true},
		{-3, true},
		{2.5, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if result := IsInteger(tt.value); result != tt.expected {
			t.Errorf("IsInteger(%v) = %v; want %v", tt.value, result, tt.expected)
		}
	}
}
