// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides aggregate helpers over float64.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Replaced decimal arithmetic with float64 aggregates

// Package mathx extends the standard math package with aggregate functions
// (Sum, Mean, Min, Max) over float64 values.
//
// Functions that are undefined for an empty input return ErrEmpty:
//
//	mean, err := mathx.Mean(1, 2, 3) // 2, nil
//	_, err = mathx.Max()             // ErrEmpty
package mathx
