// File: stats.go
// Title: Slice Statistics
// Description: Implements descriptive statistics over numeric slices
//              including sum, mean, median, mode, variance, and standard
//              deviation. All functions follow the package's nil-safe
//              conventions and report emptiness through a bool result.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation with descriptive statistics

package slicex

import (
	"cmp"
	"math"
	"slices"
)

// Number constrains the numeric types accepted by the statistics functions
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of all elements
func Sum[T Number](slice []T) T {
	var sum T
	for _, item := range slice {
		sum += item
	}
	return sum
}

// Mean returns the arithmetic mean, or false for an empty slice
func Mean[T Number](slice []T) (float64, bool) {
	if len(slice) == 0 {
		return 0, false
	}

	var sum float64
	for _, item := range slice {
		sum += float64(item)
	}
	return sum / float64(len(slice)), true
}

// Median returns the median value, or false for an empty slice.
// For an even number of elements the mean of the two middle values is used.
func Median[T Number](slice []T) (float64, bool) {
	if len(slice) == 0 {
		return 0, false
	}

	sorted := Clone(slice)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid]), true
	}
	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, true
}

// Mode returns the most frequent element, or false for an empty slice.
// Ties are broken in favor of the element encountered first.
func Mode[T comparable](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	counts := make(map[T]int, len(slice))
	best := slice[0]
	bestCount := 0
	for _, item := range slice {
		counts[item]++
		if counts[item] > bestCount {
			best = item
			bestCount = counts[item]
		}
	}
	return best, true
}

// Variance returns the population variance, or false for an empty slice
func Variance[T Number](slice []T) (float64, bool) {
	mean, ok := Mean(slice)
	if !ok {
		return 0, false
	}

	var sum float64
	for _, item := range slice {
		d := float64(item) - mean
		sum += d * d
	}
	return sum / float64(len(slice)), true
}

// StdDev returns the population standard deviation, or false for an empty slice
func StdDev[T Number](slice []T) (float64, bool) {
	variance, ok := Variance(slice)
	if !ok {
		return 0, false
	}
	return math.Sqrt(variance), true
}

// Min returns the minimum element, or false for an empty slice
func Min[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	min := slice[0]
	for _, item := range slice[1:] {
		if item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the maximum element, or false for an empty slice
func Max[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	max := slice[0]
	for _, item := range slice[1:] {
		if item > max {
			max = item
		}
	}
	return max, true
}

// MinMax returns both extremes in a single pass, or false for an empty slice
func MinMax[T cmp.Ordered](slice []T) (T, T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, zero, false
	}

	min, max := slice[0], slice[0]
	for _, item := range slice[1:] {
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return min, max, true
}
