// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements slice utility functions covering transformation,
//              deduplication, chunking, shuffling, and search operations
//              with generic type support. All operations are nil-safe and
//              never mutate their input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation with core slice utilities

package slicex

import (
	"fmt"
	"math/rand"
	"strings"
)

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce reduces the slice to a single value using the provided function
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if slice == nil || reducer == nil {
		return initial
	}

	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// ===============================
// Deduplication Functions
// ===============================

// Unique returns a new slice with duplicate elements removed (preserves order,
// first occurrence wins)
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// UniqueBy returns a new slice with duplicates removed based on a key function
func UniqueBy[T any, K comparable](slice []T, keyFunc func(T) K) []T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	seen := make(map[K]bool, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		key := keyFunc(item)
		if !seen[key] {
			seen[key] = true
			result = append(result, item)
		}
	}
	return result
}

// Dedupe collapses runs of consecutive equal elements into a single element.
// Unlike Unique, non-adjacent duplicates are kept.
func Dedupe[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}
	if len(slice) == 0 {
		return []T{}
	}

	result := make([]T, 0, len(slice))
	result = append(result, slice[0])
	for _, item := range slice[1:] {
		if item != result[len(result)-1] {
			result = append(result, item)
		}
	}
	return result
}

// DedupeBy collapses runs of consecutive elements with equal keys
func DedupeBy[T any, K comparable](slice []T, keyFunc func(T) K) []T {
	if slice == nil || keyFunc == nil {
		return nil
	}
	if len(slice) == 0 {
		return []T{}
	}

	result := make([]T, 0, len(slice))
	result = append(result, slice[0])
	lastKey := keyFunc(slice[0])
	for _, item := range slice[1:] {
		key := keyFunc(item)
		if key != lastKey {
			result = append(result, item)
			lastKey = key
		}
	}
	return result
}

// ===============================
// Chunking and Shuffling
// ===============================

// Chunk splits the slice into chunks of the specified size; the final chunk
// may be shorter
func Chunk[T any](slice []T, size int) [][]T {
	if slice == nil || size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for i := 0; i < len(slice); i += size {
		end := i + size
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[i:end])
	}
	return chunks
}

// Flatten flattens a slice of slices into a single slice
func Flatten[T any](slices [][]T) []T {
	if slices == nil {
		return nil
	}

	totalLen := 0
	for _, s := range slices {
		totalLen += len(s)
	}

	result := make([]T, 0, totalLen)
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// Shuffle returns a copy of the slice with elements in uniformly random order.
// The input slice is never modified.
func Shuffle[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := Clone(slice)
	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// Sample returns n elements drawn from the slice without replacement. If n
// exceeds the slice length the whole slice is returned in random order.
func Sample[T any](slice []T, n int) []T {
	if slice == nil || n <= 0 {
		return nil
	}

	shuffled := Shuffle(slice)
	if n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}

// ===============================
// Search and Validation Functions
// ===============================

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) >= 0
}

// IndexOf returns the first index of the element, or -1 if not found
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// Find returns the first element matching the predicate, or the zero value
// and false if none matches
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	var zero T
	if slice == nil || predicate == nil {
		return zero, false
	}

	for _, item := range slice {
		if predicate(item) {
			return item, true
		}
	}
	return zero, false
}

// Every checks if all elements match the predicate
func Every[T any](slice []T, predicate func(T) bool) bool {
	if slice == nil || predicate == nil {
		return false
	}

	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Some checks if at least one element matches the predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	if slice == nil || predicate == nil {
		return false
	}

	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// ===============================
// Utility Functions
// ===============================

// Reverse returns a new slice with elements in reverse order
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Equal checks if two slices have equal length and elements
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}

	for i, item := range slice1 {
		if item != slice2[i] {
			return false
		}
	}
	return true
}

// Take returns the first n elements as a new slice
func Take[T any](slice []T, n int) []T {
	if slice == nil || n <= 0 {
		return nil
	}

	if n >= len(slice) {
		return Clone(slice)
	}

	result := make([]T, n)
	copy(result, slice[:n])
	return result
}

// Drop returns all but the first n elements as a new slice
func Drop[T any](slice []T, n int) []T {
	if slice == nil || n <= 0 {
		return Clone(slice)
	}

	if n >= len(slice) {
		return nil
	}

	result := make([]T, len(slice)-n)
	copy(result, slice[n:])
	return result
}

// ===============================
// Advanced Operations
// ===============================

// GroupBy groups elements by a key function, preserving encounter order
// within each group
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) map[K][]T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	groups := make(map[K][]T)
	for _, item := range slice {
		key := keyFunc(item)
		groups[key] = append(groups[key], item)
	}
	return groups
}

// Partition splits the slice into two based on a predicate: elements matching
// the predicate first, the rest second
func Partition[T any](slice []T, predicate func(T) bool) ([]T, []T) {
	if slice == nil || predicate == nil {
		return nil, nil
	}

	var matched, rest []T
	for _, item := range slice {
		if predicate(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

// Join converts elements to strings and joins them with the separator
func Join[T any](slice []T, separator string) string {
	if len(slice) == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range slice {
		if i > 0 {
			b.WriteString(separator)
		}
		fmt.Fprintf(&b, "%v", item)
	}
	return b.String()
}
