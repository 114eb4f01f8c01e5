// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map utility functions including extraction,
//              cloning, merging, filtering, and comparison with type-safe
//              generic implementations. Input maps are never modified.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation with core map utilities

package mapx

// MergePolicy controls which side wins on key conflicts during Merge
type MergePolicy int

const (
	// LeftWins keeps the value already present in the left map
	LeftWins MergePolicy = iota

	// RightWins overwrites with the value from the right map
	RightWins
)

// Keys returns all keys of the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values of the map in unspecified order
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Merge combines two maps into a new map, resolving key conflicts according
// to the policy
func Merge[K comparable, V any](left, right map[K]V, policy MergePolicy) map[K]V {
	if left == nil && right == nil {
		return nil
	}

	result := make(map[K]V, len(left)+len(right))
	for k, v := range left {
		result[k] = v
	}
	for k, v := range right {
		if _, exists := result[k]; exists && policy == LeftWins {
			continue
		}
		result[k] = v
	}
	return result
}

// Filter returns a new map containing only entries that match the predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil || predicate == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// HasKey checks if the map contains the given key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, exists := m[key]
	return exists
}

// Equal checks if two maps contain the same key-value pairs
func Equal[K, V comparable](m1, m2 map[K]V) bool {
	if len(m1) != len(m2) {
		return false
	}

	for k, v := range m1 {
		if other, exists := m2[k]; !exists || other != v {
			return false
		}
	}
	return true
}

// Invert swaps keys and values; when values collide the surviving key is
// unspecified
func Invert[K, V comparable](m map[K]V) map[V]K {
	if m == nil {
		return nil
	}

	result := make(map[V]K, len(m))
	for k, v := range m {
		result[v] = k
	}
	return result
}

// GetOr returns the value for the key, or the default if the key is absent
func GetOr[K comparable, V any](m map[K]V, key K, def V) V {
	if v, exists := m[key]; exists {
		return v
	}
	return def
}
