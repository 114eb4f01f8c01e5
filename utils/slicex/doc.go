// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides extended functionality for working
//              with slices in Go, offering transformation, deduplication,
//              chunking, shuffling, search, and statistics operations with
//              type-safe generic implementations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial documentation

// Package slicex provides extended functionality for working with slices in Go.
//
// Overview
//
// The package extends the standard library's slice support with the
// operations commonly needed when shaping data for business logic: filtering
// and mapping, duplicate removal, chunking, random ordering, and descriptive
// statistics. All functions use Go generics for type safety, never mutate
// their inputs, and handle nil slices gracefully (nil in, nil out).
//
// Two distinct duplicate-removal semantics are provided and deliberately
// kept apart:
//
//   - Unique removes every duplicate, keeping the first occurrence:
//     Unique([a b a c]) = [a b c]
//   - Dedupe collapses only runs of consecutive equal elements:
//     Dedupe([a a b a]) = [a b a]
//
// Usage Examples
//
// Basic operations:
//
//	evens := slicex.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	pages := slicex.Chunk(items, 25)
//	order := slicex.Shuffle(deck)
//
// Statistics:
//
//	mean, ok := slicex.Mean(samples)
//	median, ok := slicex.Median(samples)
//	sd, ok := slicex.StdDev(samples)
//
// Statistics functions report emptiness through their bool result rather
// than inventing a sentinel value; Sum alone returns the natural zero.
package slicex
