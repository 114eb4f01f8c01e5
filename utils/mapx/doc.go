// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides extended functionality for working with
//              maps in Go with type-safe generic implementations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial documentation

// Package mapx provides extended functionality for working with maps in Go.
//
// All functions are nil-safe and treat their inputs as immutable: operations
// that change map structure (Merge, Filter, Invert) return new maps. Merge
// takes an explicit MergePolicy so callers state which side wins on key
// conflicts instead of relying on argument order:
//
//	defaults := map[string]string{"sep": ",", "quote": `"`}
//	overrides := map[string]string{"sep": ";"}
//	effective := mapx.Merge(defaults, overrides, mapx.RightWins)
package mapx
