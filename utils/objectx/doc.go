// File: doc.go
// Title: Package Documentation for objectx
// Description: Package objectx provides reflection-based deep cloning of
//              arbitrary value graphs and structured-data codecs (JSON,
//              XML, gob, YAML, TOML) around arbitrary values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial documentation

// Package objectx provides deep cloning and serialization of values.
//
// Cloning
//
// Clone walks a value graph by reflection and rebuilds it bottom-up:
//
//	clone, err := objectx.CloneT(original)
//
// The dispatch rules are deliberate and worth knowing:
//
//   - Arrays clone SHALLOWLY: the array is duplicated but its element
//     references are shared with the original. Slices clone DEEPLY. This
//     asymmetry is part of the contract; callers holding composite values
//     in arrays keep shared elements.
//   - Struct clones start from the zero value. Unexported fields cannot be
//     written through reflection and therefore stay at their zero value in
//     the clone — they behave as read-only fields. This also means struct
//     types whose state lives entirely in unexported fields (time.Time,
//     for example) clone to their zero value.
//   - WithExclude(names...) skips the named struct fields at every nesting
//     depth, leaving them at their zero value.
//   - Channels, functions, and unsafe pointers fail fast with
//     CodeUnsupportedType; a clone either completes fully or fails as a
//     whole, never silently degrading to a shallow copy.
//
// Clone performs no cycle detection: a graph with a reference cycle
// recurses until the stack is exhausted. Callers handling untrusted graph
// shapes should set WithMaxDepth, which fails with CodeRecursionLimit and
// makes "too deep or cyclic" distinguishable from bad data:
//
//	clone, err := objectx.Clone(v, objectx.WithExclude("Secret"), objectx.WithMaxDepth(64))
//
// Cloning is safe to call from multiple goroutines as long as the source
// graph is not concurrently mutated; no internal synchronization is
// performed.
//
// Serialization
//
// The To/From pairs wrap the JSON, XML, gob, YAML, and TOML codecs with
// uniform error classification (CodeSerialization). They are independent of
// Clone and of each other.
package objectx
