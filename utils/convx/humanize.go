// File: humanize.go
// Title: Human-Readable Formatting Utilities
// Description: Implements human-readable number and size formatting on top
//              of the go-humanize library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation with humanized formatting

package convx

import (
	"github.com/dustin/go-humanize"
)

// HumanBytes formats a byte count with decimal (SI) units.
// Example: HumanBytes(1500000) -> "1.5 MB"
func HumanBytes(n uint64) string {
	return humanize.Bytes(n)
}

// HumanIBytes formats a byte count with binary (IEC) units.
// Example: HumanIBytes(1048576) -> "1.0 MiB"
func HumanIBytes(n uint64) string {
	return humanize.IBytes(n)
}

// Comma renders an integer with thousands separators.
// Example: Comma(1234567) -> "1,234,567"
func Comma(n int64) string {
	return humanize.Comma(n)
}

// Ordinal renders an integer as its ordinal form.
// Example: Ordinal(3) -> "3rd"
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}
