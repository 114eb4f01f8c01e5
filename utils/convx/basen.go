// File: basen.go
// Title: Base-N Conversion Utilities
// Description: Implements radix conversion between int64 values and their
//              textual representation in bases 2 through 36.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation with radix conversion

package convx

import (
	"strconv"
	"strings"

	"github.com/msto63/gox/core/errx"
)

const (
	// MinRadix is the smallest supported base
	MinRadix = 2

	// MaxRadix is the largest supported base (digits 0-9 plus a-z)
	MaxRadix = 36
)

// radixError builds the standard error for an out-of-range base
func radixError(base int) *errx.Error {
	return errx.Newf("radix %d out of range [%d, %d]", base, MinRadix, MaxRadix).
		WithCode(errx.CodeInvalidRadix).
		WithDetail("radix", base)
}

// ToBase renders n in the given base using lowercase digits
func ToBase(n int64, base int) (string, error) {
	if base < MinRadix || base > MaxRadix {
		return "", radixError(base)
	}
	return strconv.FormatInt(n, base), nil
}

// FromBase parses s as an integer in the given base. Uppercase digits are
// accepted.
func FromBase(s string, base int) (int64, error) {
	if base < MinRadix || base > MaxRadix {
		return 0, radixError(base)
	}

	n, err := strconv.ParseInt(strings.ToLower(strings.TrimSpace(s)), base, 64)
	if err != nil {
		return 0, errx.Wrapf(err, "cannot parse %q in base %d", s, base).
			WithCode(errx.CodeConversion)
	}
	return n, nil
}

// Rebase converts the textual representation of an integer from one base to
// another
func Rebase(s string, fromBase, toBase int) (string, error) {
	n, err := FromBase(s, fromBase)
	if err != nil {
		return "", err
	}
	return ToBase(n, toBase)
}
