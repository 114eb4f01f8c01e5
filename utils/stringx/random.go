// File: random.go
// Title: Random String Generation Utilities
// Description: Implements secure random string and identifier generation
//              using crypto/rand and UUIDs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation with secure random generation

package stringx

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Safe characters for URLs and filenames
	URLSafe = Alphanumeric + "-_"
)

// RandomString generates a cryptographically secure random string of the
// specified length using the provided character set. If charset is empty,
// it defaults to Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}

	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = charset[randomIndex.Int64()]
	}

	return string(result), nil
}

// RandomHex generates a random hexadecimal string of the specified length
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}

// NewID returns a new random UUID string for use as a unique identifier
func NewID() string {
	return uuid.NewString()
}
