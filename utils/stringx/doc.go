// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string helpers covering case
//              conversion, truncation, and random identifier generation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial documentation

// Package stringx provides extended string helpers.
//
// Case conversions share a single word splitter that understands camelCase
// boundaries as well as underscore, hyphen, and space separators, so
// ToSnakeCase, ToKebabCase, ToCamelCase, and ToPascalCase round-trip through
// each other consistently.
//
// RandomString draws from crypto/rand and is safe for token generation;
// NewID returns a random UUID string.
package stringx
