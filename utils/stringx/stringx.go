// File: stringx.go
// Title: Core String Utilities
// Description: Implements string utility functions including case
//              conversion, truncation, and blank checks used throughout
//              the gox packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation with core string utilities

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty checks if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if the string is empty or consists only of whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Truncate shortens the string to at most maxLen runes, appending an
// ellipsis when truncation occurred. A maxLen of 3 or less returns only
// the ellipsis prefix that fits.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// splitWords splits an identifier into its words, understanding camelCase
// boundaries as well as underscore, hyphen, and space separators
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(strings.ToLower(w)))
	}
	return b.String()
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(strings.ToLower(w)))
	}
	return b.String()
}

// capitalize upper-cases the first rune of the word
func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
