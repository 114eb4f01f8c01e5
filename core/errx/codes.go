// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the gox utility packages. The codes
//              enable structured error handling and let callers branch on
//              failure categories instead of message strings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with gox error codes

package errx

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across the gox packages
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Object graph cloning
	CodeUnsupportedType Code = "UNSUPPORTED_TYPE"
	CodeRecursionLimit  Code = "RECURSION_LIMIT"

	// Value conversion
	CodeConversion    Code = "CONVERSION"
	CodeUnknownEnum   Code = "UNKNOWN_ENUM"
	CodeInvalidRadix  Code = "INVALID_RADIX"

	// Serialization codecs
	CodeSerialization Code = "SERIALIZATION"

	// Tabular data
	CodeTableSchema Code = "TABLE_SCHEMA"
	CodeTableParse  Code = "TABLE_PARSE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeUnsupportedType, CodeRecursionLimit,
		CodeConversion, CodeUnknownEnum, CodeInvalidRadix,
		CodeSerialization,
		CodeTableSchema, CodeTableParse:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnsupportedType, CodeRecursionLimit:
		return "clone"
	case CodeConversion, CodeUnknownEnum, CodeInvalidRadix:
		return "conversion"
	case CodeSerialization:
		return "serialization"
	case CodeTableSchema, CodeTableParse:
		return "table"
	default:
		return "generic"
	}
}
