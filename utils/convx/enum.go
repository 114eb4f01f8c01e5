// File: enum.go
// Title: Enum Conversion Utilities
// Description: Implements string-to-enum conversion through an explicit
//              registration table, since Go carries no runtime enum
//              metadata. Lookups are case-insensitive.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation with enum registry

package convx

import (
	"strings"

	"github.com/msto63/gox/core/errx"
)

// Enum maps the string names of an enumerated type to its values.
// Build one per enum type and keep it package-level:
//
//	var colorEnum = convx.NewEnum(map[string]Color{
//	    "red":   ColorRed,
//	    "green": ColorGreen,
//	})
type Enum[E comparable] struct {
	values map[string]E
	names  map[E]string
}

// NewEnum builds an enum table from name-to-value pairs. Names are matched
// case-insensitively on lookup.
func NewEnum[E comparable](values map[string]E) *Enum[E] {
	e := &Enum[E]{
		values: make(map[string]E, len(values)),
		names:  make(map[E]string, len(values)),
	}
	for name, value := range values {
		e.values[strings.ToLower(name)] = value
		e.names[value] = name
	}
	return e
}

// FromString converts a name to its enum value
func (e *Enum[E]) FromString(name string) (E, error) {
	var zero E
	value, ok := e.values[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return zero, errx.Newf("unknown enum name %q", name).
			WithCode(errx.CodeUnknownEnum).
			WithDetail("name", name)
	}
	return value, nil
}

// FromStringOr converts a name to its enum value, returning def on failure
func (e *Enum[E]) FromStringOr(name string, def E) E {
	if value, err := e.FromString(name); err == nil {
		return value
	}
	return def
}

// Name returns the registered name for an enum value, or "" if unknown
func (e *Enum[E]) Name(value E) string {
	return e.names[value]
}

// Names returns all registered names in unspecified order
func (e *Enum[E]) Names() []string {
	names := make([]string, 0, len(e.names))
	for _, name := range e.names {
		names = append(names, name)
	}
	return names
}
