// File: doc.go
// Title: Package Documentation for convx
// Description: Package convx provides conversions from strings and
//              arbitrary values to scalar types, enum values, radix
//              representations, and human-readable forms.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial documentation

// Package convx provides value conversion helpers.
//
// Overview
//
// Every conversion comes in two flavors: a strict variant returning
// (value, error), and an Or variant that swallows the failure and returns a
// caller-supplied default. The Or form carries the original library's
// "default value on failure" contract:
//
//	port, err := convx.ToInt(os.Getenv("PORT")) // strict
//	port := convx.ToIntOr(os.Getenv("PORT"), 8080) // fallback
//
// Failed strict conversions return an errx error with CodeConversion so
// callers can distinguish bad data from other failures.
//
// Enums
//
// Go has no runtime enum metadata, so enum conversion goes through an
// explicit registration table:
//
//	type Color int
//	const (
//	    ColorRed Color = iota
//	    ColorGreen
//	)
//	var colors = convx.NewEnum(map[string]Color{
//	    "red": ColorRed, "green": ColorGreen,
//	})
//	c, err := colors.FromString("RED") // case-insensitive
//
// Radix
//
// ToBase, FromBase, and Rebase convert integers between bases 2 and 36,
// failing with CodeInvalidRadix for bases outside that range.
package convx
