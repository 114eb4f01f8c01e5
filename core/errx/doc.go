// File: doc.go
// Title: Package Documentation for errx
// Description: Package errx provides structured, code-classified errors for
//              the gox utility packages with full standard-library
//              compatibility.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package errx provides structured errors for the gox utility packages.
//
// Every error carries a classification Code so that callers can branch on
// failure categories rather than message strings:
//
//	v, err := objectx.Clone(input, objectx.WithMaxDepth(32))
//	if errx.HasCode(err, errx.CodeRecursionLimit) {
//	    // graph too deep or cyclic — distinct from bad data
//	}
//
// Errors are built fluently and wrap like standard errors:
//
//	err := errx.New("cannot clone channel value").
//	    WithCode(errx.CodeUnsupportedType).
//	    WithOperation("objectx.Clone").
//	    WithDetail("kind", "chan")
//
// Wrap preserves the code and details of an inner *Error, and the type
// cooperates with errors.Is, errors.As, and errors.Unwrap throughout.
package errx
