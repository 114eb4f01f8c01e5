// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides leveled, structured logging for the gox
//              utility packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package log provides leveled, structured logging for the gox packages.
//
// The package-level default logger writes text-formatted entries to stderr
// at warn level, which keeps the library silent during normal operation.
// Packages that emit diagnostics (tablex merge reconciliation, objectx depth
// tracing) only become chatty when a caller lowers the threshold:
//
//	log.Default().SetLevel(log.LevelDebug)
//
// Loggers are immutable once shared: Named and WithFields return copies, so
// a logger handed to a helper cannot be reconfigured behind the caller's
// back. Formatters are pluggable; TextFormatter emits diffable single lines
// with sorted fields and JSONFormatter emits one JSON object per line.
package log
