// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with pluggable formatters, plus a package-level
//              default logger used by the gox utility packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with structured logging

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual fields
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields added to all entries emitted by this logger
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level     Level
	Formatter Formatter
	Output    io.Writer
	Name      string
}

// New creates a new Logger from the given configuration
func New(config Config) *Logger {
	if config.Formatter == nil {
		config.Formatter = NewTextFormatter()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}

	return &Logger{
		level:         config.Level,
		formatter:     config.Formatter,
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}
}

// defaultLogger is the package-level logger; warn level keeps library
// diagnostics quiet unless a caller opts in
var (
	defaultLogger   = New(Config{Level: LevelWarn})
	defaultLoggerMu sync.RWMutex
)

// Default returns the package-level default logger
func Default() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// SetLevel changes the minimum level emitted by the logger
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Level returns the current minimum level
func (l *Logger) Level() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetOutput changes the destination writer
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output = w
}

// Named returns a copy of the logger with the given name
func (l *Logger) Named(name string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          name,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithFields returns a copy of the logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.Named(l.name)
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Enabled reports whether the given level would be emitted
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// log emits a single entry if the level passes the threshold
func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if !l.Enabled(level) {
		return
	}

	l.mutex.RLock()
	formatter := l.formatter
	output := l.output
	name := l.name
	merged := make(Fields, len(l.contextFields)+len(fields))
	for k, v := range l.contextFields {
		merged[k] = v
	}
	l.mutex.RUnlock()

	for k, v := range fields {
		merged[k] = v
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    name,
		Fields:    merged,
		Error:     err,
	}

	formatted, ferr := formatter.Format(entry)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "log: format failure: %v\n", ferr)
		return
	}

	l.mutex.Lock()
	_, _ = output.Write(formatted)
	l.mutex.Unlock()
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, mergeFields(fields), nil)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, mergeFields(fields), nil)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, mergeFields(fields), nil)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, mergeFields(fields), nil)
}

// Error logs a message at error level together with an error value
func (l *Logger) Error(message string, err error, fields ...Fields) {
	l.log(LevelError, message, mergeFields(fields), err)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...), nil, nil)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, args...), nil, nil)
}

// Warnf logs a formatted message at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, args...), nil, nil)
}

// mergeFields flattens the variadic fields arguments into one map
func mergeFields(fields []Fields) Fields {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) == 1 {
		return fields[0]
	}

	merged := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}
