// File: convx.go
// Title: Core Value Conversion Utilities
// Description: Implements conversions from strings and arbitrary values to
//              scalar types (int, int64, float64, bool, string, time,
//              duration). Every conversion has a strict variant returning an
//              error and an Or variant falling back to a caller default.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation with scalar conversions

package convx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/gox/core/errx"
)

// timeLayouts are tried in order when parsing a time from a string
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	time.RFC1123,
}

// conversionError builds the standard error for a failed conversion
func conversionError(value interface{}, target string) *errx.Error {
	return errx.Newf("cannot convert %v to %s", value, target).
		WithCode(errx.CodeConversion).
		WithDetail("value", fmt.Sprintf("%v", value)).
		WithDetail("target", target)
}

// ===============================
// Integer Conversions
// ===============================

// ToInt64 converts a value to int64. Supported inputs are integer and float
// types, bools (1/0), and numeric strings (decimal, or 0x/0o/0b prefixed).
func ToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, conversionError(value, "int64")
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 0, 64); err == nil {
			return n, nil
		}
		// Fall back to float syntax ("42.0") truncating the fraction
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil
		}
		return 0, conversionError(value, "int64")
	default:
		return 0, conversionError(value, "int64")
	}
}

// ToInt64Or converts a value to int64, returning def on failure
func ToInt64Or(value interface{}, def int64) int64 {
	if n, err := ToInt64(value); err == nil {
		return n
	}
	return def
}

// ToInt converts a value to int
func ToInt(value interface{}) (int, error) {
	n, err := ToInt64(value)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ToIntOr converts a value to int, returning def on failure
func ToIntOr(value interface{}, def int) int {
	if n, err := ToInt(value); err == nil {
		return n
	}
	return def
}

// ===============================
// Float Conversions
// ===============================

// ToFloat64 converts a value to float64
func ToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, conversionError(value, "float64")
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, nil
		}
		return 0, conversionError(value, "float64")
	default:
		if n, err := ToInt64(value); err == nil {
			return float64(n), nil
		}
		return 0, conversionError(value, "float64")
	}
}

// ToFloat64Or converts a value to float64, returning def on failure
func ToFloat64Or(value interface{}, def float64) float64 {
	if f, err := ToFloat64(value); err == nil {
		return f
	}
	return def
}

// ===============================
// Bool Conversions
// ===============================

// ToBool converts a value to bool. Strings accept the strconv forms plus
// "yes"/"no" and "on"/"off" (case-insensitive); numbers are false at zero.
func ToBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, conversionError(value, "bool")
	case bool:
		return v, nil
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		return false, conversionError(value, "bool")
	default:
		if n, err := ToInt64(value); err == nil {
			return n != 0, nil
		}
		return false, conversionError(value, "bool")
	}
}

// ToBoolOr converts a value to bool, returning def on failure
func ToBoolOr(value interface{}, def bool) bool {
	if b, err := ToBool(value); err == nil {
		return b
	}
	return def
}

// ===============================
// String Conversion
// ===============================

// ToString converts a value to its canonical string form. A nil value
// becomes the empty string.
func ToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ===============================
// Time Conversions
// ===============================

// ToTime converts a value to time.Time. Strings are tried against a list of
// common layouts; integers are interpreted as Unix seconds.
func ToTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, conversionError(value, "time")
		}
		return *v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, conversionError(value, "time")
	case int, int32, int64, uint, uint32, uint64:
		n, _ := ToInt64(v)
		return time.Unix(n, 0).UTC(), nil
	default:
		return time.Time{}, conversionError(value, "time")
	}
}

// ToTimeOr converts a value to time.Time, returning def on failure
func ToTimeOr(value interface{}, def time.Time) time.Time {
	if t, err := ToTime(value); err == nil {
		return t
	}
	return def
}

// ToDuration converts a value to time.Duration. Strings use time.ParseDuration
// syntax; bare numbers are interpreted as seconds.
func ToDuration(value interface{}) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(f * float64(time.Second)), nil
		}
		return 0, conversionError(value, "duration")
	case float32, float64:
		f, _ := ToFloat64(v)
		return time.Duration(f * float64(time.Second)), nil
	default:
		if n, err := ToInt64(value); err == nil {
			return time.Duration(n) * time.Second, nil
		}
		return 0, conversionError(value, "duration")
	}
}

// ToDurationOr converts a value to time.Duration, returning def on failure
func ToDurationOr(value interface{}, def time.Duration) time.Duration {
	if d, err := ToDuration(value); err == nil {
		return d
	}
	return def
}
