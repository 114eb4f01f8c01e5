// File: error_test.go
// Title: Core Error Tests
// Description: Test suite for the structured Error type including creation,
//              wrapping, code propagation, and standard-library interop.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package errx

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates error with message", func(t *testing.T) {
		err := New("something failed")
		if err.Error() != "something failed" {
			t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
		}
		if err.Code() != CodeUnknown {
			t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
		}
	})

	t.Run("formatted message", func(t *testing.T) {
		err := Newf("failed after %d attempts", 3)
		if err.Error() != "failed after 3 attempts" {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("wrap nil returns nil", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrap standard error", func(t *testing.T) {
		cause := errors.New("root cause")
		err := Wrap(cause, "operation failed")

		if err.Error() != "operation failed: root cause" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause")
		}
	})

	t.Run("wrap preserves code and details", func(t *testing.T) {
		inner := New("bad value").
			WithCode(CodeConversion).
			WithDetail("value", "abc")
		err := Wrap(inner, "conversion step")

		if err.Code() != CodeConversion {
			t.Errorf("Code() = %v, want %v", err.Code(), CodeConversion)
		}
		if err.Details()["value"] != "abc" {
			t.Error("details should be copied from the inner error")
		}
	})

	t.Run("wrapf formats message", func(t *testing.T) {
		err := Wrapf(errors.New("boom"), "attempt %d", 2)
		if err.Error() != "attempt 2: boom" {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestBuilders(t *testing.T) {
	err := New("clone failed").
		WithCode(CodeUnsupportedType).
		WithOperation("objectx.Clone").
		WithDetail("kind", "chan")

	if err.Code() != CodeUnsupportedType {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Operation() != "objectx.Clone" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if err.Details()["kind"] != "chan" {
		t.Errorf("Details() = %v", err.Details())
	}
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("x").WithDetail("a", 1)
	details := err.Details()
	details["a"] = 2

	if err.Details()["a"] != 1 {
		t.Error("mutating the returned details must not affect the error")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("disk full")
	err := Wrap(Wrap(root, "write failed"), "export failed")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}

func TestString(t *testing.T) {
	err := New("failed").WithCode(CodeTableParse).WithOperation("tablex.FromCSV")
	s := err.String()

	for _, want := range []string{"Error: failed", "Code: TABLE_PARSE", "Operation: tablex.FromCSV"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestHasCode(t *testing.T) {
	t.Run("direct match", func(t *testing.T) {
		err := New("x").WithCode(CodeRecursionLimit)
		if !HasCode(err, CodeRecursionLimit) {
			t.Error("HasCode should match")
		}
		if HasCode(err, CodeConversion) {
			t.Error("HasCode should not match a different code")
		}
	})

	t.Run("match through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New("x").WithCode(CodeSerialization))
		if !HasCode(err, CodeSerialization) {
			t.Error("HasCode should unwrap through %w chains")
		}
	})

	t.Run("standard error", func(t *testing.T) {
		if HasCode(errors.New("plain"), CodeUnknown) {
			t.Error("plain errors carry no code")
		}
		if GetCode(errors.New("plain")) != CodeUnknown {
			t.Error("GetCode on plain errors should be CodeUnknown")
		}
	})
}
