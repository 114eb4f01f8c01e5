// File: enum_test.go
// Title: Enum Conversion Tests
// Description: Test suite for the enum registration table including
//              case-insensitive lookup and fallback behavior.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial test implementation

package convx

import (
	"sort"
	"testing"

	"github.com/msto63/gox/core/errx"
)

type color int

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

var colors = NewEnum(map[string]color{
	"red":   colorRed,
	"green": colorGreen,
	"blue":  colorBlue,
})

func TestEnumFromString(t *testing.T) {
	t.Run("exact name", func(t *testing.T) {
		c, err := colors.FromString("green")
		if err != nil || c != colorGreen {
			t.Errorf("FromString() = (%v, %v)", c, err)
		}
	})

	t.Run("case insensitive with whitespace", func(t *testing.T) {
		c, err := colors.FromString("  BLUE ")
		if err != nil || c != colorBlue {
			t.Errorf("FromString() = (%v, %v)", c, err)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := colors.FromString("mauve")
		if !errx.HasCode(err, errx.CodeUnknownEnum) {
			t.Errorf("expected CodeUnknownEnum, got %v", errx.GetCode(err))
		}
	})
}

func TestEnumFromStringOr(t *testing.T) {
	if c := colors.FromStringOr("red", colorBlue); c != colorRed {
		t.Errorf("FromStringOr() = %v, want red", c)
	}
	if c := colors.FromStringOr("mauve", colorBlue); c != colorBlue {
		t.Errorf("FromStringOr() = %v, want fallback blue", c)
	}
}

func TestEnumName(t *testing.T) {
	if name := colors.Name(colorGreen); name != "green" {
		t.Errorf("Name() = %q, want green", name)
	}
	if name := colors.Name(color(99)); name != "" {
		t.Errorf("Name() = %q, want empty for unknown value", name)
	}
}

func TestEnumNames(t *testing.T) {
	names := colors.Names()
	sort.Strings(names)

	want := []string{"blue", "green", "red"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], n)
		}
	}
}
