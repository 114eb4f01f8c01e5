// File: humanize_test.go
// Title: Human-Readable Formatting Tests
// Description: Test suite for the human-readable number and byte-size
//              formatting helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial test implementation

package convx

import "testing"

func TestHumanBytes(t *testing.T) {
	if got := HumanBytes(1500000); got != "1.5 MB" {
		t.Errorf("HumanBytes() = %q", got)
	}
	if got := HumanIBytes(1048576); got != "1.0 MiB" {
		t.Errorf("HumanIBytes() = %q", got)
	}
}

func TestComma(t *testing.T) {
	if got := Comma(1234567); got != "1,234,567" {
		t.Errorf("Comma() = %q", got)
	}
}

func TestOrdinal(t *testing.T) {
	if got := Ordinal(3); got != "3rd" {
		t.Errorf("Ordinal() = %q", got)
	}
	if got := Ordinal(11); got != "11th" {
		t.Errorf("Ordinal() = %q", got)
	}
}
