// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Test suite for the slicex utility functions including unit
//              tests and edge cases for nil and empty inputs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial test implementation

package slicex

import (
	"strconv"
	"testing"
)

// ===============================
// Transformation Tests
// ===============================

func TestFilter(t *testing.T) {
	t.Run("filter even numbers", func(t *testing.T) {
		result := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
		expected := []int{2, 4, 6}

		if !Equal(result, expected) {
			t.Errorf("Filter() = %v, want %v", result, expected)
		}
	})

	t.Run("filter nil slice", func(t *testing.T) {
		if result := Filter(nil, func(x int) bool { return x > 0 }); result != nil {
			t.Errorf("Filter() = %v, want nil", result)
		}
	})

	t.Run("filter with nil predicate", func(t *testing.T) {
		if result := Filter([]int{1, 2, 3}, nil); result != nil {
			t.Errorf("Filter() = %v, want nil", result)
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("map int to string", func(t *testing.T) {
		result := Map([]int{1, 2, 3}, func(x int) string { return strconv.Itoa(x) })
		expected := []string{"1", "2", "3"}

		if !Equal(result, expected) {
			t.Errorf("Map() = %v, want %v", result, expected)
		}
	})

	t.Run("map nil slice", func(t *testing.T) {
		if result := Map(nil, func(x int) string { return strconv.Itoa(x) }); result != nil {
			t.Errorf("Map() = %v, want nil", result)
		}
	})
}

func TestReduce(t *testing.T) {
	t.Run("sum via reduce", func(t *testing.T) {
		result := Reduce([]int{1, 2, 3, 4}, 0, func(acc, x int) int { return acc + x })
		if result != 10 {
			t.Errorf("Reduce() = %d, want 10", result)
		}
	})

	t.Run("nil slice returns initial", func(t *testing.T) {
		result := Reduce(nil, 42, func(acc, x int) int { return acc + x })
		if result != 42 {
			t.Errorf("Reduce() = %d, want 42", result)
		}
	})
}

// ===============================
// Deduplication Tests
// ===============================

func TestUnique(t *testing.T) {
	t.Run("removes all duplicates preserving order", func(t *testing.T) {
		result := Unique([]string{"a", "b", "a", "c", "b"})
		expected := []string{"a", "b", "c"}

		if !Equal(result, expected) {
			t.Errorf("Unique() = %v, want %v", result, expected)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		if result := Unique[int](nil); result != nil {
			t.Errorf("Unique() = %v, want nil", result)
		}
	})
}

func TestUniqueBy(t *testing.T) {
	type user struct {
		id   int
		name string
	}

	input := []user{{1, "a"}, {2, "b"}, {1, "c"}}
	result := UniqueBy(input, func(u user) int { return u.id })

	if len(result) != 2 {
		t.Fatalf("UniqueBy() len = %d, want 2", len(result))
	}
	if result[0].name != "a" || result[1].name != "b" {
		t.Errorf("UniqueBy() = %v, first occurrence should win", result)
	}
}

func TestDedupe(t *testing.T) {
	t.Run("collapses only consecutive runs", func(t *testing.T) {
		result := Dedupe([]string{"a", "a", "b", "b", "a"})
		expected := []string{"a", "b", "a"}

		if !Equal(result, expected) {
			t.Errorf("Dedupe() = %v, want %v", result, expected)
		}
	})

	t.Run("empty slice", func(t *testing.T) {
		result := Dedupe([]int{})
		if result == nil || len(result) != 0 {
			t.Errorf("Dedupe() = %v, want empty non-nil slice", result)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		if result := Dedupe[int](nil); result != nil {
			t.Errorf("Dedupe() = %v, want nil", result)
		}
	})
}

func TestDedupeBy(t *testing.T) {
	input := []string{"apple", "avocado", "banana", "blueberry", "apricot"}
	result := DedupeBy(input, func(s string) byte { return s[0] })
	expected := []string{"apple", "banana", "apricot"}

	if !Equal(result, expected) {
		t.Errorf("DedupeBy() = %v, want %v", result, expected)
	}
}

// ===============================
// Chunking and Shuffling Tests
// ===============================

func TestChunk(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		result := Chunk([]int{1, 2, 3, 4}, 2)
		if len(result) != 2 || !Equal(result[0], []int{1, 2}) || !Equal(result[1], []int{3, 4}) {
			t.Errorf("Chunk() = %v", result)
		}
	})

	t.Run("remainder chunk is shorter", func(t *testing.T) {
		result := Chunk([]int{1, 2, 3, 4, 5}, 2)
		if len(result) != 3 || !Equal(result[2], []int{5}) {
			t.Errorf("Chunk() = %v", result)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		if result := Chunk([]int{1, 2}, 0); result != nil {
			t.Errorf("Chunk() = %v, want nil", result)
		}
	})
}

func TestFlatten(t *testing.T) {
	result := Flatten([][]int{{1, 2}, {3}, {}, {4, 5}})
	expected := []int{1, 2, 3, 4, 5}

	if !Equal(result, expected) {
		t.Errorf("Flatten() = %v, want %v", result, expected)
	}
}

func TestShuffle(t *testing.T) {
	t.Run("preserves elements and length", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5, 6, 7, 8}
		result := Shuffle(input)

		if len(result) != len(input) {
			t.Fatalf("Shuffle() len = %d, want %d", len(result), len(input))
		}
		for _, v := range input {
			if !Contains(result, v) {
				t.Errorf("Shuffle() lost element %d", v)
			}
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		snapshot := Clone(input)
		_ = Shuffle(input)

		if !Equal(input, snapshot) {
			t.Errorf("Shuffle() mutated input: %v", input)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		if result := Shuffle[int](nil); result != nil {
			t.Errorf("Shuffle() = %v, want nil", result)
		}
	})
}

func TestSample(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	t.Run("sample size within bounds", func(t *testing.T) {
		result := Sample(input, 3)
		if len(result) != 3 {
			t.Fatalf("Sample() len = %d, want 3", len(result))
		}
		seen := make(map[int]bool)
		for _, v := range result {
			if !Contains(input, v) {
				t.Errorf("Sample() produced element %d not in input", v)
			}
			if seen[v] {
				t.Errorf("Sample() drew element %d twice", v)
			}
			seen[v] = true
		}
	})

	t.Run("oversized sample returns everything", func(t *testing.T) {
		result := Sample(input, 10)
		if len(result) != len(input) {
			t.Errorf("Sample() len = %d, want %d", len(result), len(input))
		}
	})
}

// ===============================
// Search Tests
// ===============================

func TestContainsAndIndexOf(t *testing.T) {
	input := []string{"x", "y", "z"}

	if !Contains(input, "y") {
		t.Error("Contains() should find existing element")
	}
	if Contains(input, "w") {
		t.Error("Contains() should not find missing element")
	}
	if IndexOf(input, "z") != 2 {
		t.Errorf("IndexOf() = %d, want 2", IndexOf(input, "z"))
	}
	if IndexOf(input, "w") != -1 {
		t.Errorf("IndexOf() = %d, want -1", IndexOf(input, "w"))
	}
}

func TestFind(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		v, ok := Find([]int{1, 3, 4, 5}, func(x int) bool { return x%2 == 0 })
		if !ok || v != 4 {
			t.Errorf("Find() = (%d, %v), want (4, true)", v, ok)
		}
	})

	t.Run("not found", func(t *testing.T) {
		v, ok := Find([]int{1, 3, 5}, func(x int) bool { return x%2 == 0 })
		if ok || v != 0 {
			t.Errorf("Find() = (%d, %v), want (0, false)", v, ok)
		}
	})
}

func TestEverySome(t *testing.T) {
	positive := func(x int) bool { return x > 0 }

	if !Every([]int{1, 2, 3}, positive) {
		t.Error("Every() should be true")
	}
	if Every([]int{1, -2, 3}, positive) {
		t.Error("Every() should be false")
	}
	if !Some([]int{-1, 2, -3}, positive) {
		t.Error("Some() should be true")
	}
	if Some([]int{-1, -2}, positive) {
		t.Error("Some() should be false")
	}
}

// ===============================
// Utility Tests
// ===============================

func TestReverse(t *testing.T) {
	result := Reverse([]int{1, 2, 3})
	if !Equal(result, []int{3, 2, 1}) {
		t.Errorf("Reverse() = %v", result)
	}
}

func TestClone(t *testing.T) {
	input := []int{1, 2, 3}
	result := Clone(input)

	result[0] = 99
	if input[0] != 1 {
		t.Error("Clone() must not share backing array with input")
	}
}

func TestTakeDrop(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	if !Equal(Take(input, 2), []int{1, 2}) {
		t.Errorf("Take() = %v", Take(input, 2))
	}
	if !Equal(Take(input, 10), input) {
		t.Errorf("Take() oversized = %v", Take(input, 10))
	}
	if !Equal(Drop(input, 2), []int{3, 4, 5}) {
		t.Errorf("Drop() = %v", Drop(input, 2))
	}
	if Drop(input, 10) != nil {
		t.Errorf("Drop() past end = %v, want nil", Drop(input, 10))
	}
}

func TestGroupBy(t *testing.T) {
	result := GroupBy([]int{1, 2, 3, 4, 5}, func(x int) string {
		if x%2 == 0 {
			return "even"
		}
		return "odd"
	})

	if !Equal(result["even"], []int{2, 4}) || !Equal(result["odd"], []int{1, 3, 5}) {
		t.Errorf("GroupBy() = %v", result)
	}
}

func TestPartition(t *testing.T) {
	matched, rest := Partition([]int{1, 2, 3, 4}, func(x int) bool { return x > 2 })

	if !Equal(matched, []int{3, 4}) || !Equal(rest, []int{1, 2}) {
		t.Errorf("Partition() = %v, %v", matched, rest)
	}
}

func TestJoin(t *testing.T) {
	t.Run("joins mixed formatting", func(t *testing.T) {
		if got := Join([]int{1, 2, 3}, ", "); got != "1, 2, 3" {
			t.Errorf("Join() = %q", got)
		}
	})

	t.Run("single element", func(t *testing.T) {
		if got := Join([]string{"solo"}, ","); got != "solo" {
			t.Errorf("Join() = %q", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := Join([]int{}, ","); got != "" {
			t.Errorf("Join() = %q", got)
		}
	})
}
