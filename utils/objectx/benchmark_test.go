// File: benchmark_test.go
// Title: Object Cloner Benchmarks
// Description: Benchmarks for deep cloning of representative value graphs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial benchmarks

package objectx

import "testing"

func benchGraph() *record {
	head := &record{Name: "head", Tags: []string{"a", "b", "c"}}
	current := head
	for i := 0; i < 10; i++ {
		next := &record{Name: "node", Tags: []string{"x", "y"}}
		current.Self = next
		current = next
	}
	return head
}

func BenchmarkClone(b *testing.B) {
	graph := benchGraph()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Clone(graph); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCloneWithExclusion(b *testing.B) {
	graph := benchGraph()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Clone(graph, WithExclude("Tags")); err != nil {
			b.Fatal(err)
		}
	}
}
