package bintree

import (
	"testing"
)

func BenchmarkIncrement(b *testing.B) {
	sizes := []struct {
		name string
		n    uint64
	}{
		{"Small", 1<<8 - 1},
		{"Medium", 1<<24 - 1},
		{"Large", 1<<48 - 1},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			// All-ones trees are the worst case: the carry ripples
			// through every digit.
			tree := Encode(size.n)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Increment(tree)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	// A long run of trailing zero digits after a single odd digit.
	tree := Tree(OddNode{Tail: ZeroNode{}})
	for i := 0; i < 60; i++ {
		tree = EvenNode{Tail: tree}
	}
	tree = OddNode{Tail: tree}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Normalize(tree)
	}
}

func BenchmarkFromNatural(b *testing.B) {
	b.Run("RepeatedIncrement", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			FromNatural(4096)
		}
	})

	b.Run("Encode", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Encode(4096)
		}
	})
}

func BenchmarkToNatural(b *testing.B) {
	tree := Encode(1<<60 - 1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ToNatural(tree)
	}
}
