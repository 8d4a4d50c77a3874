// Package lebin is a little-endian binary counter toolkit: a
// non-canonical binary digit tree representation of natural numbers,
// an increment transition, conversions to and from the natural domain,
// and a canonicalizing normalizer, together with a checker for the
// correctness laws connecting them.
//
// The package re-exports the core tree operations from
// internal/bintree for library callers; the lebin CLI adds a textual
// surface on top.
package lebin

import (
	"github.com/lowbit-labs/lebin/internal/bintree"
)

// Tree is a little-endian binary digit tree denoting a natural number.
type Tree = bintree.Tree

// Zero returns the terminal tree, denoting 0.
func Zero() Tree { return bintree.Zero() }

// Even prepends a low-order 0 bit to tail.
func Even(tail Tree) Tree { return bintree.Even(tail) }

// Odd prepends a low-order 1 bit to tail.
func Odd(tail Tree) Tree { return bintree.Odd(tail) }

// Increment returns the tree denoting one more than t.
func Increment(t Tree) Tree { return bintree.Increment(t) }

// Double returns the tree denoting twice t, preserving canonical form.
func Double(t Tree) Tree { return bintree.Double(t) }

// ToNatural interprets t as a natural number.
func ToNatural(t Tree) uint64 { return bintree.ToNatural(t) }

// FromNatural builds the canonical tree denoting n by repeated
// increment from the zero tree.
func FromNatural(n uint64) Tree { return bintree.FromNatural(n) }

// Encode builds the canonical tree denoting n directly from its bits
// in O(log n).
func Encode(n uint64) Tree { return bintree.Encode(n) }

// Normalize returns the unique canonical tree denoting the same value
// as t.
func Normalize(t Tree) Tree { return bintree.Normalize(t) }

// IsCanonical reports whether t is already in canonical form.
func IsCanonical(t Tree) bool { return bintree.IsCanonical(t) }

// Equal reports structural equality of two trees. It is unsound for
// value comparison on raw trees: normalize both sides first, or
// compare through ToNatural.
func Equal(a, b Tree) bool { return bintree.Equal(a, b) }
