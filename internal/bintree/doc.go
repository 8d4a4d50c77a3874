// Package bintree implements a little-endian binary digit tree
// representation of natural numbers.
//
// A tree is a chain of digit nodes ordered least-significant-first,
// terminated by Zero. The encoding is deliberately non-canonical:
// distinct trees can denote the same number (Even(Zero) and Zero both
// denote 0), so structural equality of raw trees is not value equality.
// Normalize reduces any tree to the unique canonical tree for its value
// in a single bottom-up pass.
//
// All operations are total, pure functions over immutable trees. Trees
// are never mutated; every transformation returns a new tree.
//
// Callers that need deterministic comparison (equality checks, hashing,
// serialization) must either compare through ToNatural or canonicalize
// with Normalize first; comparing raw trees with Equal is unsound for
// that purpose.
package bintree
