// Package checker verifies the correctness laws of the bintree codec
// over a generated input domain.
//
// Each law is a named property over either the natural domain or the
// tree domain. The checker evaluates laws over an exhaustive range of
// naturals, an exhaustive enumeration of small trees, and a seeded
// sample of random trees, and reports any violations with the offending
// input.
//
// The laws are runtime checks, not proofs: they establish the stated
// properties over the configured domain only.
package checker
