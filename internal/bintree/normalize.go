package bintree

// Normalize returns the canonical tree denoting the same value as t.
//
// The pass is a single bottom-up traversal: each digit is rebuilt
// exactly once and no node inspects its siblings or the overall shape.
// Odd digits are kept as-is; Even digits are rebuilt through Double,
// so an Even node whose normalized tail collapsed to Zero collapses
// too. Canonicity of the result follows from the recursive invariant
// "the normalized tail is canonical, and Double preserves canonicity".
//
// Normalize is value-preserving and idempotent. Note that
// FromNatural(ToNatural(t)) equals Normalize(t), not t: the naive
// round-trip is intentionally false for non-canonical trees.
func Normalize(t Tree) Tree {
	switch n := t.(type) {
	case EvenNode:
		return Double(Normalize(n.Tail))
	case OddNode:
		return OddNode{Tail: Normalize(n.Tail)}
	default:
		return ZeroNode{}
	}
}

// IsCanonical reports whether t is already in canonical form, i.e.
// whether t contains no Even digit whose entire tail denotes 0.
func IsCanonical(t Tree) bool {
	return Equal(Normalize(t), t)
}
