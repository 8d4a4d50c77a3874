package bintree

// Increment returns the tree denoting one more than t.
//
// The carry ripples through the low-order 1 bits: incrementing an odd
// tree flips its low bit to 0 and recurses into the tail, so the cost
// is bounded by the length of the low-order run of 1 digits.
func Increment(t Tree) Tree {
	switch n := t.(type) {
	case EvenNode:
		return OddNode{Tail: n.Tail}
	case OddNode:
		return EvenNode{Tail: Increment(n.Tail)}
	default:
		// Zero
		return OddNode{Tail: ZeroNode{}}
	}
}

// Double returns the tree denoting twice t.
//
// Doubling Zero yields Zero rather than Even(Zero), so doubling a
// canonical tree never introduces a spurious high zero digit. Normalize
// relies on this to rebuild Even nodes without ever looking ahead.
func Double(t Tree) Tree {
	if _, ok := t.(ZeroNode); ok {
		return ZeroNode{}
	}
	return EvenNode{Tail: t}
}

// ToNatural interprets t as a natural number.
//
// The result is well defined only for trees denoting values that fit in
// a uint64; deeper trees silently wrap.
func ToNatural(t Tree) uint64 {
	switch n := t.(type) {
	case EvenNode:
		return 2 * ToNatural(n.Tail)
	case OddNode:
		return 1 + 2*ToNatural(n.Tail)
	default:
		return 0
	}
}

// FromNatural builds the tree denoting n by repeated increment from the
// zero tree. The result is always canonical, so
// ToNatural(FromNatural(n)) == n with no normalization step.
//
// Cost is n increment applications. Use Encode for large inputs.
func FromNatural(n uint64) Tree {
	t := Tree(ZeroNode{})
	for i := uint64(0); i < n; i++ {
		t = Increment(t)
	}
	return t
}

// Encode builds the canonical tree denoting n directly from its bits,
// least significant first. It agrees with FromNatural on every input
// and runs in O(log n).
func Encode(n uint64) Tree {
	if n == 0 {
		return ZeroNode{}
	}
	if n%2 == 1 {
		return OddNode{Tail: Encode(n / 2)}
	}
	// The tail is nonzero here, so the Even node is never spurious.
	return EvenNode{Tail: Encode(n / 2)}
}
