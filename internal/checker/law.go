package checker

import (
	"fmt"

	"github.com/lowbit-labs/lebin/internal/bintree"
)

// Domain identifies the input domain a law ranges over.
type Domain int

const (
	_ Domain = iota
	// NaturalDomain laws are checked for every natural in the
	// configured range.
	NaturalDomain
	// TreeDomain laws are checked for every generated tree.
	TreeDomain
	// FixedDomain laws are single concrete scenarios.
	FixedDomain
)

// Law is a named correctness property. Exactly one of the check
// functions is set, matching Domain. A nil error means the law held
// for that input.
type Law struct {
	Name   string
	Domain Domain

	Natural func(n uint64) error
	Tree    func(t bintree.Tree) error
	Fixed   func() error
}

// BuiltinLaws returns the correctness laws tying the converters, the
// increment transition, and the normalizer together.
func BuiltinLaws() []Law {
	return []Law{
		{
			Name:    "roundtrip/natural",
			Domain:  NaturalDomain,
			Natural: checkNaturalRoundTrip,
		},
		{
			Name:    "encode/agrees-with-from-natural",
			Domain:  NaturalDomain,
			Natural: checkEncodeAgreement,
		},
		{
			Name:   "increment/successor",
			Domain: TreeDomain,
			Tree:   checkIncrementSuccessor,
		},
		{
			Name:   "double/scaling",
			Domain: TreeDomain,
			Tree:   checkDoubleScaling,
		},
		{
			Name:   "normalize/value-preserving",
			Domain: TreeDomain,
			Tree:   checkNormalizePreservesValue,
		},
		{
			Name:   "normalize/idempotent",
			Domain: TreeDomain,
			Tree:   checkNormalizeIdempotent,
		},
		{
			Name:   "normalize/canonical-form",
			Domain: TreeDomain,
			Tree:   checkCanonicalForm,
		},
		{
			Name:   "scenario/concrete-cases",
			Domain: FixedDomain,
			Fixed:  checkConcreteScenarios,
		},
	}
}

func checkNaturalRoundTrip(n uint64) error {
	tree := bintree.FromNatural(n)
	if !bintree.IsCanonical(tree) {
		return fmt.Errorf("FromNatural(%d) = %s is not canonical", n, tree)
	}
	if got := bintree.ToNatural(tree); got != n {
		return fmt.Errorf("ToNatural(FromNatural(%d)) = %d", n, got)
	}
	return nil
}

func checkEncodeAgreement(n uint64) error {
	fast := bintree.Encode(n)
	slow := bintree.FromNatural(n)
	if !bintree.Equal(fast, slow) {
		return fmt.Errorf("Encode(%d) = %s, FromNatural(%d) = %s", n, fast, n, slow)
	}
	return nil
}

func checkIncrementSuccessor(t bintree.Tree) error {
	got := bintree.ToNatural(bintree.Increment(t))
	want := 1 + bintree.ToNatural(t)
	if got != want {
		return fmt.Errorf("ToNatural(Increment) = %d, want %d", got, want)
	}
	return nil
}

func checkDoubleScaling(t bintree.Tree) error {
	got := bintree.ToNatural(bintree.Double(t))
	want := 2 * bintree.ToNatural(t)
	if got != want {
		return fmt.Errorf("ToNatural(Double) = %d, want %d", got, want)
	}
	return nil
}

func checkNormalizePreservesValue(t bintree.Tree) error {
	got := bintree.ToNatural(bintree.Normalize(t))
	want := bintree.ToNatural(t)
	if got != want {
		return fmt.Errorf("ToNatural(Normalize) = %d, want %d", got, want)
	}
	return nil
}

func checkNormalizeIdempotent(t bintree.Tree) error {
	once := bintree.Normalize(t)
	twice := bintree.Normalize(once)
	if !bintree.Equal(once, twice) {
		return fmt.Errorf("Normalize applied twice gives %s, once gives %s", twice, once)
	}
	return nil
}

func checkCanonicalForm(t bintree.Tree) error {
	roundTripped := bintree.FromNatural(bintree.ToNatural(t))
	normalized := bintree.Normalize(t)
	if !bintree.Equal(roundTripped, normalized) {
		return fmt.Errorf("FromNatural(ToNatural) = %s, Normalize = %s", roundTripped, normalized)
	}
	return nil
}

func checkConcreteScenarios() error {
	z := bintree.Zero()
	five := bintree.Odd(bintree.Even(bintree.Odd(z)))

	cases := []struct {
		got, want bintree.Tree
		label     string
	}{
		{bintree.Normalize(bintree.Even(z)), z, "Normalize(Even(Zero))"},
		{bintree.Normalize(bintree.Odd(bintree.Even(z))), bintree.Odd(z), "Normalize(Odd(Even(Zero)))"},
		{bintree.FromNatural(5), five, "FromNatural(5)"},
		{bintree.FromNatural(0), z, "FromNatural(0)"},
		{bintree.Double(z), z, "Double(Zero)"},
	}
	for _, c := range cases {
		if !bintree.Equal(c.got, c.want) {
			return fmt.Errorf("%s = %s, want %s", c.label, c.got, c.want)
		}
	}

	if got := bintree.ToNatural(five); got != 5 {
		return fmt.Errorf("ToNatural(Odd(Even(Odd(Zero)))) = %d, want 5", got)
	}
	if got := bintree.ToNatural(z); got != 0 {
		return fmt.Errorf("ToNatural(Zero) = %d, want 0", got)
	}
	return nil
}
