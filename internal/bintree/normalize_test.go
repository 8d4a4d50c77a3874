package bintree

import (
	"testing"
)

func TestNormalizeConcrete(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want Tree
	}{
		{"zero", Zero(), Zero()},
		{"spurious_zero_digit", Even(Zero()), Zero()},
		{"spurious_zero_run", Even(Even(Zero())), Zero()},
		{"trailing_zero_after_odd", Odd(Even(Zero())), Odd(Zero())},
		{"already_canonical", Odd(Even(Odd(Zero()))), Odd(Even(Odd(Zero())))},
		{"interior_zero_kept", Even(Odd(Zero())), Even(Odd(Zero()))},
		{"deep_trailing_run", Odd(Even(Even(Even(Zero())))), Odd(Zero())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.tree); !Equal(got, tt.want) {
				t.Errorf("Normalize(%s) = %s, want %s", tt.tree, got, tt.want)
			}
		})
	}
}

func TestNormalizePreservesValue(t *testing.T) {
	for _, tree := range EnumerateTrees(5) {
		if got, want := ToNatural(Normalize(tree)), ToNatural(tree); got != want {
			t.Errorf("ToNatural(Normalize(%s)) = %d, want %d", tree, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, tree := range EnumerateTrees(5) {
		once := Normalize(tree)
		twice := Normalize(once)
		if !Equal(once, twice) {
			t.Errorf("Normalize(Normalize(%s)) = %s, want %s", tree, twice, once)
		}
	}
}

func TestCanonicalFormTheorem(t *testing.T) {
	// toBinary(toNatural(b)) == normalize(b): converting through the
	// natural domain reaches exactly the canonical form.
	for _, tree := range EnumerateTrees(5) {
		roundTripped := FromNatural(ToNatural(tree))
		normalized := Normalize(tree)
		if !Equal(roundTripped, normalized) {
			t.Errorf("FromNatural(ToNatural(%s)) = %s, want %s",
				tree, roundTripped, normalized)
		}
	}
}

func TestNaiveInverseFailsOnNonCanonicalTrees(t *testing.T) {
	// The raw inverse law toBinary(toNatural(b)) == b is intentionally
	// false: it fails exactly when b is non-canonical.
	for _, tree := range EnumerateTrees(5) {
		roundTripped := FromNatural(ToNatural(tree))
		if IsCanonical(tree) {
			if !Equal(roundTripped, tree) {
				t.Errorf("round trip changed canonical tree %s to %s", tree, roundTripped)
			}
		} else {
			if Equal(roundTripped, tree) {
				t.Errorf("round trip preserved non-canonical tree %s", tree)
			}
		}
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want bool
	}{
		{"zero", Zero(), true},
		{"one", Odd(Zero()), true},
		{"five", Odd(Even(Odd(Zero()))), true},
		{"spurious_zero_digit", Even(Zero()), false},
		{"trailing_zero_after_odd", Odd(Even(Zero())), false},
		{"interior_zero_digit", Even(Odd(Zero())), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanonical(tt.tree); got != tt.want {
				t.Errorf("IsCanonical(%s) = %v, want %v", tt.tree, got, tt.want)
			}
		})
	}
}
