package bintree

import (
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want string
	}{
		{"zero", Zero(), "Zero"},
		{"one", Odd(Zero()), "Odd(Zero)"},
		{"five", Odd(Even(Odd(Zero()))), "Odd(Even(Odd(Zero)))"},
		{"non_canonical_zero", Even(Zero()), "Even(Zero)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tree.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Tree
		want bool
	}{
		{"zero_zero", Zero(), Zero(), true},
		{"same_shape", Odd(Even(Odd(Zero()))), Odd(Even(Odd(Zero()))), true},
		{"different_digit", Odd(Zero()), Even(Zero()), false},
		{"different_length", Odd(Zero()), Odd(Even(Zero())), false},
		// Same value, different shape: structural equality must see
		// through neither.
		{"same_value_different_shape", Zero(), Even(Zero()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want int
	}{
		{"zero", Zero(), 0},
		{"one_digit", Odd(Zero()), 1},
		{"three_digits", Odd(Even(Odd(Zero()))), 3},
		{"trailing_zero_digit_counts", Odd(Even(Zero())), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.tree); got != tt.want {
				t.Errorf("Size(%s) = %d, want %d", tt.tree, got, tt.want)
			}
		})
	}
}
