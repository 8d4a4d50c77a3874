// Package notation converts trees to and from least-significant-first
// digit strings, the textual form used by the CLI. The core tree
// operations stay parse-free; only this package deals in text.
package notation

import (
	"fmt"
	"strings"

	"github.com/lowbit-labs/lebin/internal/bintree"
)

// ParseBits parses a least-significant-first digit string into a tree:
// "101" is Odd(Even(Odd(Zero))), the empty string is Zero.
//
// Trailing '0' digits are legal and yield non-canonical trees; that is
// how non-canonical normalizer inputs are written down.
func ParseBits(s string) (bintree.Tree, error) {
	tree := bintree.Zero()
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '0':
			tree = bintree.Even(tree)
		case '1':
			tree = bintree.Odd(tree)
		default:
			return nil, fmt.Errorf("invalid digit %q at position %d", s[i], i)
		}
	}
	return tree, nil
}

// RenderBits is the inverse of ParseBits: it renders t as a
// least-significant-first digit string. The zero tree renders as the
// empty string.
func RenderBits(t bintree.Tree) string {
	var sb strings.Builder
	for {
		switch n := t.(type) {
		case bintree.EvenNode:
			sb.WriteByte('0')
			t = n.Tail
		case bintree.OddNode:
			sb.WriteByte('1')
			t = n.Tail
		default:
			return sb.String()
		}
	}
}
