package bintree

// Tree represents a natural number as a little-endian chain of binary
// digits. A Tree is one of ZeroNode, EvenNode, or OddNode.
type Tree interface {
	isTree()
	String() string
}

// ZeroNode is the terminal node. It denotes 0.
type ZeroNode struct{}

func (ZeroNode) isTree() {}
func (ZeroNode) String() string {
	return "Zero"
}

// EvenNode prepends a low-order 0 bit to Tail: it denotes 2*Tail.
type EvenNode struct {
	Tail Tree
}

func (EvenNode) isTree() {}
func (n EvenNode) String() string {
	return "Even(" + n.Tail.String() + ")"
}

// OddNode prepends a low-order 1 bit to Tail: it denotes 1 + 2*Tail.
type OddNode struct {
	Tail Tree
}

func (OddNode) isTree() {}
func (n OddNode) String() string {
	return "Odd(" + n.Tail.String() + ")"
}

// Helper functions to construct trees

// Zero returns the terminal tree.
func Zero() Tree {
	return ZeroNode{}
}

// Even prepends a low-order 0 bit to tail.
func Even(tail Tree) Tree {
	return EvenNode{Tail: tail}
}

// Odd prepends a low-order 1 bit to tail.
func Odd(tail Tree) Tree {
	return OddNode{Tail: tail}
}

// Equal reports whether two trees are structurally identical.
//
// Structural equality is not value equality: Equal(Even(Zero()), Zero())
// is false even though both denote 0. Compare through ToNatural, or
// Normalize both sides first, when value equality is intended.
func Equal(a, b Tree) bool {
	switch x := a.(type) {
	case ZeroNode:
		_, ok := b.(ZeroNode)
		return ok
	case EvenNode:
		y, ok := b.(EvenNode)
		return ok && Equal(x.Tail, y.Tail)
	case OddNode:
		y, ok := b.(OddNode)
		return ok && Equal(x.Tail, y.Tail)
	default:
		return false
	}
}

// Size returns the number of digit nodes in t, not counting the
// terminal ZeroNode.
func Size(t Tree) int {
	size := 0
	for {
		switch n := t.(type) {
		case EvenNode:
			size++
			t = n.Tail
		case OddNode:
			size++
			t = n.Tail
		default:
			return size
		}
	}
}
