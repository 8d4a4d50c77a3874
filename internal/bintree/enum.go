package bintree

// EnumerateTrees returns every tree with at most maxDigits digit nodes,
// canonical and non-canonical alike. The zero tree comes first and the
// result is ordered shortest-first.
//
// The count grows as 2^(maxDigits+1)-1; callers exercising laws over
// the full shape space should keep maxDigits small.
func EnumerateTrees(maxDigits int) []Tree {
	trees := []Tree{ZeroNode{}}
	prev := []Tree{ZeroNode{}}
	for d := 0; d < maxDigits; d++ {
		next := make([]Tree, 0, 2*len(prev))
		for _, tail := range prev {
			next = append(next, EvenNode{Tail: tail}, OddNode{Tail: tail})
		}
		trees = append(trees, next...)
		prev = next
	}
	return trees
}
