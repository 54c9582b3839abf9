package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// A node in the OSTree.
// The zero value is meaningless. Absent children point to the nilPtr of the
// owning tree, a sentinel whose h and sz are both 0 and whose children are
// itself, so h and sz can be read from any child without checking.
type node[T cmp.Ordered, S constraints.Unsigned] struct {
	v    T
	l, r *node[T, S]
	h    uint8
	sz   S
}

// refresh recomputes h and sz of n from its direct children only.
// n mustn't be the sentinel.
// Time: O(1); Space: O(1)
func refresh[T cmp.Ordered, S constraints.Unsigned](n *node[T, S]) {
	n.h = 1 + max(n.l.h, n.r.h)
	n.sz = 1 + n.l.sz + n.r.sz
}

// balanceFactor is h(l)-h(r).
func balanceFactor[T cmp.Ordered, S constraints.Unsigned](n *node[T, S]) int {
	return int(n.l.h) - int(n.r.h)
}

// rotateLeft promotes the right child of *n to *n. n is passed by reference in
// order to modify its content. The demoted node is refreshed before the promoted one.
// Time: O(1); Space: O(1)
func rotateLeft[T cmp.Ordered, S constraints.Unsigned](n **node[T, S]) {
	x := *n
	y := x.r
	x.r = y.l
	y.l = x
	refresh(x)
	refresh(y)
	*n = y
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T cmp.Ordered, S constraints.Unsigned](n **node[T, S]) {
	y := *n
	x := y.l
	y.l = x.r
	x.r = y
	refresh(y)
	refresh(x)
	*n = x
}

// findMin returns the leftmost node of the subtree rooting at n. n mustn't be
// the sentinel.
// Time: O(D); Space: O(1)
func findMin[T cmp.Ordered, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	for n.l.sz != 0 {
		n = n.l
	}
	return n
}
