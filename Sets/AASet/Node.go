package AASet

import "golang.org/x/exp/constraints"

// A node in the AA tree.
// The zero value is meaningless; nodes are only created by insert.
// l and r are the owning links; p is a non-owning back reference to the
// structural parent (nil at the root) used purely for stepping between
// neighbors. Every rotation restores p together with the owning links.
type node[T constraints.Ordered] struct {
	v     T
	l, r  *node[T]
	p     *node[T]
	level uint32
}

// skew removes a horizontal left link under n with a right rotation: the
// left child takes n's place and absorbs n as its right child. Returns the
// new subtree root, which inherits n's parent link; the caller still has to
// store it into the parent's child slot.
// Time: O(1); Space: O(1)
func skew[T constraints.Ordered](n *node[T]) *node[T] {
	if n == nil || n.l == nil || n.l.level != n.level {
		return n
	}
	lc := n.l
	n.l = lc.r
	if n.l != nil {
		n.l.p = n
	}
	lc.r = n
	lc.p = n.p
	n.p = lc
	return lc
}

// split removes two consecutive horizontal right links under n with a left
// rotation, promoting the middle node one level. Returns the new subtree
// root, which inherits n's parent link.
// Time: O(1); Space: O(1)
func split[T constraints.Ordered](n *node[T]) *node[T] {
	if n == nil || n.r == nil || n.r.r == nil || n.r.r.level != n.level {
		return n
	}
	rc := n.r
	n.r = rc.l
	if n.r != nil {
		n.r.p = n
	}
	rc.l = n
	rc.p = n.p
	n.p = rc
	rc.level++
	return rc
}

// decreaseLevel lowers n's level after a removal shrank a subtree under it,
// clamping the right child down with it so at most one horizontal right
// link remains for the following skew/split cascade to resolve.
func decreaseLevel[T constraints.Ordered](n *node[T]) *node[T] {
	if n.l != nil && n.r != nil {
		if want := min(n.l.level, n.r.level) + 1; want < n.level {
			n.level = want
			if want < n.r.level {
				n.r.level = want
			}
		}
	}
	return n
}

func isLeaf[T constraints.Ordered](n *node[T]) bool {
	return n.l == nil && n.r == nil
}

// leftmost node of the subtree rooted at n, nil when n is nil.
func leftmost[T constraints.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooted at n, nil when n is nil.
func rightmost[T constraints.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.r != nil {
		n = n.r
	}
	return n
}

// successor within n's own subtree: the leftmost node of the right child.
// n.r must exist.
func successor[T constraints.Ordered](n *node[T]) *node[T] {
	n = n.r
	for n.l != nil {
		n = n.l
	}
	return n
}

// predecessor within n's own subtree: the rightmost node of the left child.
// n.l must exist.
func predecessor[T constraints.Ordered](n *node[T]) *node[T] {
	n = n.l
	for n.r != nil {
		n = n.r
	}
	return n
}

// next returns the in-order successor of n, nil when n holds the maximum.
// Without a right subtree the successor is the nearest ancestor reached
// from its left side, found by climbing p while the parent holds a smaller
// value.
// Time: O(log n) worst case, amortized O(1) over a full walk; Space: O(1)
func next[T constraints.Ordered](n *node[T]) *node[T] {
	if n.r != nil {
		return successor(n)
	}
	for n.p != nil && n.p.v < n.v {
		n = n.p
	}
	return n.p
}

// prev mirrors next: the in-order predecessor of n, nil when n holds the
// minimum.
func prev[T constraints.Ordered](n *node[T]) *node[T] {
	if n.l != nil {
		return predecessor(n)
	}
	for n.p != nil && n.v < n.p.v {
		n = n.p
	}
	return n.p
}
