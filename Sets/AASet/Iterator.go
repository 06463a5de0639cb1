package AASet

import "golang.org/x/exp/constraints"

// Iterator is a bidirectional cursor over an AASet. It references the
// owning set and the current node; a nil node is the past-the-last end
// sentinel. Cursors only read the node graph, never own or mutate it, and
// one stays usable until the node under it is erased. Puts never invalidate
// a cursor because rotations relink nodes in place; a Remove can, since an
// interior erase migrates a neighboring value into the matched node and
// erases the neighbor's node instead.
//
// A step costs O(log n) worst case and amortized O(1) over a full walk,
// using nothing but the child and parent links.
type Iterator[T constraints.Ordered] struct {
	set *AASet[T]
	n   *node[T]
}

// Valid reports whether the cursor is at an element rather than at End.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Value returns the element under the cursor. Calling Value on the end
// sentinel is a contract violation and panics.
func (it Iterator[T]) Value() T {
	return it.n.v
}

// Eq reports whether both cursors reference the same set and the same
// position. All end sentinels of one set are equal to each other.
func (it Iterator[T]) Eq(o Iterator[T]) bool {
	return it.set == o.set && it.n == o.n
}

// Next advances to the in-order successor; from the largest element it
// lands on End. Advancing from End is a contract violation and panics.
func (it *Iterator[T]) Next() {
	it.n = next(it.n)
}

// Prev retreats to the in-order predecessor. From End it moves to the
// largest element, staying at End when the set is empty; from the smallest
// element the position is undefined (it lands on End, matching Next's
// sentinel).
func (it *Iterator[T]) Prev() {
	if it.n == nil {
		it.n = rightmost(it.set.root)
		return
	}
	it.n = prev(it.n)
}
