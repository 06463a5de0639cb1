package AASet

import "golang.org/x/exp/constraints"

// AASet is a sorted set with no repeated values backed by an AA tree: a
// binary search tree that keeps balance through an integer level per node
// and only two rotation primitives, skew and split. The height of the tree
// is at most ~2*log2(n+1), so Put, Remove and all lookups are O(log n).
// Nodes additionally carry a parent link, letting cursors (see Iterator)
// step to a neighbor using only structural links, with no stack or
// threading.
// An AASet isn't thread safe: writers need external synchronization, and
// readers may only run concurrently with other readers.
type AASet[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

// New returns an empty AASet.
func New[T constraints.Ordered]() *AASet[T] {
	return &AASet[T]{}
}

// From returns an AASet holding the given values, putting them in slice
// order. Duplicates collapse into one element.
// Time: O(n log n)
func From[T constraints.Ordered](values []T) *AASet[T] {
	u := New[T]()
	for _, v := range values {
		u.Put(v)
	}
	return u
}

// Clone returns a copy of u built by reinserting every element in
// ascending order. The copy shares no nodes with u.
// Time: O(n log n)
func (u *AASet[T]) Clone() *AASet[T] {
	c := New[T]()
	u.Range(func(v T) bool {
		c.Put(v)
		return true
	})
	return c
}

// Size of the set.
// Time: O(1)
func (u *AASet[T]) Size() uint {
	return u.sz
}

// Empty reports whether the set holds no elements.
func (u *AASet[T]) Empty() bool {
	return u.sz == 0
}

// Clear removes all elements. The detached nodes are left to the GC, so
// unlike a removal loop this is O(1).
func (u *AASet[T]) Clear() {
	u.root = nil
	u.sz = 0
}

// Put v into the set. Returns true if v wasn't already present.
// Time: O(log n)
func (u *AASet[T]) Put(v T) bool {
	before := u.sz
	u.root = u.insert(u.root, v)
	u.root.p = nil
	return u.sz != before
}

// insert v into the subtree rooted at cur recursively, returning the new
// subtree root. A nil slot becomes a fresh level-1 leaf; an equal value is
// left untouched. Every node on the way back up refreshes the parent link
// of the child it descended into, then rebalances with skew followed by
// split.
func (u *AASet[T]) insert(cur *node[T], v T) *node[T] {
	if cur == nil {
		u.sz++
		return &node[T]{v: v, level: 1}
	}
	if v < cur.v {
		cur.l = u.insert(cur.l, v)
		cur.l.p = cur
	} else if cur.v < v {
		cur.r = u.insert(cur.r, v)
		cur.r.p = cur
	} else {
		return cur
	}
	return split(skew(cur))
}

// Remove v from the set. Returns true if v was present.
// Time: O(log n)
func (u *AASet[T]) Remove(v T) bool {
	before := u.sz
	u.root = u.remove(u.root, v)
	if u.root != nil {
		u.root.p = nil
	}
	return u.sz != before
}

// remove erases v from the subtree rooted at cur recursively, returning
// the new subtree root. A matching leaf is detached; a match without a
// left child takes its in-order successor's value and erases that from the
// right subtree, otherwise its predecessor's value from the left subtree.
// The unwind applies the full deletion cascade in fixed order: a single
// rotation at the erase point can surface new horizontal links one and two
// steps down the right spine, so skew runs at cur, cur.r and cur.r.r
// before split runs at cur and cur.r.
func (u *AASet[T]) remove(cur *node[T], v T) *node[T] {
	if cur == nil {
		return nil
	}
	if v < cur.v {
		cur.l = u.remove(cur.l, v)
		if cur.l != nil {
			cur.l.p = cur
		}
	} else if cur.v < v {
		cur.r = u.remove(cur.r, v)
		if cur.r != nil {
			cur.r.p = cur
		}
	} else if isLeaf(cur) {
		u.sz--
		return nil
	} else if cur.l == nil {
		cur.v = successor(cur).v
		cur.r = u.remove(cur.r, cur.v)
		if cur.r != nil {
			cur.r.p = cur
		}
	} else {
		cur.v = predecessor(cur).v
		cur.l = u.remove(cur.l, cur.v)
		if cur.l != nil {
			cur.l.p = cur
		}
	}
	cur = skew(decreaseLevel(cur))
	cur.r = skew(cur.r)
	if cur.r != nil {
		cur.r.r = skew(cur.r.r)
	}
	cur = split(cur)
	cur.r = split(cur.r)
	return cur
}

// Has reports whether v is in the set.
// Time: O(log n); Space: O(1)
func (u *AASet[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum element of the set. The bool is false when the set is empty, in
// which case the element is the zero value.
// Time: O(log n); Space: O(1)
func (u *AASet[T]) Minimum() (T, bool) {
	if n := leftmost(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum element of the set.
// Time: O(log n); Space: O(1)
func (u *AASet[T]) Maximum() (T, bool) {
	if n := rightmost(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Take returns the smallest element, the zero value if the set is empty.
// [Sets.Set] only promises some element; here it is always Minimum.
func (u *AASet[T]) Take() (v T) {
	if n := leftmost(u.root); n != nil {
		v = n.v
	}
	return
}

// Range visits the elements in ascending order, calling f on each until f
// returns false. The set must not be modified during the walk.
// Time: O(n)
func (u *AASet[T]) Range(f func(T) bool) {
	for n := leftmost(u.root); n != nil; n = next(n) {
		if !f(n.v) {
			return
		}
	}
}

// RangeR is Range in descending order.
func (u *AASet[T]) RangeR(f func(T) bool) {
	for n := rightmost(u.root); n != nil; n = prev(n) {
		if !f(n.v) {
			return
		}
	}
}

// LowerBound returns a cursor at the first element >= v, End when every
// element is smaller. When the descent runs out of right children below v
// it steps straight to that node's in-order successor instead of climbing
// back up a second time.
// Time: O(log n)
func (u *AASet[T]) LowerBound(v T) Iterator[T] {
	cur := u.root
	for cur != nil {
		if cur.v < v {
			if cur.r == nil {
				return Iterator[T]{u, next(cur)}
			}
			cur = cur.r
		} else if cur.l != nil && v < cur.v {
			cur = cur.l
		} else {
			break
		}
	}
	return Iterator[T]{u, cur}
}

// Find returns a cursor at v, End when v is absent.
// Time: O(log n)
func (u *AASet[T]) Find(v T) Iterator[T] {
	if it := u.LowerBound(v); it.n != nil && it.n.v == v {
		return it
	}
	return u.End()
}

// Begin returns a cursor at the smallest element. Begin equals End on an
// empty set.
func (u *AASet[T]) Begin() Iterator[T] {
	return Iterator[T]{u, leftmost(u.root)}
}

// End returns the past-the-last sentinel cursor.
func (u *AASet[T]) End() Iterator[T] {
	return Iterator[T]{u, nil}
}
