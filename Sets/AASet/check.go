package AASet

import "golang.org/x/exp/constraints"

// Corrupt reports whether the tree violates its structural invariants:
// no horizontal left links, at most one horizontal right link in a row,
// parent back references matching the owning links, strictly ascending
// in-order values, and a node count equal to Size.
// This is a test aid; it walks the whole tree.
// Time: O(n)
func (u *AASet[T]) Corrupt() bool {
	if !sane(u.root, nil) {
		return true
	}
	count := uint(0)
	var last *node[T]
	for cur := leftmost(u.root); cur != nil; cur = next(cur) {
		if last != nil && !(last.v < cur.v) {
			return true
		}
		last = cur
		count++
	}
	return count != u.sz
}

// sane checks the level rules and parent link of every node under cur.
// decreaseLevel only fires when both children exist, so a node that lost
// a whole subtree may keep its old level next to a nil child, and one
// that lost both children stays a leaf at its old level; the rules are
// only applied where the child exists.
func sane[T constraints.Ordered](cur, up *node[T]) bool {
	if cur == nil {
		return true
	}
	if cur.p != up || cur.level == 0 {
		return false
	}
	if cur.l != nil && cur.l.level != cur.level-1 {
		return false
	}
	if cur.r != nil {
		if cur.r.level != cur.level && cur.r.level != cur.level-1 {
			return false
		}
		if cur.r.r != nil && cur.r.r.level >= cur.level {
			return false
		}
	}
	return sane(cur.l, cur) && sane(cur.r, cur)
}
