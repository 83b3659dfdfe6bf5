package Trees

import "golang.org/x/exp/constraints"

// A node in the Tree.
// The zero value is a free slot: live nodes always have n>=1.
// The node at index 0 is the nil node, it has h=-1 and is black.
type node[T any, S constraints.Unsigned] struct {
	v       T
	n       uint // occurrences of v; 0 marks a free slot whose l links the next free slot.
	p, l, r S    // only l and r own their targets, p is for walking up.
	h       int8 // height of the subtree, leaves are 0. Only kept by Height.
	red     bool // only kept by Color.
}

// slot returns the link that points at n: either a child field of n's parent or the root.
func (u *Tree[T, S]) slot(n S) *S {
	if p := u.ns[n].p; p == 0 {
		return &u.root
	} else if u.ns[p].l == n {
		return &u.ns[p].l
	} else {
		return &u.ns[p].r
	}
}

// fixHeight recomputes the cached height of n from its children.
func (u *Tree[T, S]) fixHeight(n S) {
	c := &u.ns[n]
	c.h = 1 + max(u.ns[c.l].h, u.ns[c.r].h)
}

// rotateLeft promotes the right child of x into x's place and returns it.
// x must have a right child. The in-order sequence is unchanged.
// Time: O(1); Space: O(1)
func (u *Tree[T, S]) rotateLeft(x S) S {
	xn := &u.ns[x]
	y := xn.r
	yn := &u.ns[y]
	*u.slot(x) = y
	yn.p, xn.p = xn.p, y
	if xn.r = yn.l; yn.l != 0 {
		u.ns[yn.l].p = x
	}
	yn.l = x
	if u.s == Height {
		u.fixHeight(x)
		u.fixHeight(y)
	}
	return y
}

// rotateRight promotes the left child of x into x's place and returns it.
// x must have a left child. The in-order sequence is unchanged.
// Time: O(1); Space: O(1)
func (u *Tree[T, S]) rotateRight(x S) S {
	xn := &u.ns[x]
	y := xn.l
	yn := &u.ns[y]
	*u.slot(x) = y
	yn.p, xn.p = xn.p, y
	if xn.l = yn.r; yn.r != 0 {
		u.ns[yn.r].p = x
	}
	yn.r = x
	if u.s == Height {
		u.fixHeight(x)
		u.fixHeight(y)
	}
	return y
}
