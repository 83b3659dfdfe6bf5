package Trees

import (
	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-trees/Queues"
)

// Min returns the leftmost node of the subtree rooted at n, 0 if n is 0.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Min(n S) S {
	if u == nil || n == 0 {
		return 0
	}
	for u.ns[n].l != 0 {
		n = u.ns[n].l
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n, 0 if n is 0.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Max(n S) S {
	if u == nil || n == 0 {
		return 0
	}
	for u.ns[n].r != 0 {
		n = u.ns[n].r
	}
	return n
}

// Minimum element of the tree.
func (u *Tree[T, S]) Minimum() (T, bool) {
	if n := u.Min(u.Root()); n != 0 {
		return u.ns[n].v, true
	}
	return *new(T), false
}

// Maximum element of the tree.
func (u *Tree[T, S]) Maximum() (T, bool) {
	if n := u.Max(u.Root()); n != 0 {
		return u.ns[n].v, true
	}
	return *new(T), false
}

// Predecessor returns the node right before v in order, which must be in the
// tree. Returns 0 with no error when v is the minimum.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Predecessor(v T) (S, error) {
	if !u.usable() {
		return 0, errors.Wrap(ErrInvalidArgument, "predecessor in uninitialized tree")
	}
	n, ok := u.Find(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "predecessor of %v", v)
	}
	if l := u.ns[n].l; l != 0 {
		return u.Max(l), nil
	}
	p := u.ns[n].p
	for p != 0 && u.ns[p].l == n {
		n, p = p, u.ns[p].p
	}
	return p, nil
}

// Successor returns the node right after v in order, which must be in the
// tree. Returns 0 with no error when v is the maximum.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Successor(v T) (S, error) {
	if !u.usable() {
		return 0, errors.Wrap(ErrInvalidArgument, "successor in uninitialized tree")
	}
	n, ok := u.Find(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "successor of %v", v)
	}
	if r := u.ns[n].r; r != 0 {
		return u.Min(r), nil
	}
	p := u.ns[n].p
	for p != 0 && u.ns[p].r == n {
		n, p = p, u.ns[p].p
	}
	return p, nil
}

// LowestCommonAncestor of the nodes holding a and b, which must both be in the tree.
// It's the first node, going down from the root, where a and b don't fall on the same side.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) LowestCommonAncestor(a, b T) (S, error) {
	if !u.usable() {
		return 0, errors.Wrap(ErrInvalidArgument, "common ancestor in uninitialized tree")
	}
	if !u.Has(a) {
		return 0, errors.Wrapf(ErrNotFound, "common ancestor of %v", a)
	}
	if !u.Has(b) {
		return 0, errors.Wrapf(ErrNotFound, "common ancestor of %v", b)
	}
	cur := u.root
	for {
		ca, cb := u.cmp(a, u.ns[cur].v), u.cmp(b, u.ns[cur].v)
		if ca < 0 && cb < 0 {
			cur = u.ns[cur].l
		} else if ca > 0 && cb > 0 {
			cur = u.ns[cur].r
		} else {
			return cur, nil
		}
	}
}

// Level of node n, which is its distance from the root. The root is at level 0.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Level(n S) (int, error) {
	if u == nil || !u.live(n) {
		return 0, errors.Wrapf(ErrInvalidArgument, "level of node %d", n)
	}
	l := 0
	for n = u.ns[n].p; n != 0; n = u.ns[n].p {
		l++
	}
	return l, nil
}

// Depth is the number of levels in the tree, 0 when empty.
// Unlike Height, it's computed by a level-order sweep and doesn't depend on the strategy.
// Time: O(n)
func (u *Tree[T, S]) Depth() int {
	if u.IsEmpty() {
		return 0
	}
	q := Queues.MakeArrayQueue[S](uint(u.size/2 + 1))
	q.Push(u.root)
	d := 0
	for ; !q.Empty(); d++ {
		for w := q.Size(); w > 0; w-- {
			n, _ := q.Pop()
			c := &u.ns[n]
			if c.l != 0 {
				q.Push(c.l)
			}
			if c.r != 0 {
				q.Push(c.r)
			}
		}
	}
	return d
}
