package Trees

import (
	"iter"
	"math/bits"

	"github.com/g-m-twostay/go-trees/Queues"
)

// stack returns an empty stack big enough for a root-to-leaf path in a tree
// balanced by either strategy, so traversals rarely grow it.
func (u *Tree[T, S]) stack() []S {
	return make([]S, 0, 2*bits.Len64(uint64(u.size))+1)
}

// InOrder visits the nodes in ascending order of their values. Iterative,
// using an explicit stack. The tree mustn't be modified by f.
// Time: O(n); Space: O(D)
func (u *Tree[T, S]) InOrder(f Visit[T, S]) {
	if u.IsEmpty() {
		return
	}
	st := u.stack()
	for cur := u.root; cur != 0; cur = u.ns[cur].l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&u.ns[cur].v, cur) {
			return
		}
		for cur = u.ns[cur].r; cur != 0; cur = u.ns[cur].l {
			st = append(st, cur)
		}
	}
}

// PreOrder visits every node before its left subtree, then its right subtree.
// Time: O(n); Space: O(D)
func (u *Tree[T, S]) PreOrder(f Visit[T, S]) {
	if u.IsEmpty() {
		return
	}
	st := append(u.stack(), u.root)
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&u.ns[cur].v, cur) {
			return
		}
		if r := u.ns[cur].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ns[cur].l; l != 0 {
			st = append(st, l)
		}
	}
}

// PostOrder visits every node after its left subtree, then its right subtree.
// Time: O(n); Space: O(D)
func (u *Tree[T, S]) PostOrder(f Visit[T, S]) {
	if u.IsEmpty() {
		return
	}
	st := u.stack()
	var last S
	for cur := u.root; cur != 0 || len(st) > 0; {
		if cur != 0 {
			st = append(st, cur)
			cur = u.ns[cur].l
			continue
		}
		top := st[len(st)-1]
		if r := u.ns[top].r; r != 0 && r != last {
			cur = r
			continue
		}
		if !f(&u.ns[top].v, top) {
			return
		}
		last = top
		st = st[:len(st)-1]
	}
}

// LevelOrder visits the nodes breadth first, level by level from the root and
// from left to right within a level.
// Time: O(n); Space: O(n)
func (u *Tree[T, S]) LevelOrder(f Visit[T, S]) {
	if u.IsEmpty() {
		return
	}
	q := Queues.MakeArrayQueue[S](uint(u.size/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(&u.ns[cur].v, cur) {
			return
		}
		if l := u.ns[cur].l; l != 0 {
			q.Push(l)
		}
		if r := u.ns[cur].r; r != 0 {
			q.Push(r)
		}
	}
}

// All returns an iterator over the distinct elements in ascending order, each
// paired with its number of occurrences.
func (u *Tree[T, S]) All() iter.Seq2[T, uint] {
	return func(yield func(T, uint) bool) {
		u.InOrder(func(v *T, n S) bool {
			return yield(*v, u.ns[n].n)
		})
	}
}

// Values returns the distinct elements in ascending order.
func (u *Tree[T, S]) Values() []T {
	vs := make([]T, 0, u.Size())
	u.InOrder(func(v *T, _ S) bool {
		vs = append(vs, *v)
		return true
	})
	return vs
}
