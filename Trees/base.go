package Trees

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Tree is an ordered multiset of T.
// T is the type of values it will hold, S is the type of the indexes used to
// address nodes; the tree holds at most ^S(0) distinct values at a time.
// Equal values (per the comparator) share a single node which counts its
// occurrences.
// A Tree must be created with New or NewOrdered and mustn't be copied after
// first use.
type Tree[T any, S constraints.Unsigned] struct {
	ns               []node[T, S] // ns[0] is the nil node.
	root, free, size S            // free is the beginning of the list of released slots, linked by node.l.
	total            uint
	cmp              Comparator[T]
	dtor             func(*T)
	s                Strategy
}

// New returns an empty tree ordered by c and balanced by s. dtor is optional;
// when given it's called on every value the tree discards.
func New[T any, S constraints.Unsigned](s Strategy, c Comparator[T], dtor func(*T)) (*Tree[T, S], error) {
	if c == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "comparator is required")
	}
	if !s.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown strategy %d", s)
	}
	return &Tree[T, S]{ns: []node[T, S]{{h: -1}}, cmp: c, dtor: dtor, s: s}, nil
}

// NewOrdered returns an empty tree of cmp.Ordered values using cmp.Compare.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](s Strategy) *Tree[T, S] {
	if !s.valid() {
		s = Height
	}
	return &Tree[T, S]{ns: []node[T, S]{{h: -1}}, cmp: cmp.Compare[T], s: s}
}

// Grow reserves room for another n nodes so the following n insertions don't reallocate.
func (u *Tree[T, S]) Grow(n int) {
	if u != nil && n > 0 && cap(u.ns)-len(u.ns) < n {
		ns := make([]node[T, S], len(u.ns), len(u.ns)+n)
		copy(ns, u.ns)
		u.ns = ns
	}
}

// alloc a slot holding v with one occurrence. Released slots are reused first.
// Nothing is modified when it fails.
func (u *Tree[T, S]) alloc(v T) (S, error) {
	if i := u.free; i != 0 {
		u.free = u.ns[i].l
		u.ns[i] = node[T, S]{v: v, n: 1}
		return i, nil
	}
	if uint64(len(u.ns)) > uint64(^S(0)) {
		return 0, errors.Wrapf(ErrAllocation, "index space of %d nodes is exhausted", len(u.ns)-1)
	}
	u.ns = append(u.ns, node[T, S]{v: v, n: 1})
	return S(len(u.ns) - 1), nil
}

// release slot i to the free list. The value is dropped without calling dtor.
func (u *Tree[T, S]) release(i S) {
	u.ns[i] = node[T, S]{l: u.free}
	u.free = i
}

// usable reports whether u was made by New or NewOrdered. A nil or zero Tree has no comparator and no nil node.
func (u *Tree[T, S]) usable() bool {
	return u != nil && u.cmp != nil && len(u.ns) > 0
}

// live reports whether i addresses a node currently in the tree.
func (u *Tree[T, S]) live(i S) bool {
	return i != 0 && uint64(i) < uint64(len(u.ns)) && u.ns[i].n > 0
}

// Destroy removes every element, calling the destructor on each of them in
// post-order (left subtree, right subtree, then the node). The tree stays
// usable and keeps its arena for reuse. Safe on a nil or empty tree.
// Time: O(n)
func (u *Tree[T, S]) Destroy() {
	if u == nil || len(u.ns) == 0 {
		return
	}
	if u.dtor != nil {
		u.PostOrder(func(v *T, _ S) bool {
			u.dtor(v)
			return true
		})
	}
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free, u.size, u.total = 0, 0, 0, 0
}

// Size is the number of distinct elements, which is also the number of nodes.
// Time: O(1)
func (u *Tree[T, S]) Size() S {
	if u == nil {
		return 0
	}
	return u.size
}

// Total is the number of elements counting every occurrence of equal elements.
// Time: O(1)
func (u *Tree[T, S]) Total() uint {
	if u == nil {
		return 0
	}
	return u.total
}

func (u *Tree[T, S]) IsEmpty() bool {
	return u == nil || u.root == 0
}

// Strategy the tree was created with, Height for a nil tree.
func (u *Tree[T, S]) Strategy() Strategy {
	if u == nil {
		return Height
	}
	return u.s
}

// Root index, 0 when empty.
func (u *Tree[T, S]) Root() S {
	if u == nil {
		return 0
	}
	return u.root
}

// Value stored at n. nil if n isn't a live node. The pointer is invalidated by the next insertion.
func (u *Tree[T, S]) Value(n S) *T {
	if u == nil || !u.live(n) {
		return nil
	}
	return &u.ns[n].v
}

// Count of occurrences at n, 0 if n isn't a live node.
func (u *Tree[T, S]) Count(n S) uint {
	if u == nil || !u.live(n) {
		return 0
	}
	return u.ns[n].n
}

func (u *Tree[T, S]) Parent(n S) S {
	if u == nil || !u.live(n) {
		return 0
	}
	return u.ns[n].p
}

func (u *Tree[T, S]) Left(n S) S {
	if u == nil || !u.live(n) {
		return 0
	}
	return u.ns[n].l
}

func (u *Tree[T, S]) Right(n S) S {
	if u == nil || !u.live(n) {
		return 0
	}
	return u.ns[n].r
}

// Height of the subtree rooted at n, -1 for the nil node. Only maintained by the Height strategy.
func (u *Tree[T, S]) Height(n S) int {
	if u == nil || !u.live(n) {
		return -1
	}
	return int(u.ns[n].h)
}

// IsRed reports the color of n. Only maintained by the Color strategy; the nil node is black.
func (u *Tree[T, S]) IsRed(n S) bool {
	return u != nil && u.live(n) && u.ns[n].red
}
