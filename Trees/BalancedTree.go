package Trees

import "github.com/pkg/errors"

// afterInsert restores the strategy's invariant after n was linked in as a leaf.
func (u *Tree[T, S]) afterInsert(n S) {
	switch u.s {
	case Height:
		u.retrace(u.ns[n].p)
	case Color:
		u.recolorInsert(n)
	}
}

// afterDelete restores the strategy's invariant after a node was spliced out of
// xp, x being the child that took its place. removedRed is the color the
// spliced node had.
func (u *Tree[T, S]) afterDelete(x, xp S, removedRed bool) {
	switch u.s {
	case Height:
		u.retrace(xp)
	case Color:
		if !removedRed {
			u.recolorDelete(x, xp)
		}
	}
}

// Insert v. An element equal to one already in the tree only increments that
// node's occurrence count.
// Fails with ErrAllocation, leaving the tree unchanged, when S can't address another node.
// Time: O(D)
func (u *Tree[T, S]) Insert(v T) error {
	if !u.usable() {
		return errors.Wrap(ErrInvalidArgument, "insert into uninitialized tree")
	}
	p, side := S(0), 0
	for cur := u.root; cur != 0; {
		p = cur
		if side = u.cmp(v, u.ns[cur].v); side < 0 {
			cur = u.ns[cur].l
		} else if side > 0 {
			cur = u.ns[cur].r
		} else {
			u.ns[cur].n++
			u.total++
			return nil
		}
	}
	n, err := u.alloc(v)
	if err != nil {
		return err
	}
	u.ns[n].p, u.ns[n].red = p, u.s == Color
	if p == 0 {
		u.root = n
	} else if side < 0 {
		u.ns[p].l = n
	} else {
		u.ns[p].r = n
	}
	u.size++
	u.total++
	u.afterInsert(n)
	return nil
}

// Delete the node holding v together with all its occurrences. The destructor,
// if any, is called once on the stored value.
// Time: O(D)
func (u *Tree[T, S]) Delete(v T) error {
	if !u.usable() {
		return errors.Wrap(ErrInvalidArgument, "delete from uninitialized tree")
	}
	n, ok := u.Find(v)
	if !ok {
		return errors.Wrapf(ErrNotFound, "delete %v", v)
	}
	u.remove(n)
	return nil
}

// DeleteOne removes a single occurrence of v. The node itself is deleted
// only when it held the last occurrence.
// Time: O(D)
func (u *Tree[T, S]) DeleteOne(v T) error {
	if !u.usable() {
		return errors.Wrap(ErrInvalidArgument, "delete from uninitialized tree")
	}
	n, ok := u.Find(v)
	if !ok {
		return errors.Wrapf(ErrNotFound, "delete one %v", v)
	}
	if c := &u.ns[n]; c.n > 1 {
		c.n--
		u.total--
		return nil
	}
	u.remove(n)
	return nil
}

// remove the live node z. With two children, z takes over the value and count
// of its in-order successor and the successor's node is the one unlinked, so
// the physical removal always happens at a node with at most one child.
func (u *Tree[T, S]) remove(z S) {
	zn := &u.ns[z]
	u.total -= zn.n
	if u.dtor != nil {
		u.dtor(&zn.v)
	}
	if zn.l != 0 && zn.r != 0 {
		y := u.Min(zn.r)
		zn.v, zn.n = u.ns[y].v, u.ns[y].n
		z = y
	}
	u.unlink(z)
}

// unlink y, which has at most one child, by splicing that child into y's slot.
func (u *Tree[T, S]) unlink(y S) {
	yn := &u.ns[y]
	x, xp, removedRed := yn.l, yn.p, yn.red
	if x == 0 {
		x = yn.r
	}
	*u.slot(y) = x
	if x != 0 {
		u.ns[x].p = xp
	}
	u.release(y)
	u.size--
	u.afterDelete(x, xp, removedRed)
}

// Find the node holding an element equal to v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Find(v T) (S, bool) {
	if !u.usable() {
		return 0, false
	}
	for cur := u.root; cur != 0; {
		if c := u.cmp(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			return cur, true
		}
	}
	return 0, false
}

// Has element v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}
