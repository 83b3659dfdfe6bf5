package Trees

import "github.com/pkg/errors"

// Validate checks the whole structure: parent links, strictly ascending
// in-order, occurrence counters, and the invariant of the tree's strategy.
// It returns an error wrapping ErrCorrupt describing the first violation found.
// This is to be distinguished from whether a plain binary search tree is balanced or not:
// any violation reported here means the tree can't be trusted anymore.
// Time: O(n); Space: O(n)
func (u *Tree[T, S]) Validate() error {
	if !u.usable() {
		return errors.Wrap(ErrInvalidArgument, "validate uninitialized tree")
	}
	if z := u.ns[0]; z.h != -1 || z.red || z.n != 0 {
		return errors.Wrap(ErrCorrupt, "nil node was written to")
	}
	if err := u.reachable(); err != nil {
		return err
	}
	if u.root != 0 && u.ns[u.root].p != 0 {
		return errors.Wrapf(ErrCorrupt, "root %d has parent %d", u.root, u.ns[u.root].p)
	}
	if u.s == Color && u.ns[u.root].red {
		return errors.Wrapf(ErrCorrupt, "root %d is red", u.root)
	}
	var (
		err         error
		prev        S
		size        S
		total       uint
		blackHeight = make([]int, len(u.ns)) //of each subtree, counting the nil node as the 0th.
	)
	u.InOrder(func(v *T, n S) bool {
		if prev != 0 && u.cmp(u.ns[prev].v, *v) >= 0 {
			err = errors.Wrapf(ErrCorrupt, "nodes %d and %d are out of order", prev, n)
			return false
		}
		prev = n
		return true
	})
	if err != nil {
		return err
	}
	u.PostOrder(func(_ *T, n S) bool {
		c := &u.ns[n]
		size++
		total += c.n
		switch {
		case c.n == 0:
			err = errors.Wrapf(ErrCorrupt, "node %d is linked but free", n)
		case c.l != 0 && u.ns[c.l].p != n, c.r != 0 && u.ns[c.r].p != n:
			err = errors.Wrapf(ErrCorrupt, "a child of node %d doesn't link back", n)
		case u.s == Height && int(c.h) != 1+max(int(u.ns[c.l].h), int(u.ns[c.r].h)):
			err = errors.Wrapf(ErrCorrupt, "node %d caches height %d", n, c.h)
		case u.s == Height && (u.balanceFactor(n) > 1 || u.balanceFactor(n) < -1):
			err = errors.Wrapf(ErrCorrupt, "node %d has balance factor %d", n, u.balanceFactor(n))
		case u.s == Color && c.red && (u.ns[c.l].red || u.ns[c.r].red):
			err = errors.Wrapf(ErrCorrupt, "red node %d has a red child", n)
		case u.s == Color && blackHeight[c.l] != blackHeight[c.r]:
			err = errors.Wrapf(ErrCorrupt, "node %d has black heights %d and %d", n, blackHeight[c.l], blackHeight[c.r])
		}
		if !c.red {
			blackHeight[n] = blackHeight[c.l] + 1
		} else {
			blackHeight[n] = blackHeight[c.l]
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if size != u.size || total != u.total {
		return errors.Wrapf(ErrCorrupt, "counted %d nodes and %d elements, recorded %d and %d", size, total, u.size, u.total)
	}
	return nil
}

// reachable checks that every slot of the arena is either reached once from
// the root or once from the free list, so the traversals below terminate.
func (u *Tree[T, S]) reachable() error {
	seen := newBitArray(len(u.ns))
	seen.Up(0)
	inRange := func(i S) bool { return uint64(i) < uint64(len(u.ns)) }
	var reached int
	if u.root != 0 {
		if !inRange(u.root) {
			return errors.Wrapf(ErrCorrupt, "root %d is out of range", u.root)
		}
		st := append(u.stack(), u.root)
		seen.Up(uint64(u.root))
		for len(st) > 0 {
			n := st[len(st)-1]
			st = st[:len(st)-1]
			reached++
			for _, c := range [2]S{u.ns[n].l, u.ns[n].r} {
				if c == 0 {
					continue
				}
				if !inRange(c) || seen.Up(uint64(c)) {
					return errors.Wrapf(ErrCorrupt, "child %d of node %d is out of range or reached twice", c, n)
				}
				st = append(st, c)
			}
		}
	}
	for i := u.free; i != 0; i = u.ns[i].l {
		if !inRange(i) || seen.Up(uint64(i)) {
			return errors.Wrapf(ErrCorrupt, "free slot %d is out of range or already reached", i)
		}
		if u.ns[i].n != 0 {
			return errors.Wrapf(ErrCorrupt, "free slot %d holds %d elements", i, u.ns[i].n)
		}
		reached++
	}
	if reached != len(u.ns)-1 {
		for i := range len(u.ns) {
			if !seen.Get(uint64(i)) {
				return errors.Wrapf(ErrCorrupt, "slot %d is orphaned", i)
			}
		}
	}
	return nil
}
