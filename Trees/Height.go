package Trees

// balanceFactor of n: height(left)-height(right).
func (u *Tree[T, S]) balanceFactor(n S) int {
	c := &u.ns[n]
	return int(u.ns[c.l].h) - int(u.ns[c.r].h)
}

// rebalance refreshes the height of n and rotates when its balance factor
// left [-1,1]. The sign of the taller child's factor picks between a single
// and a double rotation. Returns the root of the subtree that was rooted at n.
// Time: O(1)
func (u *Tree[T, S]) rebalance(n S) S {
	u.fixHeight(n)
	if b := u.balanceFactor(n); b > 1 {
		if l := u.ns[n].l; u.balanceFactor(l) < 0 {
			u.rotateLeft(l)
		}
		return u.rotateRight(n)
	} else if b < -1 {
		if r := u.ns[n].r; u.balanceFactor(r) > 0 {
			u.rotateRight(r)
		}
		return u.rotateLeft(n)
	}
	return n
}

// retrace walks from n up to the root, rebalancing every node on the way.
// Used after both insertion and deletion: n is the parent of the node that
// was added or spliced out.
// Time: O(D)
func (u *Tree[T, S]) retrace(n S) {
	for n != 0 {
		n = u.ns[u.rebalance(n)].p
	}
}
