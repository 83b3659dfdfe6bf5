package Trees

// paint n, ignoring the nil node which is always black.
func (u *Tree[T, S]) paint(n S, red bool) {
	if n != 0 {
		u.ns[n].red = red
	}
}

// recolorInsert restores the red-black invariants after n was linked in as a red leaf.
// While n's parent is red: a red uncle is recolored together with the parent
// and the problem moves up to the grandparent; a black uncle ends the loop
// with one or two rotations. The root is painted black at the end.
// Time: O(D)
func (u *Tree[T, S]) recolorInsert(n S) {
	for p := u.ns[n].p; u.ns[p].red; p = u.ns[n].p {
		g := u.ns[p].p //p is red so it isn't the root.
		if p == u.ns[g].l {
			if y := u.ns[g].r; u.ns[y].red {
				u.ns[p].red, u.ns[y].red, u.ns[g].red = false, false, true
				n = g
				continue
			}
			if n == u.ns[p].r { //triangle, straighten it into a line.
				n, p = p, n
				u.rotateLeft(n)
			}
			u.ns[p].red, u.ns[g].red = false, true
			u.rotateRight(g)
		} else {
			if y := u.ns[g].l; u.ns[y].red {
				u.ns[p].red, u.ns[y].red, u.ns[g].red = false, false, true
				n = g
				continue
			}
			if n == u.ns[p].l {
				n, p = p, n
				u.rotateRight(n)
			}
			u.ns[p].red, u.ns[g].red = false, true
			u.rotateLeft(g)
		}
	}
	u.paint(u.root, false)
}

// recolorDelete resolves the missing black after a black node was spliced out.
// x took the removed node's place under xp; x may be the nil node, which is
// why xp is passed separately. The extra black climbs up until it reaches the
// root or a red node that absorbs it, or it is fixed by rotating at xp.
// Time: O(D)
func (u *Tree[T, S]) recolorDelete(x, xp S) {
	for x != u.root && !u.ns[x].red {
		if x == u.ns[xp].l {
			w := u.ns[xp].r
			if u.ns[w].red {
				u.ns[w].red, u.ns[xp].red = false, true
				u.rotateLeft(xp)
				w = u.ns[xp].r
			}
			if !u.ns[u.ns[w].l].red && !u.ns[u.ns[w].r].red {
				u.paint(w, true)
				x, xp = xp, u.ns[xp].p
				continue
			}
			if !u.ns[u.ns[w].r].red {
				u.paint(u.ns[w].l, false)
				u.ns[w].red = true
				w = u.rotateRight(w)
			}
			u.ns[w].red, u.ns[xp].red = u.ns[xp].red, false
			u.paint(u.ns[w].r, false)
			u.rotateLeft(xp)
		} else {
			w := u.ns[xp].l
			if u.ns[w].red {
				u.ns[w].red, u.ns[xp].red = false, true
				u.rotateRight(xp)
				w = u.ns[xp].l
			}
			if !u.ns[u.ns[w].l].red && !u.ns[u.ns[w].r].red {
				u.paint(w, true)
				x, xp = xp, u.ns[xp].p
				continue
			}
			if !u.ns[u.ns[w].l].red {
				u.paint(u.ns[w].r, false)
				u.ns[w].red = true
				w = u.rotateLeft(w)
			}
			u.ns[w].red, u.ns[xp].red = u.ns[xp].red, false
			u.paint(u.ns[w].l, false)
			u.rotateRight(xp)
		}
		x = u.root
	}
	u.paint(x, false)
}
