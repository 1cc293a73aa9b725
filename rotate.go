package avl

// --- Rank maintenance ------------------------------------------------------

func (a *arena[V]) promote(h handle) {
	a.nodes[h].rank++
}

func (a *arena[V]) demote(h handle) {
	a.nodes[h].rank--
	assert(a.nodes[h].rank >= 0, "demote of a leaf")
}

// legal reports whether a rank difference pair satisfies the AVL condition.
func legal(dl, dr int) bool {
	return (dl == 1 && dr == 1) || (dl == 1 && dr == 2) || (dl == 2 && dr == 1)
}

// refresh recomputes the cached size, min and max of h from its children.
// The children have to be correct already.
func (a *arena[V]) refresh(h handle) {
	n := &a.nodes[h]
	n.size = a.size(n.left) + a.size(n.right) + 1
	n.min, n.max = h, h
	if n.left != absent {
		n.min = a.nodes[n.left].min
	}
	if n.right != absent {
		n.max = a.nodes[n.right].max
	}
}

// refreshUp refreshes h and all of its ancestors, bottom-up, and returns the
// root it arrived at.
//
// Every structural edit ends with a call to refreshUp, starting at the deepest
// node whose subtree has changed.
func (a *arena[V]) refreshUp(h handle) handle {
	top := h
	for h != absent {
		a.refresh(h)
		top = h
		h = a.nodes[h].parent
	}
	return top
}

// --- Rotations -------------------------------------------------------------

// rotateLeft lifts the right child of p into p's position and returns it.
// Ranks are not changed.
//
//	    p                c
//	   / \              / \
//	  A   c     =>     p   C
//	     / \          / \
//	    B   C        A   B
func (a *arena[V]) rotateLeft(p handle) handle {
	c := a.nodes[p].right
	assert(c != absent, "rotateLeft: no right child")
	g := a.nodes[p].parent
	a.setRight(p, a.nodes[c].left)
	a.replaceChild(g, p, c)
	a.setLeft(c, p)
	a.refresh(p)
	a.refresh(c)
	return c
}

// rotateRight lifts the left child of p into p's position and returns it.
// Ranks are not changed.
//
//	      p            c
//	     / \          / \
//	    c   C   =>   A   p
//	   / \              / \
//	  A   B            B   C
func (a *arena[V]) rotateRight(p handle) handle {
	c := a.nodes[p].left
	assert(c != absent, "rotateRight: no left child")
	g := a.nodes[p].parent
	a.setLeft(p, a.nodes[c].right)
	a.replaceChild(g, p, c)
	a.setRight(c, p)
	a.refresh(p)
	a.refresh(c)
	return c
}
