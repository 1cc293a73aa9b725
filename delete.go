package avl

import "fmt"

// Delete removes key from the tree and returns the number of rebalancing
// steps it took to restore the AVL invariants. Deleting the only node of a
// tree takes 0 steps.
//
// If key is not present, Delete returns -1 and ErrKeyNotFound.
func (t *Tree[V]) Delete(key int) (int, error) {
	h := t.find(key)
	if h == absent {
		return -1, ErrKeyNotFound
	}
	a := t.arena
	if a.nodes[h].left != absent && a.nodes[h].right != absent {
		succ := a.nodes[a.nodes[h].right].min
		a.swapPositions(h, succ)
	}
	n := a.nodes[h]
	child := n.left
	if child == absent {
		child = n.right
	}
	p := n.parent
	a.replaceChild(p, h, child)
	a.release(h)
	if p == absent {
		t.root = child
		t.sync()
		return 0, nil
	}
	ops := a.rebalanceDelete(p)
	t.root = a.refreshUp(p)
	t.sync()
	return ops, nil
}

// swapPositions exchanges the positions of x and its in-order successor y
// within the tree, together with their ranks. Keys and values stay with their
// nodes, so handles to y remain valid.
//
// Pre: x has two children, y is the leftmost node of x's right subtree.
// Post: y occupies x's former position with x's rank, x occupies y's former
// position with y's rank and has no left child. All parent/child links of both
// nodes and their neighbours are consistent, but the BST order is violated
// at x until x is removed. Cached sizes are stale on the path from x to the
// root.
func (a *arena[V]) swapPositions(x, y handle) {
	xn, yn := a.nodes[x], a.nodes[y]
	assert(xn.left != absent && xn.right != absent, "swapPositions: x needs two children")
	assert(yn.left == absent, "swapPositions: y is not leftmost")
	a.replaceChild(xn.parent, x, y)
	a.setLeft(y, xn.left)
	if yn.parent == x {
		a.setRight(y, x)
	} else {
		a.setRight(y, xn.right)
		a.replaceChild(yn.parent, y, x)
	}
	a.setLeft(x, absent)
	a.setRight(x, yn.right)
	a.nodes[x].rank, a.nodes[y].rank = yn.rank, xn.rank
}

// rebalanceDelete climbs from p towards the root after a subtree below p has
// lost one rank. It returns the number of promotions, demotions and rotations
// performed. The climb includes the root itself.
func (a *arena[V]) rebalanceDelete(p handle) int {
	ops := 0
	for p != absent {
		dl, dr := a.rankDiff(p)
		switch {
		case legal(dl, dr):
			return ops
		case dl == 2 && dr == 2:
			a.demote(p)
			ops++
			p = a.nodes[p].parent
		case dl == 3 && dr == 1:
			s := a.nodes[p].right
			sl, sr := a.rankDiff(s)
			switch {
			case sl == 1 && sr == 1:
				a.rotateLeft(p)
				a.demote(p)
				a.promote(s)
				tracer().Debugf("delete: rotate left at %d, done", a.nodes[p].key)
				return ops + 3
			case sl == 2 && sr == 1:
				a.rotateLeft(p)
				a.demote(p)
				a.demote(p)
				ops += 3
				p = a.nodes[s].parent
			case sl == 1 && sr == 2:
				g := a.nodes[s].left
				a.rotateRight(s)
				a.rotateLeft(p)
				a.promote(g)
				a.demote(s)
				a.demote(p)
				a.demote(p)
				ops += 6
				p = a.nodes[g].parent
			default:
				panic(fmt.Sprintf("delete: sibling %d has rank difference (%d,%d)",
					a.nodes[s].key, sl, sr))
			}
		case dl == 1 && dr == 3:
			s := a.nodes[p].left
			sl, sr := a.rankDiff(s)
			switch {
			case sl == 1 && sr == 1:
				a.rotateRight(p)
				a.demote(p)
				a.promote(s)
				tracer().Debugf("delete: rotate right at %d, done", a.nodes[p].key)
				return ops + 3
			case sl == 1 && sr == 2:
				a.rotateRight(p)
				a.demote(p)
				a.demote(p)
				ops += 3
				p = a.nodes[s].parent
			case sl == 2 && sr == 1:
				g := a.nodes[s].right
				a.rotateLeft(s)
				a.rotateRight(p)
				a.promote(g)
				a.demote(s)
				a.demote(p)
				a.demote(p)
				ops += 6
				p = a.nodes[g].parent
			default:
				panic(fmt.Sprintf("delete: sibling %d has rank difference (%d,%d)",
					a.nodes[s].key, sl, sr))
			}
		default:
			panic(fmt.Sprintf("delete: node %d has rank difference (%d,%d)",
				a.nodes[p].key, dl, dr))
		}
	}
	return ops
}
