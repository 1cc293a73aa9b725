package avl

import "fmt"

// Insert adds key with value to the tree and returns the number of
// rebalancing steps it took to restore the AVL invariants.
//
// If key is already present, Insert returns -1 and ErrDuplicateKey and
// leaves the tree unchanged.
func (t *Tree[V]) Insert(key int, value V) (int, error) {
	a := t.arena
	if t.IsEmpty() {
		t.root = a.alloc(key, value)
		t.sync()
		return 0, nil
	}
	p := t.locate(key)
	if a.nodes[p].key == key {
		return -1, ErrDuplicateKey
	}
	h := a.alloc(key, value)
	if key < a.nodes[p].key {
		a.setLeft(p, h)
	} else {
		a.setRight(p, h)
	}
	ops := a.rebalanceInsert(p)
	t.root = a.refreshUp(h)
	t.sync()
	return ops, nil
}

// rebalanceInsert climbs from p towards the root after the subtree below p
// has grown by one rank, and repairs rank differences of (0,x) and (x,0).
// It returns the number of promotions, demotions and rotations performed.
//
// Besides insertion, the climb is used by join. Only there a child of rank
// difference (1,1) may face a sibling with rank difference 2; the single
// rotation then raises the rank of the subtree and the climb continues.
func (a *arena[V]) rebalanceInsert(p handle) int {
	ops := 0
	for p != absent {
		dl, dr := a.rankDiff(p)
		switch {
		case legal(dl, dr):
			return ops
		case (dl == 0 && dr == 1) || (dl == 1 && dr == 0):
			a.promote(p)
			ops++
			p = a.nodes[p].parent
		case dl == 0 && dr == 2:
			c := a.nodes[p].left
			cl, cr := a.rankDiff(c)
			switch {
			case cl == 1 && cr == 2:
				a.rotateRight(p)
				a.demote(p)
				tracer().Debugf("insert: rotate right at %d", a.nodes[p].key)
				return ops + 2
			case cl == 2 && cr == 1:
				g := a.nodes[c].right
				a.promote(g)
				a.demote(c)
				a.rotateLeft(c)
				a.rotateRight(p)
				a.demote(p)
				tracer().Debugf("insert: double rotation at %d", a.nodes[p].key)
				return ops + 5
			case cl == 1 && cr == 1:
				a.rotateRight(p)
				a.promote(c)
				ops += 2
				p = a.nodes[c].parent
			default:
				panic(fmt.Sprintf("insert: child %d has rank difference (%d,%d)",
					a.nodes[c].key, cl, cr))
			}
		case dl == 2 && dr == 0:
			c := a.nodes[p].right
			cl, cr := a.rankDiff(c)
			switch {
			case cl == 2 && cr == 1:
				a.rotateLeft(p)
				a.demote(p)
				tracer().Debugf("insert: rotate left at %d", a.nodes[p].key)
				return ops + 2
			case cl == 1 && cr == 2:
				g := a.nodes[c].left
				a.promote(g)
				a.demote(c)
				a.rotateRight(c)
				a.rotateLeft(p)
				a.demote(p)
				tracer().Debugf("insert: double rotation at %d", a.nodes[p].key)
				return ops + 5
			case cl == 1 && cr == 1:
				a.rotateLeft(p)
				a.promote(c)
				ops += 2
				p = a.nodes[c].parent
			default:
				panic(fmt.Sprintf("insert: child %d has rank difference (%d,%d)",
					a.nodes[c].key, cl, cr))
			}
		default:
			panic(fmt.Sprintf("insert: node %d has rank difference (%d,%d)",
				a.nodes[p].key, dl, dr))
		}
	}
	return ops
}
