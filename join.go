package avl

import "fmt"

// Join merges other and a new node (key, value) into t. Either all keys of t
// have to be smaller than key and all keys of other larger, or vice versa;
// either tree may be empty. After Join, t holds the union and other is empty.
//
// Join returns |rank(t) - rank(other)| + 1, measured before the join, with an
// empty tree having rank -1. This bounds the work done. If the trees do not
// share an arena (see Sibling), the nodes of other are copied over first,
// which costs O(size(other)) in addition.
//
// Violations of the ordering precondition, joining a tree with itself, or a
// nil tree result in -1 and ErrIllegalArguments; no tree is modified then.
func (t *Tree[V]) Join(key int, value V, other *Tree[V]) (int, error) {
	if other == nil || other == t {
		return -1, ErrIllegalArguments
	}
	var low, high *Tree[V]
	switch {
	case t.below(key) && other.above(key):
		low, high = t, other
	case other.below(key) && t.above(key):
		low, high = other, t
	default:
		return -1, fmt.Errorf("%w: pivot %d does not separate the trees", ErrIllegalArguments, key)
	}
	a := t.arena
	if other.arena != a && !other.IsEmpty() {
		tracer().Debugf("join: importing %d nodes from a foreign arena", other.size)
		other.root = a.graft(other.arena, other.root, absent)
	}
	cost := abs(a.rank(low.root)-a.rank(high.root)) + 1
	x := a.alloc(key, value)
	root, ops := a.joinAt(x, low.root, high.root)
	tracer().Debugf("join at pivot %d: cost %d, %d rebalancing steps", key, cost, ops)
	other.clear()
	t.root = root
	t.sync()
	return cost, nil
}

// below is true if all keys of t are smaller than key.
func (t *Tree[V]) below(key int) bool {
	return t.IsEmpty() || t.arena.nodes[t.max].key < key
}

// above is true if all keys of t are larger than key.
func (t *Tree[V]) above(key int) bool {
	return t.IsEmpty() || t.arena.nodes[t.min].key > key
}

// joinAt links the node x as pivot between the trees rooted at l and r, where
// keys(l) < key(x) < keys(r). l and r have to be roots (or absent). Children
// and rank of x are overwritten. joinAt returns the root of the joined tree
// and the number of rebalancing steps.
//
// x is attached at the first node on the facing spine of the higher tree
// whose rank is not larger than the rank of the lower tree. Only the path
// from there to the root is touched, which is O(|rank(l) - rank(r)| + 1).
func (a *arena[V]) joinAt(x, l, r handle) (handle, int) {
	rl, rr := a.rank(l), a.rank(r)
	a.nodes[x].parent = absent
	c := absent
	if rl >= rr {
		j := l
		for a.rank(j) > rr {
			c = j
			j = a.nodes[j].right
		}
		a.nodes[x].rank = rr + 1
		a.setLeft(x, j)
		a.setRight(x, r)
		if c != absent {
			a.setRight(c, x)
		}
	} else {
		j := r
		for a.rank(j) > rl {
			c = j
			j = a.nodes[j].left
		}
		a.nodes[x].rank = rl + 1
		a.setLeft(x, l)
		a.setRight(x, j)
		if c != absent {
			a.setLeft(c, x)
		}
	}
	a.refresh(x)
	ops := a.rebalanceInsert(c)
	return a.refreshUp(x), ops
}

// Split removes key from t and partitions the remaining nodes into a tree of
// the keys smaller than key and a tree of the keys larger than key. Both
// trees share the arena of t, t itself is left empty.
//
// If key is not present, Split returns ErrKeyNotFound and t is unchanged.
func (t *Tree[V]) Split(key int) (*Tree[V], *Tree[V], error) {
	x := t.find(key)
	if x == absent {
		return nil, nil, ErrKeyNotFound
	}
	a := t.arena
	xn := a.nodes[x]
	small, big := a.detach(xn.left), a.detach(xn.right)
	a.release(x)
	cur, p := x, xn.parent
	steps := 0
	for p != absent {
		pn := a.nodes[p]
		if pn.left == cur { // key < p.key
			far := a.detach(pn.right)
			big, _ = a.joinAt(p, big, far)
		} else {
			far := a.detach(pn.left)
			small, _ = a.joinAt(p, far, small)
		}
		cur, p = p, pn.parent
		steps++
	}
	tracer().Debugf("split at %d: %d joins", key, steps)
	t.clear()
	return treeIn(a, small), treeIn(a, big), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
