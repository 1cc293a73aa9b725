package avl

// handle addresses a node record within an arena.
type handle int32

// absent is the handle for "no node". It has rank -1 and size 0.
const absent handle = -1

// record is a node of the tree. Links to other nodes are handles into the
// same arena.
type record[V any] struct {
	key    int
	value  V
	rank   int    // height of the subtree
	size   int    // number of nodes in the subtree
	left   handle // left sub-tree
	right  handle // right sub-tree
	parent handle // points to parent node
	min    handle // leftmost node of the subtree
	max    handle // rightmost node of the subtree
	gen    uint32 // incremented whenever the slot is released
	live   bool
}

// arena holds the node records of one or more trees. Reclaimed slots are kept
// in a free list and are reused by later allocations.
type arena[V any] struct {
	nodes []record[V]
	free  []handle
}

func newArena[V any]() *arena[V] {
	return &arena[V]{}
}

// alloc creates a new leaf, reusing a reclaimed slot if one is available.
//
// alloc may grow the node slice, so pointers into it must not be held across
// a call to alloc.
func (a *arena[V]) alloc(key int, value V) handle {
	var h handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, record[V]{})
		h = handle(len(a.nodes) - 1)
	}
	gen := a.nodes[h].gen
	a.nodes[h] = record[V]{
		key:    key,
		value:  value,
		rank:   0,
		size:   1,
		left:   absent,
		right:  absent,
		parent: absent,
		min:    h,
		max:    h,
		gen:    gen,
		live:   true,
	}
	return h
}

// release reclaims a detached node and keeps its slot in the free list.
func (a *arena[V]) release(h handle) {
	assert(a.valid(h), "release of a dead node")
	var zero V
	n := &a.nodes[h]
	n.value = zero
	n.left, n.right, n.parent = absent, absent, absent
	n.min, n.max = absent, absent
	n.live = false
	n.gen++
	a.free = append(a.free, h)
}

// valid is true if h refers to a live record of this arena.
func (a *arena[V]) valid(h handle) bool {
	return h >= 0 && int(h) < len(a.nodes) && a.nodes[h].live
}

// live returns the number of allocated nodes.
func (a *arena[V]) live() int {
	return len(a.nodes) - len(a.free)
}

func (a *arena[V]) rank(h handle) int {
	if h == absent {
		return -1
	}
	return a.nodes[h].rank
}

func (a *arena[V]) size(h handle) int {
	if h == absent {
		return 0
	}
	return a.nodes[h].size
}

// rankDiff returns the rank difference pair of a real node.
func (a *arena[V]) rankDiff(h handle) (int, int) {
	n := &a.nodes[h]
	return n.rank - a.rank(n.left), n.rank - a.rank(n.right)
}

func (a *arena[V]) setLeft(p, c handle) {
	a.nodes[p].left = c
	if c != absent {
		a.nodes[c].parent = p
	}
}

func (a *arena[V]) setRight(p, c handle) {
	a.nodes[p].right = c
	if c != absent {
		a.nodes[c].parent = p
	}
}

// replaceChild links c into the slot of p which currently holds old. If p is
// absent, c becomes a root.
func (a *arena[V]) replaceChild(p, old, c handle) {
	switch {
	case p == absent:
		if c != absent {
			a.nodes[c].parent = absent
		}
	case a.nodes[p].left == old:
		a.setLeft(p, c)
	default:
		assert(a.nodes[p].right == old, "replaceChild: old is not a child of p")
		a.setRight(p, c)
	}
}

// detach cuts a subtree loose from its parent's back reference and returns it.
// The parent's child slot is left untouched.
func (a *arena[V]) detach(h handle) handle {
	if h != absent {
		a.nodes[h].parent = absent
	}
	return h
}

// graft copies the subtree at h of arena src into a, releasing the source
// nodes. Ranks are copied, so the result is balanced if the source was.
func (a *arena[V]) graft(src *arena[V], h handle, parent handle) handle {
	if h == absent {
		return absent
	}
	n := src.nodes[h]
	c := a.alloc(n.key, n.value)
	a.nodes[c].rank = n.rank
	a.nodes[c].parent = parent
	l := a.graft(src, n.left, c)
	r := a.graft(src, n.right, c)
	a.nodes[c].left, a.nodes[c].right = l, r
	a.refresh(c)
	src.release(h)
	return c
}
