package avl

// Node is a read-only handle for a node of a tree. It is meant for
// diagnostics, visualization and in-order cursoring; the tree cannot be
// modified through a Node.
//
// A Node which does not refer to a real node (a missing child, the parent of
// the root, or a node which has since been deleted) reports IsReal() == false,
// a rank of -1 and a size of 0.
type Node[V any] struct {
	arena *arena[V]
	h     handle
	gen   uint32
}

func (a *arena[V]) ref(h handle) Node[V] {
	if h == absent {
		return Node[V]{arena: a, h: absent}
	}
	return Node[V]{arena: a, h: h, gen: a.nodes[h].gen}
}

// IsReal is true if n refers to a live node.
func (n Node[V]) IsReal() bool {
	return n.arena != nil && n.arena.valid(n.h) && n.arena.nodes[n.h].gen == n.gen
}

func (n Node[V]) rec() *record[V] {
	if !n.IsReal() {
		return nil
	}
	return &n.arena.nodes[n.h]
}

// Key returns the key of n, or -1 for a virtual node.
func (n Node[V]) Key() int {
	if r := n.rec(); r != nil {
		return r.key
	}
	return -1
}

// Value returns the value of n, or the zero value for a virtual node.
func (n Node[V]) Value() V {
	if r := n.rec(); r != nil {
		return r.value
	}
	var zero V
	return zero
}

// Rank returns the rank of n, -1 for a virtual node.
func (n Node[V]) Rank() int {
	if r := n.rec(); r != nil {
		return r.rank
	}
	return -1
}

// Size returns the number of nodes in the subtree of n.
func (n Node[V]) Size() int {
	if r := n.rec(); r != nil {
		return r.size
	}
	return 0
}

// RankDiff returns the rank difference pair of n towards its left and right
// child. Virtual nodes report (0, 0).
func (n Node[V]) RankDiff() (int, int) {
	if n.rec() == nil {
		return 0, 0
	}
	return n.arena.rankDiff(n.h)
}

// Left returns the left child of n.
func (n Node[V]) Left() Node[V] {
	if r := n.rec(); r != nil {
		return n.arena.ref(r.left)
	}
	return Node[V]{}
}

// Right returns the right child of n.
func (n Node[V]) Right() Node[V] {
	if r := n.rec(); r != nil {
		return n.arena.ref(r.right)
	}
	return Node[V]{}
}

// Parent returns the parent of n.
func (n Node[V]) Parent() Node[V] {
	if r := n.rec(); r != nil {
		return n.arena.ref(r.parent)
	}
	return Node[V]{}
}

// Depth returns the number of ancestors of n.
func (n Node[V]) Depth() int {
	if n.rec() == nil {
		return 0
	}
	count := 0
	for p := n.arena.nodes[n.h].parent; p != absent; p = n.arena.nodes[p].parent {
		count++
	}
	return count
}
