package avl

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an ordered map from int keys to values of type V, kept balanced as
// an AVL tree.
//
// Trees have to be created by New or Sibling.
//
// Operations which modify the tree structure report the number of
// rebalancing steps performed, where each promotion, demotion and single
// rotation counts as one step.
type Tree[V any] struct {
	arena *arena[V]
	root  handle
	min   handle // cached leftmost node
	max   handle // cached rightmost node
	size  int    // cached number of nodes
}

// New creates an empty tree with a fresh node arena.
func New[V any]() *Tree[V] {
	return treeIn(newArena[V](), absent)
}

// Sibling creates an empty tree which shares the node arena of t. Joining
// trees of a common arena does not copy any nodes.
func (t *Tree[V]) Sibling() *Tree[V] {
	return treeIn(t.arena, absent)
}

func treeIn[V any](a *arena[V], root handle) *Tree[V] {
	t := &Tree[V]{arena: a, root: root}
	t.sync()
	return t
}

// sync re-derives the tree-level caches from the root.
func (t *Tree[V]) sync() {
	if t.root == absent {
		t.min, t.max, t.size = absent, absent, 0
		return
	}
	r := &t.arena.nodes[t.root]
	t.min, t.max, t.size = r.min, r.max, r.size
}

// clear drops all nodes from t without releasing them. Used when the nodes
// have been handed over to another tree.
func (t *Tree[V]) clear() {
	t.root = absent
	t.sync()
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool {
	return t.root == absent
}

// Size returns the number of nodes in the tree.
func (t *Tree[V]) Size() int {
	return t.size
}

// Rank returns the rank of the root, which is -1 for an empty tree.
func (t *Tree[V]) Rank() int {
	return t.arena.rank(t.root)
}

// Root returns a handle for the root node (for diagnostics and
// visualization), or ErrEmptyTree.
func (t *Tree[V]) Root() (Node[V], error) {
	if t.IsEmpty() {
		return Node[V]{}, ErrEmptyTree
	}
	return t.arena.ref(t.root), nil
}

// Min returns the value stored with the smallest key.
func (t *Tree[V]) Min() (V, error) {
	if t.IsEmpty() {
		var zero V
		return zero, ErrEmptyTree
	}
	return t.arena.nodes[t.min].value, nil
}

// Max returns the value stored with the largest key.
func (t *Tree[V]) Max() (V, error) {
	if t.IsEmpty() {
		var zero V
		return zero, ErrEmptyTree
	}
	return t.arena.nodes[t.max].value, nil
}

// MinKey returns the smallest key.
func (t *Tree[V]) MinKey() (int, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}
	return t.arena.nodes[t.min].key, nil
}

// MaxKey returns the largest key.
func (t *Tree[V]) MaxKey() (int, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}
	return t.arena.nodes[t.max].key, nil
}

// locate descends from the root towards key. It returns the node holding key
// if present, otherwise the node which would become the parent of key.
// locate returns absent only for an empty tree.
func (t *Tree[V]) locate(key int) handle {
	h := t.root
	for h != absent {
		n := &t.arena.nodes[h]
		var next handle
		switch {
		case key < n.key:
			next = n.left
		case key > n.key:
			next = n.right
		default:
			return h
		}
		if next == absent {
			return h
		}
		h = next
	}
	return absent
}

// find returns the node holding key, or absent.
func (t *Tree[V]) find(key int) handle {
	h := t.locate(key)
	if h == absent || t.arena.nodes[h].key != key {
		return absent
	}
	return h
}

// Search returns the value stored for key, or ErrKeyNotFound.
func (t *Tree[V]) Search(key int) (V, error) {
	h := t.find(key)
	if h == absent {
		var zero V
		return zero, ErrKeyNotFound
	}
	return t.arena.nodes[h].value, nil
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key int) bool {
	return t.find(key) != absent
}
