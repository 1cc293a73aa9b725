package avl

import "iter"

// ForEach walks the entries of t in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[V]) ForEach(fn func(key int, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	a := t.arena
	for h := t.min; h != absent; h = a.successor(h) {
		if !fn(a.nodes[h].key, a.nodes[h].value) {
			return
		}
	}
}

// All returns an iterator over all entries in ascending key order.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		t.ForEach(yield)
	}
}

// Keys returns all keys in ascending order. For an empty tree the result is
// an empty (non-nil) slice.
func (t *Tree[V]) Keys() []int {
	keys := make([]int, 0, t.size)
	t.ForEach(func(key int, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns all values, ordered by their keys.
func (t *Tree[V]) Values() []V {
	values := make([]V, 0, t.size)
	t.ForEach(func(_ int, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

// First returns the node with the smallest key; a virtual node if t is empty.
func (t *Tree[V]) First() Node[V] {
	return t.arena.ref(t.min)
}

// Last returns the node with the largest key; a virtual node if t is empty.
func (t *Tree[V]) Last() Node[V] {
	return t.arena.ref(t.max)
}

// Next returns the node with the next higher key, or a virtual node if n is
// the last one.
func (n Node[V]) Next() Node[V] {
	if n.rec() == nil {
		return Node[V]{}
	}
	return n.arena.ref(n.arena.successor(n.h))
}

// Prev returns the node with the next lower key, or a virtual node if n is
// the first one.
func (n Node[V]) Prev() Node[V] {
	if n.rec() == nil {
		return Node[V]{}
	}
	return n.arena.ref(n.arena.predecessor(n.h))
}

func (a *arena[V]) successor(h handle) handle {
	if r := a.nodes[h].right; r != absent {
		return a.nodes[r].min
	}
	for {
		p := a.nodes[h].parent
		if p == absent || a.nodes[p].left == h {
			return p
		}
		h = p
	}
}

func (a *arena[V]) predecessor(h handle) handle {
	if l := a.nodes[h].left; l != absent {
		return a.nodes[l].max
	}
	for {
		p := a.nodes[h].parent
		if p == absent || a.nodes[p].right == h {
			return p
		}
		h = p
	}
}

// Select returns the entry with the i-th smallest key, counting from 0.
func (t *Tree[V]) Select(i int) (int, V, error) {
	if i < 0 || i >= t.size {
		var zero V
		return 0, zero, ErrIndexOutOfBounds
	}
	a := t.arena
	h := t.root
	for {
		nl := a.size(a.nodes[h].left)
		switch {
		case i < nl:
			h = a.nodes[h].left
		case i > nl:
			// subtract left nodes + 1 (for this node)
			i -= nl + 1
			h = a.nodes[h].right
		default:
			return a.nodes[h].key, a.nodes[h].value, nil
		}
	}
}

// IndexOf returns the number of keys smaller than key, if key is present.
func (t *Tree[V]) IndexOf(key int) (int, error) {
	a := t.arena
	index := 0
	for h := t.root; h != absent; {
		n := &a.nodes[h]
		switch {
		case key < n.key:
			h = n.left
		case key > n.key:
			index += a.size(n.left) + 1
			h = n.right
		default:
			return index + a.size(n.left), nil
		}
	}
	return -1, ErrKeyNotFound
}
