package avl

// Builder incrementally stages key/value entries in ascending key order and
// finalizes them into a Tree.
//
// Builder collects entries and materializes the tree only when Tree() is
// called. The tree is built bottom-up in a single pass, which is O(n) instead
// of O(n log n) for n separate insertions.
type Builder[V any] struct {
	// front keeps prepended entries in reverse logical order.
	front []entry[V]
	// back keeps appended entries in logical order.
	back []entry[V]

	done  bool
	dirty bool
	tree  *Tree[V]
}

type entry[V any] struct {
	key   int
	value V
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{}
}

// Tree returns the tree built from all staged entries.
//
// It is illegal to continue adding entries after Tree has been called, but
// Tree may be called multiple times. Every call returns the same tree.
func (b *Builder[V]) Tree() *Tree[V] {
	if b.tree == nil || b.dirty {
		b.tree = b.build()
		b.dirty = false
	}
	b.done = true
	if b.tree.IsEmpty() {
		tracer().Debugf("tree builder: tree is empty")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[V]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.tree = nil
}

// Append stages an entry whose key is larger than all keys staged so far.
func (b *Builder[V]) Append(key int, value V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	if last, ok := b.lastKey(); ok && key <= last {
		return ErrUnordered
	}
	b.back = append(b.back, entry[V]{key: key, value: value})
	b.dirty = true
	return nil
}

// Prepend stages an entry whose key is smaller than all keys staged so far.
func (b *Builder[V]) Prepend(key int, value V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	if first, ok := b.firstKey(); ok && key >= first {
		return ErrUnordered
	}
	b.front = append(b.front, entry[V]{key: key, value: value})
	b.dirty = true
	return nil
}

// Len returns the number of staged entries.
func (b *Builder[V]) Len() int {
	return len(b.front) + len(b.back)
}

func (b *Builder[V]) firstKey() (int, bool) {
	if n := len(b.front); n > 0 {
		return b.front[n-1].key, true
	}
	if len(b.back) > 0 {
		return b.back[0].key, true
	}
	return 0, false
}

func (b *Builder[V]) lastKey() (int, bool) {
	if n := len(b.back); n > 0 {
		return b.back[n-1].key, true
	}
	if len(b.front) > 0 {
		return b.front[0].key, true
	}
	return 0, false
}

func (b *Builder[V]) build() *Tree[V] {
	entries := b.orderedEntries()
	a := newArena[V]()
	a.nodes = make([]record[V], 0, len(entries))
	root := a.buildBalanced(entries, absent)
	return treeIn(a, root)
}

func (b *Builder[V]) orderedEntries() []entry[V] {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]entry[V], 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// buildBalanced creates a perfectly balanced subtree for sorted entries. The
// halves differ in size by at most one, so their heights differ by at most
// one as well, which makes every rank difference legal.
func (a *arena[V]) buildBalanced(entries []entry[V], parent handle) handle {
	if len(entries) == 0 {
		return absent
	}
	mid := len(entries) / 2
	h := a.alloc(entries[mid].key, entries[mid].value)
	a.nodes[h].parent = parent
	l := a.buildBalanced(entries[:mid], h)
	r := a.buildBalanced(entries[mid+1:], h)
	a.nodes[h].left, a.nodes[h].right = l, r
	a.nodes[h].rank = 1 + max(a.rank(l), a.rank(r))
	a.refresh(h)
	return h
}
