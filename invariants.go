package avl

import "fmt"

// Check validates the structural tree invariants: key order, parent links,
// ranks and rank differences, and the cached sizes, minima and maxima of
// every node and of the tree itself.
//
// The checker visits every node and is meant for tests and diagnostics.
func (t *Tree[V]) Check() error {
	if t == nil || t.arena == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == absent {
		if t.size != 0 || t.min != absent || t.max != absent {
			return fmt.Errorf("%w: empty tree with cached size=%d", ErrInvariant, t.size)
		}
		return nil
	}
	a := t.arena
	if !a.valid(t.root) {
		return fmt.Errorf("%w: root is not a live node", ErrInvariant)
	}
	if a.nodes[t.root].parent != absent {
		return fmt.Errorf("%w: root %d has a parent", ErrInvariant, a.nodes[t.root].key)
	}
	s, err := a.checkNode(t.root)
	if err != nil {
		return err
	}
	if s.size != t.size || s.min != t.min || s.max != t.max {
		return fmt.Errorf("%w: tree caches (size=%d) differ from root (size=%d)",
			ErrInvariant, t.size, s.size)
	}
	return nil
}

// subtree is what checkNode recomputes for a subtree.
type subtree struct {
	size, rank int
	min, max   handle
}

func (a *arena[V]) checkNode(h handle) (subtree, error) {
	if h == absent {
		return subtree{rank: -1, min: absent, max: absent}, nil
	}
	if !a.valid(h) {
		return subtree{}, fmt.Errorf("%w: link to dead node", ErrInvariant)
	}
	n := &a.nodes[h]
	for _, c := range []handle{n.left, n.right} {
		if c != absent && a.valid(c) && a.nodes[c].parent != h {
			return subtree{}, fmt.Errorf("%w: child %d of %d has wrong parent",
				ErrInvariant, a.nodes[c].key, n.key)
		}
	}
	ls, err := a.checkNode(n.left)
	if err != nil {
		return subtree{}, err
	}
	rs, err := a.checkNode(n.right)
	if err != nil {
		return subtree{}, err
	}
	if ls.max != absent && a.nodes[ls.max].key >= n.key {
		return subtree{}, fmt.Errorf("%w: left subtree of %d holds key %d",
			ErrInvariant, n.key, a.nodes[ls.max].key)
	}
	if rs.min != absent && a.nodes[rs.min].key <= n.key {
		return subtree{}, fmt.Errorf("%w: right subtree of %d holds key %d",
			ErrInvariant, n.key, a.nodes[rs.min].key)
	}
	s := subtree{
		size: ls.size + rs.size + 1,
		rank: 1 + max(ls.rank, rs.rank),
		min:  h,
		max:  h,
	}
	if ls.min != absent {
		s.min = ls.min
	}
	if rs.max != absent {
		s.max = rs.max
	}
	if n.rank != s.rank {
		return subtree{}, fmt.Errorf("%w: node %d has rank %d, height is %d",
			ErrInvariant, n.key, n.rank, s.rank)
	}
	if dl, dr := n.rank-ls.rank, n.rank-rs.rank; !legal(dl, dr) {
		return subtree{}, fmt.Errorf("%w: node %d has rank difference (%d,%d)",
			ErrInvariant, n.key, dl, dr)
	}
	if n.size != s.size {
		return subtree{}, fmt.Errorf("%w: node %d has size %d, counted %d",
			ErrInvariant, n.key, n.size, s.size)
	}
	if n.min != s.min || n.max != s.max {
		return subtree{}, fmt.Errorf("%w: node %d has stale min/max", ErrInvariant, n.key)
	}
	return s, nil
}
