package avl

import (
	"errors"
	"slices"
	"testing"
)

func TestBuilderBalancedTree(t *testing.T) {
	for n := 0; n <= 64; n++ {
		b := NewBuilder[int]()
		for k := 1; k <= n; k++ {
			if err := b.Append(k, k); err != nil {
				t.Fatalf("Append(%d) failed: %v", k, err)
			}
		}
		tree := b.Tree()
		mustCheck(t, tree)
		if tree.Size() != n || b.Len() != n {
			t.Fatalf("expected %d nodes, tree has %d", n, tree.Size())
		}
		// a freshly built tree has to accept further edits
		if _, err := tree.Insert(n+1, n+1); err != nil {
			t.Fatalf("Insert after build failed: %v", err)
		}
		mustCheck(t, tree)
	}
}

func TestBuilderPrependAppend(t *testing.T) {
	b := NewBuilder[string]()
	for _, step := range []struct {
		key     int
		prepend bool
	}{{5, false}, {6, false}, {4, true}, {1, true}, {9, false}} {
		var err error
		if step.prepend {
			err = b.Prepend(step.key, "x")
		} else {
			err = b.Append(step.key, "x")
		}
		if err != nil {
			t.Fatalf("staging %d failed: %v", step.key, err)
		}
	}
	if err := b.Append(9, "x"); !errors.Is(err, ErrUnordered) {
		t.Fatalf("expected ErrUnordered for Append, got %v", err)
	}
	if err := b.Prepend(3, "x"); !errors.Is(err, ErrUnordered) {
		t.Fatalf("expected ErrUnordered for Prepend, got %v", err)
	}
	tree := b.Tree()
	if got := tree.Keys(); !slices.Equal(got, []int{1, 4, 5, 6, 9}) {
		t.Fatalf("unexpected keys %v", got)
	}
	if b.Tree() != tree {
		t.Fatalf("expected repeated calls to return the same tree")
	}
	if err := b.Append(10, "x"); !errors.Is(err, ErrBuilderCompleted) {
		t.Fatalf("expected ErrBuilderCompleted, got %v", err)
	}
	b.Reset()
	if err := b.Append(0, "y"); err != nil {
		t.Fatalf("Append after Reset failed: %v", err)
	}
	if got := b.Tree().Keys(); !slices.Equal(got, []int{0}) {
		t.Fatalf("unexpected keys after reset %v", got)
	}
}
