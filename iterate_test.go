package avl

import (
	"errors"
	"slices"
	"testing"
)

func TestSelectAndIndexOf(t *testing.T) {
	tree := New[string]()
	keys := []int{40, 10, 70, 20, 90, 30, 60, 50, 80}
	mustInsert(t, tree, keys...)
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	for i, k := range sorted {
		key, v, err := tree.Select(i)
		if err != nil || key != k || v != tree.arena.nodes[tree.find(k)].value {
			t.Fatalf("Select(%d) = %d, %v; expected %d", i, key, err, k)
		}
		inx, err := tree.IndexOf(k)
		if err != nil || inx != i {
			t.Fatalf("IndexOf(%d) = %d, %v; expected %d", k, inx, err, i)
		}
	}
	if _, _, err := tree.Select(len(keys)); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, _, err := tree.Select(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if inx, err := tree.IndexOf(55); inx != -1 || !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected -1/ErrKeyNotFound, got %d/%v", inx, err)
	}
}

func TestNodeNavigation(t *testing.T) {
	tree := New[string]()
	mustInsert(t, tree, 5, 3, 8, 1, 4, 7, 9, 2, 6)
	var forward []int
	for n := tree.First(); n.IsReal(); n = n.Next() {
		forward = append(forward, n.Key())
	}
	if !slices.Equal(forward, keyRange(1, 9)) {
		t.Fatalf("forward walk yields %v", forward)
	}
	var backward []int
	for n := tree.Last(); n.IsReal(); n = n.Prev() {
		backward = append(backward, n.Key())
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, keyRange(1, 9)) {
		t.Fatalf("backward walk yields %v", backward)
	}
	empty := New[string]()
	if empty.First().IsReal() || empty.Last().Next().IsReal() {
		t.Fatalf("empty tree must yield virtual nodes")
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := New[string]()
	mustInsert(t, tree, keyRange(1, 10)...)
	var seen []int
	for k, v := range tree.All() {
		if v != tree.arena.nodes[tree.find(k)].value {
			t.Fatalf("value mismatch at key %d", k)
		}
		seen = append(seen, k)
		if k == 4 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected iteration %v", seen)
	}
	count := 0
	tree.ForEach(func(int, string) bool {
		count++
		return true
	})
	if count != 10 {
		t.Fatalf("ForEach visited %d entries", count)
	}
	tree.ForEach(nil)
}
