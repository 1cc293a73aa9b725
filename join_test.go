package avl

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keyRange(from, to int) []int {
	keys := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func TestJoinRaisesSubtreeAndContinues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()

	big := New[string]()
	mustInsert(t, big, 1, 2, 3, 4)
	small := big.Sibling()
	mustInsert(t, small, 6)
	if big.Rank() != 2 || small.Rank() != 0 {
		t.Fatalf("unexpected ranks %d and %d", big.Rank(), small.Rank())
	}
	cost, err := big.Join(5, "5", small)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if cost != 3 {
		t.Errorf("expected cost 3, got %d", cost)
	}
	mustCheck(t, big)
	mustCheck(t, small)
	if got := big.Keys(); !slices.Equal(got, keyRange(1, 6)) {
		t.Fatalf("unexpected keys %v", got)
	}
	if !small.IsEmpty() {
		t.Fatalf("expected other tree to be empty after join")
	}
	root, _ := big.Root()
	if root.Key() != 3 {
		t.Fatalf("expected 3 to become root, got %d", root.Key())
	}
}

func TestJoinWithoutRotation(t *testing.T) {
	b := NewBuilder[string]()
	for k := 10; k <= 16; k++ {
		if err := b.Append(k, strconv.Itoa(k)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	high := b.Tree()
	low := high.Sibling()
	mustInsert(t, low, 1)
	cost, err := high.Join(5, "5", low)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if cost != 3 {
		t.Errorf("expected cost 3, got %d", cost)
	}
	mustCheck(t, high)
	if got := high.Keys(); !slices.Equal(got, []int{1, 5, 10, 11, 12, 13, 14, 15, 16}) {
		t.Fatalf("unexpected keys %v", got)
	}
	if high.Rank() != 3 {
		t.Fatalf("expected rank 3 after join, got %d", high.Rank())
	}
}

func TestJoinEmptyTrees(t *testing.T) {
	tree := New[string]()
	cost, err := tree.Join(7, "7", tree.Sibling())
	if err != nil || cost != 1 {
		t.Fatalf("expected cost 1, got %d/%v", cost, err)
	}
	mustCheck(t, tree)
	if got := tree.Keys(); !slices.Equal(got, []int{7}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestJoinOntoEmptySide(t *testing.T) {
	tree := New[string]()
	mustInsert(t, tree, keyRange(1, 15)...)
	r := tree.Rank()
	cost, err := tree.Join(20, "20", tree.Sibling())
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if cost != r+2 {
		t.Errorf("expected cost %d, got %d", r+2, cost)
	}
	mustCheck(t, tree)
	empty := New[string]()
	if _, err = empty.Join(0, "0", tree); err != nil {
		t.Fatalf("Join into empty tree failed: %v", err)
	}
	mustCheck(t, empty)
	if empty.Size() != 17 || !tree.IsEmpty() {
		t.Fatalf("expected all 17 nodes to move, sizes are %d and %d", empty.Size(), tree.Size())
	}
}

func TestJoinRejectsOverlappingTrees(t *testing.T) {
	a := New[string]()
	mustInsert(t, a, 1, 2, 3)
	b := a.Sibling()
	mustInsert(t, b, 5, 6)
	for _, pivot := range []int{3, 5, 6, 0} {
		cost, err := a.Join(pivot, "x", b)
		if cost != -1 || !errors.Is(err, ErrIllegalArguments) {
			t.Fatalf("pivot %d: expected -1/ErrIllegalArguments, got %d/%v", pivot, cost, err)
		}
	}
	if cost, err := a.Join(4, "x", a); cost != -1 || !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("joining a tree with itself must fail, got %d/%v", cost, err)
	}
	if cost, err := a.Join(4, "x", nil); cost != -1 || !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("joining nil must fail, got %d/%v", cost, err)
	}
	if !slices.Equal(a.Keys(), []int{1, 2, 3}) || !slices.Equal(b.Keys(), []int{5, 6}) {
		t.Fatalf("trees changed on failed join: %v, %v", a.Keys(), b.Keys())
	}
	mustCheck(t, a)
	mustCheck(t, b)
}

func TestJoinForeignArena(t *testing.T) {
	a := New[string]()
	mustInsert(t, a, keyRange(50, 80)...)
	b := New[string]()
	mustInsert(t, b, keyRange(1, 9)...)
	if _, err := a.Join(20, "20", b); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	mustCheck(t, a)
	mustCheck(t, b)
	want := append(keyRange(1, 9), 20)
	want = append(want, keyRange(50, 80)...)
	if got := a.Keys(); !slices.Equal(got, want) {
		t.Fatalf("unexpected keys %v", got)
	}
	if b.arena.live() != 0 {
		t.Fatalf("expected nodes of foreign arena to be released")
	}
	// b stays usable with its own arena
	mustInsert(t, b, 3)
	mustCheck(t, b)
}

func TestSplitJoinRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()

	tree := New[string]()
	mustInsert(t, tree, keyRange(1, 100)...)
	small, big, err := tree.Split(37)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	mustCheck(t, small)
	mustCheck(t, big)
	if !tree.IsEmpty() {
		t.Fatalf("expected source tree to be empty after split")
	}
	if got := small.Keys(); !slices.Equal(got, keyRange(1, 36)) {
		t.Fatalf("unexpected small keys %v", got)
	}
	if got := big.Keys(); !slices.Equal(got, keyRange(38, 100)) {
		t.Fatalf("unexpected big keys %v", got)
	}
	if _, err := small.Join(37, "37", big); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	mustCheck(t, small)
	if got := small.Keys(); !slices.Equal(got, keyRange(1, 100)) {
		t.Fatalf("unexpected keys after round trip %v", got)
	}
	if v, _ := small.Search(37); v != "37" {
		t.Fatalf("unexpected value for pivot: %q", v)
	}
}

func TestSplitAtExtremes(t *testing.T) {
	tree := New[string]()
	mustInsert(t, tree, keyRange(1, 20)...)
	small, big, err := tree.Split(1)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if !small.IsEmpty() || !slices.Equal(big.Keys(), keyRange(2, 20)) {
		t.Fatalf("unexpected split at minimum: %v | %v", small.Keys(), big.Keys())
	}
	mustCheck(t, big)
	small, big, err = big.Split(20)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if !big.IsEmpty() || !slices.Equal(small.Keys(), keyRange(2, 19)) {
		t.Fatalf("unexpected split at maximum: %v | %v", small.Keys(), big.Keys())
	}
	mustCheck(t, small)

	single := New[string]()
	mustInsert(t, single, 5)
	small, big, err = single.Split(5)
	if err != nil || !small.IsEmpty() || !big.IsEmpty() {
		t.Fatalf("expected two empty trees, got %v | %v (%v)", small.Keys(), big.Keys(), err)
	}
	if single.arena.live() != 0 {
		t.Fatalf("expected split node to be released")
	}
}

func TestSplitMissingKey(t *testing.T) {
	tree := New[string]()
	mustInsert(t, tree, 1, 3, 5)
	small, big, err := tree.Split(4)
	if !errors.Is(err, ErrKeyNotFound) || small != nil || big != nil {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if !slices.Equal(tree.Keys(), []int{1, 3, 5}) {
		t.Fatalf("tree changed on failed split")
	}
}

func TestSplitEveryKey(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for k := 1; k <= n; k++ {
			tree := New[int]()
			for _, key := range keyRange(1, n) {
				tree.Insert(key, key)
			}
			small, big, err := tree.Split(k)
			if err != nil {
				t.Fatalf("Split(%d) of 1..%d failed: %v", k, n, err)
			}
			mustCheck(t, small)
			mustCheck(t, big)
			if small.Size() != k-1 || big.Size() != n-k {
				t.Fatalf("Split(%d) of 1..%d: sizes %d and %d", k, n, small.Size(), big.Size())
			}
		}
	}
}

// TestRandomOperations runs inserts, deletes, splits and joins against a
// map as reference model.
func TestRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(1999))
	tree := New[int]()
	model := make(map[int]int)
	for step := 0; step < 3000; step++ {
		key := rnd.Intn(500)
		switch op := rnd.Intn(10); {
		case op < 5:
			_, err := tree.Insert(key, key*2)
			if _, dup := model[key]; dup != errors.Is(err, ErrDuplicateKey) {
				t.Fatalf("step %d: Insert(%d) returned %v", step, key, err)
			}
			model[key] = key * 2
		case op < 8:
			_, err := tree.Delete(key)
			if _, ok := model[key]; ok == (err != nil) {
				t.Fatalf("step %d: Delete(%d) returned %v", step, key, err)
			}
			delete(model, key)
		default:
			if _, ok := model[key]; !ok {
				continue
			}
			small, big, err := tree.Split(key)
			if err != nil {
				t.Fatalf("step %d: Split(%d) failed: %v", step, key, err)
			}
			mustCheck(t, small)
			mustCheck(t, big)
			if _, err = big.Join(key, model[key], small); err != nil {
				t.Fatalf("step %d: Join(%d) failed: %v", step, key, err)
			}
			tree = big
		}
		mustCheck(t, tree)
		if tree.Size() != len(model) {
			t.Fatalf("step %d: size %d, model has %d", step, tree.Size(), len(model))
		}
	}
	keys := tree.Keys()
	if !slices.IsSorted(keys) {
		t.Fatalf("keys out of order")
	}
	for _, k := range keys {
		if v, err := tree.Search(k); err != nil || v != model[k] {
			t.Fatalf("Search(%d) = %d, %v; model has %d", k, v, err, model[k])
		}
	}
}
