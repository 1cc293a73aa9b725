package avl

import (
	"bytes"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := New[string]()
	mustInsert(t, tree, 2, 1, 3)
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a DOT graph:\n%s", out)
	}
	for _, label := range []string{`2\nr=1 s=3`, `1\nr=0 s=1`, `3\nr=0 s=1`} {
		if !strings.Contains(out, label) {
			t.Errorf("missing node label %q", label)
		}
	}
	if n := strings.Count(out, "->"); n != 6 {
		t.Errorf("expected 6 edges including empty children, got %d", n)
	}
	buf.Reset()
	Tree2Dot(New[string](), &buf)
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty tree must not produce edges")
	}
}
