package printer

import (
	"fmt"
	"io"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the subtree at root as nested unordered lists. Every list
// item carries the node's key as text and its rank and size as data
// attributes; the left child is listed before the right one, missing
// children are rendered as empty items of class "nil".
//
// A virtual root renders an empty list.
func HTML[V any](w io.Writer, root avl.Node[V]) error {
	if w == nil {
		return avl.ErrIllegalArguments
	}
	ul := element(atom.Ul)
	ul.Attr = []html.Attribute{{Key: "class", Val: "avl"}}
	if root.IsReal() {
		ul.AppendChild(htmlNode(root))
	}
	if err := html.Render(w, ul); err != nil {
		tracer().Errorf("printer: cannot render tree as HTML: %v", err)
		return err
	}
	return nil
}

func htmlNode[V any](n avl.Node[V]) *html.Node {
	li := element(atom.Li)
	if !n.IsReal() {
		li.Attr = []html.Attribute{{Key: "class", Val: "nil"}}
		return li
	}
	li.Attr = []html.Attribute{
		{Key: "data-rank", Val: fmt.Sprintf("%d", n.Rank())},
		{Key: "data-size", Val: fmt.Sprintf("%d", n.Size())},
	}
	li.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("%d", n.Key()),
	})
	l, r := n.Left(), n.Right()
	if l.IsReal() || r.IsReal() {
		ul := element(atom.Ul)
		ul.AppendChild(htmlNode(l))
		ul.AppendChild(htmlNode(r))
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}
