package avl

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with key, rank and size and filled according to their
// rank difference pair; missing children are drawn as small empty circles.
func Tree2Dot[V any](t *Tree[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	a := t.arena
	var walk func(h handle)
	walk = func(h handle) {
		n := &a.nodes[h]
		ID := nodeID(h)
		label := fmt.Sprintf("%d\\nr=%d s=%d", n.key, n.rank, n.size)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(a, h))
		for i, c := range [2]handle{n.left, n.right} {
			if c == absent {
				nilid := 2*ID + i + 100000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nodeID(c))
			walk(c)
		}
	}
	if !t.IsEmpty() {
		walk(t.root)
	} else {
		tracer().Debugf("tree DOT: tree is empty")
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeID(h handle) int {
	return int(h) + 1
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[V any](a *arena[V], h handle) string {
	s := ",style=filled,color=black,shape=circle"
	dl, dr := a.rankDiff(h)
	switch {
	case dl == 1 && dr == 1:
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[0])
	case legal(dl, dr):
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[2])
	default:
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[len(hexhlcolors)-1])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
