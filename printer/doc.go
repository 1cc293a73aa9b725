/*
Package printer renders AVL trees for humans.

Print draws a tree sideways onto a console, one node per line, with the
right subtree above and the left subtree below its parent. Nodes are colored
by their rank difference pair if the output supports it, and labels are
clipped to the line width, measured in fixed-width positions (“en”s).

HTML renders a tree as nested unordered lists.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package printer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}
