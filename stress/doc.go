/*
Package stress drives an AVL tree with random operations.

A Driver performs a configurable mix of insertions, deletions, searches,
queries and split/join round trips on a tree, mirrors every operation on a
map and compares the two. Tree invariants are checked in regular intervals.
Clients may subscribe to a stream of Events while the driver is running.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package stress

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

var (
	// ErrInvalidConfig signals an invalid driver configuration.
	ErrInvalidConfig = errors.New("stress: invalid configuration")
	// ErrDiverged signals that the tree and the reference map disagree.
	ErrDiverged = errors.New("stress: tree diverged from reference")
)
