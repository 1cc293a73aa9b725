/*
Package avl implements an ordered associative container as a rank-balanced
(AVL) binary search tree over distinct integer keys.

Trees

A Tree maps int keys to values of an arbitrary type V. Search, insertion and
deletion run in O(log n). Trees may be split at a key into the parts below
and above it, and two key-disjoint trees may be joined around a pivot key.
Both operations run in time proportional to the rank difference of the trees
involved, which telescopes to O(log n) for a complete split.

Balance is expressed in terms of ranks. The rank of a node is the height of
its subtree, a missing child has rank -1. For every node the rank difference
pair

	(rank(n) - rank(left(n)), rank(n) - rank(right(n)))

is one of (1,1), (1,2) or (2,1). Insert and Delete report the number of
rebalancing steps (promotions, demotions and rotations) they performed.

	Operation     |  Cost
	--------------+------------------------
	Search        |  O(log n)
	Insert        |  O(log n)
	Delete        |  O(log n)
	Min, Max      |  O(1)
	Select        |  O(log n)
	Split         |  O(log n)
	Join          |  O(|rank(t1) - rank(t2)| + 1)

Nodes are records in an arena owned by the tree and are addressed by integer
handles, including the back reference to the parent. Trees resulting from a
split share the arena of the tree they were split from, which allows joining
them again without copying. Node handles handed out to clients (see Node)
carry a generation and become invalid once their node is deleted.

Trees are not safe for concurrent use. Clients have to serialize access.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
