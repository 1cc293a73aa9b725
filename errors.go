package avl

// TreeError is an error type for the avl module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged when inserting a key which is already present.
// The tree is left unchanged.
const ErrDuplicateKey = TreeError("duplicate key")

// ErrKeyNotFound is flagged when searching for, deleting or splitting at a key
// which is not present in the tree.
const ErrKeyNotFound = TreeError("key not found")

// ErrEmptyTree is flagged whenever an operation needs at least one node.
const ErrEmptyTree = TreeError("tree is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g., when joining trees whose keys are not separated by the pivot key.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a rank index is not in [0, size).
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrUnordered signals that a builder received keys out of ascending order.
const ErrUnordered = TreeError("keys not in ascending order")

// ErrBuilderCompleted signals that a builder has already completed a tree and
// it's illegal to further add entries.
const ErrBuilderCompleted = TreeError("forbidden to add entries; tree has been completed")

// ErrInvariant is wrapped by Check to report a violated tree invariant.
const ErrInvariant = TreeError("tree invariant violated")
