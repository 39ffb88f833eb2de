package list

import "errors"

var (
	// ErrEmpty is returned when removing or peeking on an empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrNilNode is returned when a nil node is passed as an anchor.
	ErrNilNode = errors.New("nil node")

	// ErrNoSuccessor is returned by RemoveAfter when the anchor is the last
	// node.
	ErrNoSuccessor = errors.New("node has no successor")
)
