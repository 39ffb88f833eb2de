// Package list implements a singly-linked list with a sentinel head node,
// plus stack and queue adapters built on top of it.
//
// The sentinel head carries no value; it gives every live node a
// predecessor, so insertion and removal never special-case the front.
// Front, Back and Find return live nodes; Head returns the sentinel for
// use as the InsertAfter/RemoveAfter anchor of the first position.
//
// List is not safe for concurrent use.
package list
