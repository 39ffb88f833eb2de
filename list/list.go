package list

import (
	"fmt"
	"iter"

	"github.com/hupe1980/gotl/strbuf"
)

// Node is a single element of a list. The zero-value node owned by the
// list as sentinel head carries no value.
type Node[T comparable] struct {
	value T
	next  *Node[T]
}

// Value returns the element stored in the node.
func (n *Node[T]) Value() T { return n.value }

// Next returns the successor node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a singly-linked list with a sentinel head and a tail pointer,
// giving O(1) insertion at both ends.
type List[T comparable] struct {
	head *Node[T] // sentinel, carries no value
	tail *Node[T] // last live node, or the sentinel when empty
	size int
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	head := &Node[T]{}
	return &List[T]{head: head, tail: head}
}

// NewFrom creates an independent copy of other.
func NewFrom[T comparable](other *List[T]) *List[T] {
	l := New[T]()
	for curr := other.head.next; curr != nil; curr = curr.next {
		l.InsertBack(curr.value)
	}
	return l
}

// InsertFront inserts v as the new first element and returns its node.
func (l *List[T]) InsertFront(v T) *Node[T] {
	node := &Node[T]{value: v, next: l.head.next}

	if l.head.next == nil {
		l.tail = node
	}

	l.head.next = node
	l.size++

	return node
}

// InsertBack appends v as the new last element and returns its node.
func (l *List[T]) InsertBack(v T) *Node[T] {
	node := &Node[T]{value: v}

	l.tail.next = node
	l.tail = node
	l.size++

	return node
}

// InsertAfter inserts v directly after the anchor node and returns the new
// node. The sentinel returned by Head is a valid anchor for the first
// position.
func (l *List[T]) InsertAfter(anchor *Node[T], v T) (*Node[T], error) {
	if anchor == nil {
		return nil, ErrNilNode
	}

	node := &Node[T]{value: v, next: anchor.next}

	if anchor.next == nil {
		l.tail = node
	}

	anchor.next = node
	l.size++

	return node, nil
}

// RemoveElement unlinks the first node holding v and reports whether one
// was found. The size only changes on a hit.
func (l *List[T]) RemoveElement(v T) bool {
	for curr := l.head; curr.next != nil; curr = curr.next {
		if curr.next.value == v {
			l.unlinkAfter(curr)
			return true
		}
	}

	return false
}

// RemoveAfter unlinks and returns the successor of the anchor node. Using
// the sentinel returned by Head as anchor removes the first element.
func (l *List[T]) RemoveAfter(anchor *Node[T]) (T, error) {
	var zero T

	if anchor == nil {
		return zero, ErrNilNode
	}
	if anchor.next == nil {
		return zero, ErrNoSuccessor
	}

	v := anchor.next.value
	l.unlinkAfter(anchor)

	return v, nil
}

func (l *List[T]) unlinkAfter(anchor *Node[T]) {
	removed := anchor.next
	anchor.next = removed.next
	removed.next = nil // detach so the node doesn't pin its successors

	if anchor.next == nil {
		l.tail = anchor
	}

	l.size--
}

// Clear drops all elements.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.tail = l.head
	l.size = 0
}

// Find returns the first node holding v, or nil.
func (l *List[T]) Find(v T) *Node[T] {
	for curr := l.head.next; curr != nil; curr = curr.next {
		if curr.value == v {
			return curr
		}
	}

	return nil
}

// Equal reports whether both lists hold the same elements in the same
// order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.size != other.size {
		return false
	}

	a, b := l.head.next, other.head.next
	for a != nil {
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}

	return true
}

// Head returns the sentinel head node. It carries no value and serves as
// the anchor for InsertAfter/RemoveAfter at the first position.
func (l *List[T]) Head() *Node[T] { return l.head }

// Front returns the first live node, or nil when empty.
func (l *List[T]) Front() *Node[T] { return l.head.next }

// Back returns the last live node, or nil when empty.
func (l *List[T]) Back() *Node[T] {
	if l.tail == l.head {
		return nil
	}
	return l.tail
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.head.next == nil }

// All iterates the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head.next; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}

// String renders the list as "List(e0, e1, ..., eN-1)\n". The empty list
// renders as "List()\n".
func (l *List[T]) String() string {
	b := strbuf.New(8 + 4*l.size)
	b.AppendString("List(")

	for curr := l.head.next; curr != nil; curr = curr.next {
		if curr != l.head.next {
			b.AppendString(", ")
		}
		b.AppendString(fmt.Sprint(curr.value))
	}

	b.AppendString(")\n")

	return b.String()
}
