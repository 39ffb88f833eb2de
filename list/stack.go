package list

// Stack is a LIFO adapter over List: Push is InsertFront, Pop removes
// behind the sentinel head, so both are O(1).
type Stack[T comparable] struct {
	data *List[T]
}

// NewStack creates an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{data: New[T]()}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.data.InsertFront(v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T

	if s.data.IsEmpty() {
		return zero, ErrEmpty
	}

	v, err := s.data.RemoveAfter(s.data.Head())
	if err != nil {
		return zero, err
	}

	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T

	front := s.data.Front()
	if front == nil {
		return zero, ErrEmpty
	}

	return front.Value(), nil
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.data.Len() }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.data.IsEmpty() }
