package list

// Queue is a FIFO adapter over List: Put is InsertBack, Get removes
// behind the sentinel head, so both are O(1).
type Queue[T comparable] struct {
	data *List[T]
}

// NewQueue creates an empty queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{data: New[T]()}
}

// Put appends v to the end of the queue.
func (q *Queue[T]) Put(v T) {
	q.data.InsertBack(v)
}

// Get removes and returns the oldest element.
func (q *Queue[T]) Get() (T, error) {
	var zero T

	if q.data.IsEmpty() {
		return zero, ErrEmpty
	}

	v, err := q.data.RemoveAfter(q.data.Head())
	if err != nil {
		return zero, err
	}

	return v, nil
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	var zero T

	front := q.data.Front()
	if front == nil {
		return zero, ErrEmpty
	}

	return front.Value(), nil
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.data.Len() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.data.IsEmpty() }
