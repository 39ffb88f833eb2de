package array

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/hupe1980/gotl/strbuf"
)

// Options configures a new Array.
type Options struct {
	// KeepSorted re-establishes full sortedness on every insertion.
	// Requires an element ordering and is therefore only honored by
	// NewOrdered; New rejects it.
	KeepSorted bool

	// Growable doubles the capacity on demand instead of failing the
	// insertion once the array is full.
	Growable bool
}

// Array is a growable random-access container. The live elements occupy
// the prefix [0, used) of an exclusively owned backing store sized to the
// capacity; slots beyond the live prefix are dead and never read.
type Array[T comparable] struct {
	data       []T // len(data) == capacity
	used       int
	sorted     bool
	keepSorted bool
	growable   bool

	// compare is the element ordering, nil unless installed by NewOrdered
	// or Sort. Find dispatches to binary search only when it is present.
	compare func(a, b T) int
}

// New creates an array with the given capacity.
//
// The element type only needs equality; requesting Options.KeepSorted here
// returns ErrKeepSortedUnordered (use NewOrdered).
func New[T comparable](capacity int, optFns ...func(o *Options)) (*Array[T], error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.KeepSorted {
		return nil, ErrKeepSortedUnordered
	}

	return newArray[T](capacity, opts, nil)
}

// NewOrdered creates an array for an ordered element type, installing the
// natural ordering. Ordered arrays support the keep-sorted policy and
// dispatch Find to binary search while sorted.
func NewOrdered[T cmp.Ordered](capacity int, optFns ...func(o *Options)) (*Array[T], error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return newArray[T](capacity, opts, cmp.Compare[T])
}

func newArray[T comparable](capacity int, opts Options, compare func(a, b T) int) (*Array[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Array[T]{
		data:       make([]T, capacity),
		sorted:     true,
		keepSorted: opts.KeepSorted,
		growable:   opts.Growable,
		compare:    compare,
	}, nil
}

// NewFrom creates an independent copy of other. The copy's capacity is
// 2*other.Len(), clamped to at least 1; the allocation matches the
// reported capacity exactly.
func NewFrom[T comparable](other *Array[T]) *Array[T] {
	capacity := 2 * other.used
	if capacity < 1 {
		capacity = 1
	}

	a := &Array[T]{
		data:       make([]T, capacity),
		used:       other.used,
		sorted:     other.sorted,
		keepSorted: other.keepSorted,
		growable:   other.growable,
		compare:    other.compare,
	}
	copy(a.data, other.data[:other.used])

	return a
}

// NewFromCapacity creates an independent copy of other with exactly the
// given capacity. The capacity must exceed other's live element count.
func NewFromCapacity[T comparable](other *Array[T], capacity int) (*Array[T], error) {
	if capacity <= other.used {
		return nil, fmt.Errorf("%w: %d does not exceed used size %d", ErrInvalidCapacity, capacity, other.used)
	}

	a := &Array[T]{
		data:       make([]T, capacity),
		used:       other.used,
		sorted:     other.sorted,
		keepSorted: other.keepSorted,
		growable:   other.growable,
		compare:    other.compare,
	}
	copy(a.data, other.data[:other.used])

	return a, nil
}

// Insert appends v to the end of the live prefix and returns its index.
//
// A full growable array doubles its capacity first; a full non-growable
// array returns ErrCapacityExceeded. With the keep-sorted policy the whole
// live range is re-sorted before returning; otherwise the sortedness flag
// is invalidated unconditionally.
func (a *Array[T]) Insert(v T) (int, error) {
	if err := a.ensureRoom(); err != nil {
		return -1, err
	}

	a.data[a.used] = v
	a.used++

	if a.keepSorted {
		a.insertionSort()
	} else {
		a.sorted = false
	}

	return a.used - 1, nil
}

// InsertAt inserts v at index, shifting the live elements [index, used)
// one slot right. index may equal the used size (append position).
func (a *Array[T]) InsertAt(v T, index int) error {
	if index < 0 || index > a.used {
		return fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, index, a.used)
	}

	if err := a.ensureRoom(); err != nil {
		return err
	}

	// Shift top-down so no unshifted element is overwritten.
	for i := a.used; i > index; i-- {
		a.data[i] = a.data[i-1]
	}

	a.data[index] = v
	a.used++

	if a.keepSorted {
		a.insertionSort()
	} else {
		a.sorted = false
	}

	return nil
}

func (a *Array[T]) ensureRoom() error {
	if a.used < len(a.data) {
		return nil
	}
	if !a.growable {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(a.data))
	}
	return a.Resize(2 * len(a.data))
}

// RemoveElement removes the first occurrence of v found by Find and
// returns its former index, or -1 if v is absent (no mutation).
func (a *Array[T]) RemoveElement(v T) int {
	index := a.Find(v)
	if index < 0 {
		return -1
	}

	_, _ = a.RemoveAt(index) // index is live, cannot fail

	return index
}

// RemoveAt removes and returns the element at index, shifting the live
// elements [index+1, used) one slot left. Only live slots are read during
// the shift. The sortedness flag is untouched: removal from a sorted range
// keeps it sorted, removal from an unsorted range leaves it unsorted.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	var zero T

	if index < 0 || index >= a.used {
		return zero, fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, index, a.used)
	}

	removed := a.data[index]
	copy(a.data[index:a.used-1], a.data[index+1:a.used])
	a.used--
	a.data[a.used] = zero // release the dead slot for the GC

	return removed, nil
}

// Swap exchanges the elements at the two indices and invalidates the
// sortedness flag.
func (a *Array[T]) Swap(i, j int) error {
	if i < 0 || i >= a.used {
		return fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, i, a.used)
	}
	if j < 0 || j >= a.used {
		return fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, j, a.used)
	}

	a.data[i], a.data[j] = a.data[j], a.data[i]
	a.sorted = false

	return nil
}

// Clear drops all live elements, keeping the capacity.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.used; i++ {
		a.data[i] = zero
	}
	a.used = 0
	a.sorted = true
}

// Reset drops all live elements and reallocates the backing store to the
// given capacity.
func (a *Array[T]) Reset(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	a.data = make([]T, capacity)
	a.used = 0
	a.sorted = true

	return nil
}

// Resize grows the backing store to the given capacity, which must be
// strictly larger than the current one, moving the live elements in order.
// Element order, and therefore the sortedness flag, is preserved.
func (a *Array[T]) Resize(capacity int) error {
	if capacity < a.used || capacity <= len(a.data) {
		return fmt.Errorf("%w: %d (used %d, capacity %d)", ErrInvalidCapacity, capacity, a.used, len(a.data))
	}

	fresh := make([]T, capacity)
	copy(fresh, a.data[:a.used])
	a.data = fresh

	return nil
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.used {
		return zero, fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, index, a.used)
	}
	return a.data[index], nil
}

// First returns the first live element.
func (a *Array[T]) First() (T, error) {
	var zero T
	if a.used == 0 {
		return zero, ErrEmpty
	}
	return a.data[0], nil
}

// Last returns the last live element.
func (a *Array[T]) Last() (T, error) {
	var zero T
	if a.used == 0 {
		return zero, ErrEmpty
	}
	return a.data[a.used-1], nil
}

// Set overwrites the element at index. The sortedness flag is
// invalidated.
func (a *Array[T]) Set(index int, v T) error {
	if index < 0 || index >= a.used {
		return fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, index, a.used)
	}

	a.data[index] = v
	a.sorted = false

	return nil
}

// SubArray returns a new, independently owned array holding a copy of the
// live elements [from, to). Requires from < to < used.
func (a *Array[T]) SubArray(from, to int) (*Array[T], error) {
	if from < 0 || from >= to {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, from, to)
	}
	if to >= a.used {
		return nil, fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, to, a.used)
	}

	sub := &Array[T]{
		data:       make([]T, to-from),
		used:       to - from,
		sorted:     a.sorted,
		keepSorted: a.keepSorted,
		growable:   a.growable,
		compare:    a.compare,
	}
	copy(sub.data, a.data[from:to])

	return sub, nil
}

// Equal reports whether both arrays hold the same live elements in the
// same storage order. Capacity and policy flags do not participate.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a.used != other.used {
		return false
	}

	for i := 0; i < a.used; i++ {
		if a.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.used }

// Cap returns the allocated capacity.
func (a *Array[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether the array holds no live elements.
func (a *Array[T]) IsEmpty() bool { return a.used == 0 }

// IsSorted reports the cached sortedness invariant over the live prefix.
func (a *Array[T]) IsSorted() bool { return a.sorted }

// Data returns the live prefix of the backing store without copying.
// The slice is valid until the next capacity-changing or shifting
// mutation.
func (a *Array[T]) Data() []T { return a.data[:a.used] }

// All iterates the live elements in storage order. The iterator is
// invalidated by any capacity-changing or shifting mutation.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.used; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// String renders the array as "Array(e0, e1, ..., eN-1)\n". The empty
// array renders as "Array()\n".
func (a *Array[T]) String() string {
	b := strbuf.New(8 + 4*a.used)
	b.AppendString("Array(")

	for i := 0; i < a.used; i++ {
		if i > 0 {
			b.AppendString(", ")
		}
		b.AppendString(fmt.Sprint(a.data[i]))
	}

	b.AppendString(")\n")

	return b.String()
}
