package syncx

import "sync/atomic"

// Number constrains the element types FetchAdd and FetchSub accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Atomic is a typed atomic cell. The zero value holds the zero value of
// T; all operations are sequentially consistent.
type Atomic[T comparable] struct {
	value atomic.Value
}

type box[T comparable] struct {
	v T
}

// NewAtomic creates an atomic cell holding v.
func NewAtomic[T comparable](v T) *Atomic[T] {
	a := &Atomic[T]{}
	a.value.Store(box[T]{v: v})
	return a
}

// Load returns the current value.
func (a *Atomic[T]) Load() T {
	if b, ok := a.value.Load().(box[T]); ok {
		return b.v
	}

	var zero T
	return zero
}

// Store sets the value.
func (a *Atomic[T]) Store(v T) {
	a.value.Store(box[T]{v: v})
}

// Exchange sets the value and returns the previous one.
func (a *Atomic[T]) Exchange(v T) T {
	if b, ok := a.value.Swap(box[T]{v: v}).(box[T]); ok {
		return b.v
	}

	var zero T
	return zero
}

// CompareExchange sets the value to desired if it currently equals
// expected, and reports whether the exchange happened. It fails only
// when the value actually differs (strong semantics).
func (a *Atomic[T]) CompareExchange(expected, desired T) bool {
	var zero T
	if expected == zero && a.value.Load() == nil {
		// A never-stored cell reads as the zero value.
		if a.value.CompareAndSwap(nil, box[T]{v: desired}) {
			return true
		}
	}

	return a.value.CompareAndSwap(box[T]{v: expected}, box[T]{v: desired})
}

// FetchAdd adds delta to the cell and returns the previous value. The
// Number constraint excludes non-numeric element types at compile time.
func FetchAdd[T Number](a *Atomic[T], delta T) T {
	for {
		old := a.Load()
		if a.CompareExchange(old, old+delta) {
			return old
		}
	}
}

// FetchSub subtracts delta from the cell and returns the previous value.
func FetchSub[T Number](a *Atomic[T], delta T) T {
	return FetchAdd(a, -delta)
}
