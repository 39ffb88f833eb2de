package array

import "fmt"

// SearchAlgorithm selects a searching strategy for FindRange.
type SearchAlgorithm int

const (
	// BinarySearch halves the active range recursively. Requires the
	// sortedness invariant to hold.
	BinarySearch SearchAlgorithm = iota
	// FrontBackSearch advances two cursors from both ends toward the
	// middle, roughly halving the expected scan length of a
	// single-direction scan at the same worst-case cost.
	FrontBackSearch
)

// Find returns the index of v in the live range, or -1.
//
// An empty array returns -1 immediately. A sorted array with an installed
// element ordering (NewOrdered, or any array sorted through Sort) uses
// binary search; every other array uses the bidirectional scan.
func (a *Array[T]) Find(v T) int {
	if a.used == 0 {
		return -1
	}

	if a.sorted && a.compare != nil {
		return a.binarySearch(v, 0, a.used-1)
	}

	return a.frontBackSearch(v, 0, a.used-1)
}

// FindRange searches the inclusive index range [from, to] with an
// explicit strategy.
//
// BinarySearch on an unsorted array returns ErrUnsorted; on an array
// without an installed element ordering it falls back to the
// bidirectional scan.
func (a *Array[T]) FindRange(v T, from, to int, algorithm SearchAlgorithm) (int, error) {
	if a.used == 0 {
		return -1, nil
	}
	if from < 0 || from >= a.used {
		return -1, fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, from, a.used)
	}
	if to < from || to >= a.used {
		return -1, fmt.Errorf("%w: %d (used %d)", ErrIndexOutOfRange, to, a.used)
	}

	switch algorithm {
	case BinarySearch:
		if !a.sorted {
			return -1, ErrUnsorted
		}
		if a.compare == nil {
			return a.frontBackSearch(v, from, to), nil
		}
		return a.binarySearch(v, from, to), nil
	case FrontBackSearch:
		return a.frontBackSearch(v, from, to), nil
	default:
		return -1, fmt.Errorf("%w: search %d", ErrUnknownAlgorithm, algorithm)
	}
}

// Neighbors locates v and returns pointers to the elements immediately
// adjacent in storage order: left is the element at index-1, right the
// true successor at index+1. Either is nil at the corresponding boundary,
// and both are nil when v is absent. Only on a sorted array are these the
// semantic predecessor and successor.
//
// The pointers alias the backing store and are invalidated by any
// capacity-changing or shifting mutation.
func (a *Array[T]) Neighbors(v T) (left, right *T) {
	index := a.Find(v)
	if index < 0 {
		return nil, nil
	}

	if index > 0 {
		left = &a.data[index-1]
	}
	if index+1 < a.used {
		right = &a.data[index+1]
	}

	return left, right
}

func (a *Array[T]) binarySearch(v T, from, to int) int {
	if from > to {
		return -1
	}

	mid := (from + to) / 2

	switch c := a.compare(v, a.data[mid]); {
	case c < 0:
		return a.binarySearch(v, from, mid-1)
	case c > 0:
		return a.binarySearch(v, mid+1, to)
	default:
		return mid
	}
}

func (a *Array[T]) frontBackSearch(v T, from, to int) int {
	for from <= to {
		if a.data[from] == v {
			return from
		}
		if a.data[to] == v {
			return to
		}
		from++
		to--
	}

	return -1
}
