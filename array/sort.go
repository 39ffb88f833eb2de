package array

import (
	"cmp"
	"fmt"
)

// SortAlgorithm selects a sorting strategy.
type SortAlgorithm int

const (
	// Dynamic picks insertion sort for small inputs and mergesort beyond
	// the crossover, where insertion sort's low constant factor stops
	// paying for its quadratic growth.
	Dynamic SortAlgorithm = iota
	// InsertionSort is in-place, O(n^2) worst case, O(n) on nearly-sorted
	// input.
	InsertionSort
	// QuickSort is in-place with a Lomuto partition around the last
	// element of the active range. The fixed pivot degrades to O(n^2) on
	// already-sorted or reverse-sorted input.
	QuickSort
	// MergeSort is not in place: it builds temporary buffers recursively
	// and replaces the backing store. O(n log n), ties broken toward the
	// left half.
	MergeSort
)

// dynamicCrossover is the used size at which Dynamic switches from
// insertion sort to mergesort.
const dynamicCrossover = 64

// Sort sorts the live range of a with the chosen algorithm and installs
// the element ordering on the array, so subsequent Find calls can
// dispatch to binary search. The sortedness flag is set exactly once,
// after the whole range has been processed.
//
// The cmp.Ordered constraint excludes unordered element types at compile
// time.
func Sort[T cmp.Ordered](a *Array[T], algorithm SortAlgorithm) error {
	a.compare = cmp.Compare[T]

	switch algorithm {
	case Dynamic:
		a.dynamicSort()
	case InsertionSort:
		a.insertionSort()
	case QuickSort:
		a.quickSortAll()
	case MergeSort:
		a.mergeSort()
	default:
		return fmt.Errorf("%w: sort %d", ErrUnknownAlgorithm, algorithm)
	}

	return nil
}

// insertionSort sorts the live range in place by shifting. Also the
// keep-sorted re-sort path, so it must leave the flag set itself.
func (a *Array[T]) insertionSort() {
	for i := 1; i < a.used; i++ {
		v := a.data[i]
		j := i - 1
		for j >= 0 && a.compare(a.data[j], v) > 0 {
			a.data[j+1] = a.data[j]
			j--
		}
		a.data[j+1] = v
	}

	a.sorted = true
}

func (a *Array[T]) quickSortAll() {
	if a.used > 0 {
		a.quickSort(0, a.used-1)
	}

	// Set once here: a base-case hit inside the recursion must not mark a
	// partially sorted container as sorted.
	a.sorted = true
}

func (a *Array[T]) quickSort(from, to int) {
	if from >= to {
		return
	}

	p := a.partition(from, to)
	a.quickSort(from, p-1)
	a.quickSort(p+1, to)
}

// partition arranges [from, to] around the last element as pivot and
// returns the pivot's final index (Lomuto scheme). Swaps bypass Swap so
// the sortedness flag stays under quickSortAll's control.
func (a *Array[T]) partition(from, to int) int {
	pivot := a.data[to]
	i := from - 1

	for j := from; j < to; j++ {
		if a.compare(a.data[j], pivot) <= 0 {
			i++
			a.data[i], a.data[j] = a.data[j], a.data[i]
		}
	}

	i++
	a.data[i], a.data[to] = a.data[to], a.data[i]

	return i
}

// mergeSort sorts into freshly built buffers and replaces the backing
// store, preserving the capacity.
func (a *Array[T]) mergeSort() {
	sorted := a.msort(a.data[:a.used])

	fresh := make([]T, len(a.data))
	copy(fresh, sorted)
	a.data = fresh

	a.sorted = true
}

func (a *Array[T]) msort(src []T) []T {
	out := make([]T, len(src))

	if len(src) <= 1 {
		copy(out, src)
		return out
	}

	mid := len(src) / 2
	left := a.msort(src[:mid])
	right := a.msort(src[mid:])

	i, j := 0, 0
	for k := range out {
		// Left wins ties, keeping equal elements in their original
		// relative order.
		if i < len(left) && (j == len(right) || a.compare(left[i], right[j]) <= 0) {
			out[k] = left[i]
			i++
		} else {
			out[k] = right[j]
			j++
		}
	}

	return out
}

func (a *Array[T]) dynamicSort() {
	if a.used > dynamicCrossover {
		a.mergeSort()
	} else {
		a.insertionSort()
	}
}
