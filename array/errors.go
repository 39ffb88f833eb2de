package array

import "errors"

var (
	// ErrInvalidCapacity is returned when a capacity is not positive, or
	// does not satisfy a constructor's sizing requirement.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrCapacityExceeded is returned when an insertion would exceed the
	// capacity of a non-growable array.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrIndexOutOfRange is returned for an index outside the live range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned for an empty or inverted index range.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmpty is returned by First/Last on an empty array.
	ErrEmpty = errors.New("array is empty")

	// ErrUnsorted is returned when binary search is requested explicitly
	// on an array whose sortedness invariant does not hold.
	ErrUnsorted = errors.New("array is not sorted")

	// ErrKeepSortedUnordered is returned by New when the keep-sorted
	// policy is requested: the policy needs an element ordering and is
	// only reachable through NewOrdered.
	ErrKeepSortedUnordered = errors.New("keep-sorted requires an ordered element type")

	// ErrUnknownAlgorithm is returned for a sort or search algorithm value
	// this package does not implement.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidSnapshot is returned by Load for data that is not a
	// well-formed snapshot.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
