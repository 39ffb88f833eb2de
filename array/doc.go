// Package array implements a growable random-access container with a
// cached sortedness invariant and algorithm dispatch for sorting and
// searching.
//
// # Architecture
//
//   - Backing store: a heap slice sized exactly to the capacity; the live
//     prefix [0, used) holds the elements, slots beyond it are dead and are
//     never read or compared
//   - Sortedness flag: cached invariant over the live prefix, transitioned
//     by every mutating operation and by sort completion
//   - Policies, fixed at construction: keep-sorted (every insertion
//     re-establishes full sortedness) and growable (capacity doubles on
//     demand instead of failing)
//
// # Ordering
//
// Array itself only requires comparable elements. Operations that need an
// ordering are gated at compile time: Sort is a package function
// constrained to cmp.Ordered, and the keep-sorted policy is only reachable
// through NewOrdered. Arrays built by NewOrdered (or sorted once through
// Sort) carry the element ordering and dispatch Find to binary search
// while sorted; arrays built by New always use the bidirectional scan.
//
// # Errors
//
// Precondition violations (out-of-range index, capacity exceeded on a
// non-growable array, binary search on an unsorted array) surface as
// errors; they are not disabled in release builds. The only sentinel
// results are the -1 "not found" returns of Find and RemoveElement.
//
// Array is not safe for concurrent use; callers wrap access with syncx or
// plain sync primitives.
package array
