// Package gotl provides general-purpose generic containers and small
// synchronization primitives for Go.
//
// The core of the library is the growable random-access container
// [github.com/hupe1980/gotl/array.Array]: a contiguous, capacity-tracked
// store that keeps a cached sortedness invariant across every mutation and
// dispatches between four sorting strategies and two searching strategies
// based on that invariant and on input size.
//
// # Packages
//
//   - array: growable random-access container with sort/search dispatch
//   - list: singly linked list plus Stack (LIFO) and Queue (FIFO) adapters
//   - bitvec: fixed-size bit vector and a Roaring-backed sparse set
//   - strbuf: growable string buffer with typed append and FNV-1a hashing
//   - hashmap: open-addressing hash map with pluggable hash algorithms
//   - syncx: Lock, Condition, writer-priority SharedLock, Semaphore, Atomic
//   - codec: snapshot encoding with optional S2/LZ4 compression
//
// # Quick Start
//
//	a, err := array.NewOrdered[int](8)
//	if err != nil {
//		panic(err)
//	}
//	for _, v := range []int{4, 2, 8, 6} {
//		if _, err := a.Insert(v); err != nil {
//			panic(err)
//		}
//	}
//	array.Sort(a, array.QuickSort)
//	idx := a.Find(6) // binary search, the array is sorted
//
// Containers are not safe for concurrent use. Callers that share a
// container across goroutines wrap access with the primitives in syncx
// (or plain sync); the containers never lock internally.
package gotl
