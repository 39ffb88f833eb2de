// Package syncx provides synchronization primitives: a plain mutual
// exclusion Lock with a scoped helper, a Condition bound to a Lock, a
// writer-priority SharedLock, a counting Semaphore, and a typed Atomic
// cell.
//
// All operations are sequentially consistent; Go's memory model exposes
// no per-operation ordering, so there is nothing weaker to select. For
// the same reason there is only one compare-and-swap, with the semantics
// of a strong CAS: it fails only when the value actually differs.
package syncx
