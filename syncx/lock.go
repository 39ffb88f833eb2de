package syncx

import "sync"

// Lock is a mutual exclusion lock. The zero value is ready to use.
type Lock struct {
	mu sync.Mutex
}

// Acquire blocks until the lock is held.
func (l *Lock) Acquire() {
	l.mu.Lock()
}

// TryAcquire attempts to take the lock without blocking and reports
// whether it succeeded.
func (l *Lock) TryAcquire() bool {
	return l.mu.TryLock()
}

// Release unlocks the lock. It must be held.
func (l *Lock) Release() {
	l.mu.Unlock()
}

// With runs fn while holding the lock.
func (l *Lock) With(fn func()) {
	l.Acquire()
	defer l.Release()
	fn()
}
