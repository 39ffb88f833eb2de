package syncx

import "sync"

// Condition is a condition variable bound to a Lock.
type Condition struct {
	cond *sync.Cond
}

// NewCondition creates a condition variable waiting on l.
func NewCondition(l *Lock) *Condition {
	return &Condition{
		cond: sync.NewCond(&l.mu),
	}
}

// Wait atomically releases the lock and suspends the caller until Signal
// or Broadcast wakes it, then reacquires the lock before returning. The
// caller must hold the lock, and must re-check its predicate in a loop:
// wakeups can be spurious.
func (c *Condition) Wait() {
	c.cond.Wait()
}

// Signal wakes one waiter, if any.
func (c *Condition) Signal() {
	c.cond.Signal()
}

// Broadcast wakes all waiters.
func (c *Condition) Broadcast() {
	c.cond.Broadcast()
}
