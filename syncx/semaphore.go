package syncx

import "sync"

// Semaphore is a counting semaphore. Unlike a mutex it has no owner: any
// goroutine may Post, including one that never called Wait.
type Semaphore struct {
	mu    sync.Mutex
	once  sync.Once
	posted *sync.Cond
	value int
}

// NewSemaphore creates a semaphore with the given initial value.
func NewSemaphore(value int) *Semaphore {
	s := &Semaphore{value: value}
	s.init()
	return s
}

func (s *Semaphore) init() {
	s.once.Do(func() {
		s.posted = sync.NewCond(&s.mu)
	})
}

// Wait decrements the semaphore, blocking while the value is zero.
func (s *Semaphore) Wait() {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.value == 0 {
		s.posted.Wait()
	}
	s.value--
}

// TryWait decrements the semaphore without blocking and reports whether
// it succeeded.
func (s *Semaphore) TryWait() bool {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == 0 {
		return false
	}
	s.value--

	return true
}

// Post increments the semaphore and wakes one waiter.
func (s *Semaphore) Post() {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value++
	s.posted.Signal()
}

// Value returns the current value. It is a snapshot: by the time the
// caller looks at it, it may already be stale.
func (s *Semaphore) Value() int {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}
