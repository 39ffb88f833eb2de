package syncx

import "sync"

// SharedLock is a reader/writer lock that favors writers: a writer
// registers its intent before waiting, and arriving readers block while
// any writer is registered, so a continuous stream of readers cannot
// starve writers. The price is the mirror image: readers can be starved
// by a continuous stream of writers.
//
// The zero value is ready to use. It is not reentrant.
type SharedLock struct {
	mu   sync.Mutex
	once sync.Once

	noWritersLeft *sync.Cond // readers wait here while writers are registered
	onlyAccess    *sync.Cond // writers wait here for exclusive access

	readers int
	writers int // registered writers, waiting or writing
	writing bool
}

func (l *SharedLock) init() {
	l.once.Do(func() {
		l.noWritersLeft = sync.NewCond(&l.mu)
		l.onlyAccess = sync.NewCond(&l.mu)
	})
}

// StartRead acquires the lock for shared access, blocking while any
// writer is registered.
func (l *SharedLock) StartRead() {
	l.init()
	l.mu.Lock()
	defer l.mu.Unlock()

	for l.writers != 0 {
		l.noWritersLeft.Wait()
	}
	l.readers++
}

// EndRead releases a shared hold. The last reader out hands over to the
// waiting writers.
func (l *SharedLock) EndRead() {
	l.init()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.readers--
	if l.readers == 0 && l.writers > 0 {
		l.onlyAccess.Broadcast()
	}
}

// StartWrite acquires the lock for exclusive access. Intent is registered
// before waiting, which is what blocks new readers.
func (l *SharedLock) StartWrite() {
	l.init()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writers++
	for l.readers != 0 || l.writing {
		l.onlyAccess.Wait()
	}
	l.writing = true
}

// EndWrite releases exclusive access, handing over to the next waiting
// writer if one is registered, and to the readers otherwise.
func (l *SharedLock) EndWrite() {
	l.init()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writers--
	l.writing = false
	if l.writers > 0 {
		l.onlyAccess.Broadcast()
	} else {
		l.noWritersLeft.Broadcast()
	}
}
