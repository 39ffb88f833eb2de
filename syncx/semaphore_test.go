package syncx

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSemaphore(t *testing.T) {
	s := NewSemaphore(2)

	assert.Equal(t, 2, s.Value())

	s.Wait()
	s.Wait()
	assert.Equal(t, 0, s.Value())

	assert.False(t, s.TryWait())

	s.Post()
	assert.True(t, s.TryWait())

	s.Post()
	s.Post()
	assert.Equal(t, 2, s.Value())
}

func TestSemaphore_WaitBlocks(t *testing.T) {
	s := NewSemaphore(0)

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned on a zero semaphore")
	case <-time.After(20 * time.Millisecond):
	}

	s.Post()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait never returned after Post")
	}
}

func TestSemaphore_BoundsConcurrency(t *testing.T) {
	s := NewSemaphore(3)

	var active, peak atomic.Int32

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			s.Wait()
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			active.Add(-1)
			s.Post()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Equal(t, 3, s.Value())
}

func TestSemaphore_ZeroValue(t *testing.T) {
	var s Semaphore

	assert.Equal(t, 0, s.Value())
	assert.False(t, s.TryWait())

	s.Post()
	assert.True(t, s.TryWait())
}
