package syncx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCondition_SignalWakesWaiter(t *testing.T) {
	var l Lock
	c := NewCondition(&l)

	ready := false
	done := make(chan struct{})

	go func() {
		l.Acquire()
		for !ready {
			c.Wait()
		}
		l.Release()
		close(done)
	}()

	// Let the waiter reach Wait.
	time.Sleep(10 * time.Millisecond)

	l.Acquire()
	ready = true
	c.Signal()
	l.Release()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter was not woken")
	}
}

func TestCondition_BroadcastWakesAll(t *testing.T) {
	var l Lock
	c := NewCondition(&l)

	ready := false
	woken := 0

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			l.Acquire()
			for !ready {
				c.Wait()
			}
			woken++
			l.Release()
			return nil
		})
	}

	time.Sleep(10 * time.Millisecond)

	l.Acquire()
	ready = true
	c.Broadcast()
	l.Release()

	require.NoError(t, g.Wait())
	assert.Equal(t, 4, woken)
}
