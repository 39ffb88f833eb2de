package syncx

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSharedLock_ConcurrentReaders(t *testing.T) {
	var l SharedLock

	var active, peak atomic.Int32

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			l.StartRead()
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			active.Add(-1)
			l.EndRead()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Readers must have overlapped.
	assert.Greater(t, peak.Load(), int32(1))
}

func TestSharedLock_WriterExcludes(t *testing.T) {
	var l SharedLock

	counter := 0

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 500; j++ {
				l.StartWrite()
				counter++
				l.EndWrite()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 4000, counter)
}

func TestSharedLock_WriterBlocksNewReaders(t *testing.T) {
	var l SharedLock

	l.StartRead() // hold a read so the writer queues up

	writerIn := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		close(writerIn)
		l.StartWrite()
		l.EndWrite()
		close(writerDone)
	}()

	<-writerIn
	time.Sleep(10 * time.Millisecond) // let the writer register intent

	readerDone := make(chan struct{})
	go func() {
		// Arrives after the writer registered: must wait behind it.
		l.StartRead()
		l.EndRead()
		close(readerDone)
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-readerDone:
		t.Fatal("reader got in ahead of a registered writer")
	default:
	}

	l.EndRead() // release the initial read; writer goes first

	select {
	case <-writerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("writer never acquired the lock")
	}

	select {
	case <-readerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("reader never acquired the lock")
	}
}

func TestSharedLock_ReadersAndWriters(t *testing.T) {
	var l SharedLock

	value := 0

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				l.StartWrite()
				value++
				l.EndWrite()
			}
			return nil
		})
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				l.StartRead()
				_ = value
				l.EndRead()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 800, value)
}
