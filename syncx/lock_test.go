package syncx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLock(t *testing.T) {
	var l Lock

	l.Acquire()
	assert.False(t, l.TryAcquire())
	l.Release()

	require.True(t, l.TryAcquire())
	l.Release()
}

func TestLock_With(t *testing.T) {
	var l Lock

	counter := 0

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				l.With(func() {
					counter++
				})
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 8000, counter)
}

func TestLock_MutualExclusion(t *testing.T) {
	var l Lock

	counter := 0

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				l.Acquire()
				counter++
				l.Release()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 8000, counter)
}
