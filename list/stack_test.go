package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack[int]()

	assert.True(t, s.IsEmpty())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(t, 3, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	// LIFO order.
	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.True(t, s.IsEmpty())
}

func TestStack_Empty(t *testing.T) {
	s := NewStack[string]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStack_Interleaved(t *testing.T) {
	s := NewStack[int]()

	s.Push(1)
	s.Push(2)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	s.Push(3)

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
