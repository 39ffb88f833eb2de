package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.Ints(100, 1000), b.Ints(100, 1000))
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)

	first := r.Ints(10, 100)
	r.Reset()
	second := r.Ints(10, 100)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(7), r.Seed())
}

func TestRNG_IntsRange(t *testing.T) {
	r := NewRNG(1)

	for _, v := range r.Ints(1000, 10) {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestShuffle(t *testing.T) {
	r := NewRNG(3)

	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(r, s)

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)
}

func TestLetters(t *testing.T) {
	r := NewRNG(9)

	s := r.Letters(32)
	require.Len(t, s, 32)

	for _, c := range s {
		require.GreaterOrEqual(t, c, 'a')
		require.LessOrEqual(t, c, 'z')
	}
}
