package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](l *List[T]) []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func TestList_Empty(t *testing.T) {
	l := New[int]()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	require.NotNil(t, l.Head())
	assert.Equal(t, "List()\n", l.String())
}

func TestList_InsertFront(t *testing.T) {
	l := New[int]()

	l.InsertFront(3)
	l.InsertFront(2)
	l.InsertFront(1)

	assert.Equal(t, []int{1, 2, 3}, collect(l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Front().Value())
	assert.Equal(t, 3, l.Back().Value())
}

func TestList_InsertBack(t *testing.T) {
	l := New[int]()

	l.InsertBack(1)
	l.InsertBack(2)
	l.InsertBack(3)

	assert.Equal(t, []int{1, 2, 3}, collect(l))
	assert.Equal(t, 3, l.Back().Value())
}

func TestList_InsertAfter(t *testing.T) {
	l := New[int]()

	l.InsertBack(1)
	l.InsertBack(3)

	node := l.Find(1)
	require.NotNil(t, node)

	_, err := l.InsertAfter(node, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, collect(l))

	// Sentinel anchors the first position.
	_, err = l.InsertAfter(l.Head(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, collect(l))

	// After the tail updates the back pointer.
	_, err = l.InsertAfter(l.Back(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Back().Value())

	_, err = l.InsertAfter(nil, 9)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestList_RemoveElement(t *testing.T) {
	l := New[int]()

	for _, v := range []int{1, 2, 3, 2} {
		l.InsertBack(v)
	}

	assert.True(t, l.RemoveElement(2))
	assert.Equal(t, []int{1, 3, 2}, collect(l))
	assert.Equal(t, 3, l.Len())

	// A miss must not change the size.
	assert.False(t, l.RemoveElement(9))
	assert.Equal(t, 3, l.Len())

	// Removing the tail moves the back pointer.
	assert.True(t, l.RemoveElement(2))
	assert.Equal(t, 3, l.Back().Value())
}

func TestList_RemoveAfter(t *testing.T) {
	l := New[int]()

	for _, v := range []int{1, 2, 3} {
		l.InsertBack(v)
	}

	v, err := l.RemoveAfter(l.Head())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, collect(l))

	_, err = l.RemoveAfter(l.Back())
	assert.ErrorIs(t, err, ErrNoSuccessor)

	_, err = l.RemoveAfter(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestList_RemoveLastRestoresEmpty(t *testing.T) {
	l := New[int]()

	l.InsertBack(1)

	_, err := l.RemoveAfter(l.Head())
	require.NoError(t, err)

	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Back())

	// The list must still accept back insertions.
	l.InsertBack(2)
	assert.Equal(t, []int{2}, collect(l))
}

func TestList_Find(t *testing.T) {
	l := New[string]()

	l.InsertBack("a")
	l.InsertBack("b")

	node := l.Find("b")
	require.NotNil(t, node)
	assert.Equal(t, "b", node.Value())
	assert.Nil(t, node.Next())

	assert.Nil(t, l.Find("c"))
}

func TestList_Clear(t *testing.T) {
	l := New[int]()

	l.InsertBack(1)
	l.InsertBack(2)

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())

	l.InsertBack(3)
	assert.Equal(t, []int{3}, collect(l))
}

func TestList_Equal(t *testing.T) {
	a := New[int]()
	b := New[int]()

	for _, v := range []int{1, 2, 3} {
		a.InsertBack(v)
		b.InsertBack(v)
	}

	assert.True(t, a.Equal(b))

	b.InsertBack(4)
	assert.False(t, a.Equal(b))

	require.True(t, b.RemoveElement(1))
	assert.False(t, a.Equal(b))
}

func TestList_NewFrom(t *testing.T) {
	a := New[int]()
	for _, v := range []int{1, 2, 3} {
		a.InsertBack(v)
	}

	b := NewFrom(a)
	assert.True(t, a.Equal(b))

	b.InsertBack(4)
	assert.Equal(t, []int{1, 2, 3}, collect(a))
}

func TestList_String(t *testing.T) {
	l := New[int]()

	for _, v := range []int{8, 16, 32} {
		l.InsertBack(v)
	}

	assert.Equal(t, "List(8, 16, 32)\n", l.String())
}
