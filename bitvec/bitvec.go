package bitvec

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/hupe1980/gotl/strbuf"
)

var (
	// ErrInvalidSize is returned when a size is not positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrIndexOutOfRange is returned for a bit index outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSizeMismatch is returned by bitwise operations on vectors of
	// different sizes.
	ErrSizeMismatch = errors.New("size mismatch")
)

// BitVec is a fixed-size vector of bits. The size is set at construction
// and never changes; bits in the last word beyond the size stay zero, so
// Count never needs masking.
type BitVec struct {
	words []uint64
	size  int
}

// New creates a vector of size bits, all unset.
func New(size int) (*BitVec, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &BitVec{
		words: make([]uint64, (size+63)/64),
		size:  size,
	}, nil
}

// NewFrom creates an independent copy of other.
func NewFrom(other *BitVec) *BitVec {
	words := make([]uint64, len(other.words))
	copy(words, other.words)

	return &BitVec{words: words, size: other.size}
}

func (b *BitVec) check(index int) error {
	if index < 0 || index >= b.size {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, b.size)
	}
	return nil
}

// Set sets the bit at index.
func (b *BitVec) Set(index int) error {
	if err := b.check(index); err != nil {
		return err
	}

	b.words[index>>6] |= 1 << (index & 63)

	return nil
}

// Unset clears the bit at index.
func (b *BitVec) Unset(index int) error {
	if err := b.check(index); err != nil {
		return err
	}

	b.words[index>>6] &^= 1 << (index & 63)

	return nil
}

// Flip inverts the bit at index.
func (b *BitVec) Flip(index int) error {
	if err := b.check(index); err != nil {
		return err
	}

	b.words[index>>6] ^= 1 << (index & 63)

	return nil
}

// Test reports whether the bit at index is set.
func (b *BitVec) Test(index int) (bool, error) {
	if err := b.check(index); err != nil {
		return false, err
	}

	return b.words[index>>6]&(1<<(index&63)) != 0, nil
}

// Count returns the number of set bits.
func (b *BitVec) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// None reports whether no bit is set.
func (b *BitVec) None() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (b *BitVec) Any() bool { return !b.None() }

// Reset clears all bits.
func (b *BitVec) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// And returns a new vector holding the bitwise intersection. Both vectors
// must have the same size.
func (b *BitVec) And(other *BitVec) (*BitVec, error) {
	if b.size != other.size {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, b.size, other.size)
	}

	out := &BitVec{
		words: make([]uint64, len(b.words)),
		size:  b.size,
	}
	for i := range b.words {
		out.words[i] = b.words[i] & other.words[i]
	}

	return out, nil
}

// Equal reports whether both vectors have the same size and the same bits
// set.
func (b *BitVec) Equal(other *BitVec) bool {
	if b.size != other.size {
		return false
	}

	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// Len returns the fixed size in bits.
func (b *BitVec) Len() int { return b.size }

// String renders the vector as "BitVec(0110...)\n", bit 0 first.
func (b *BitVec) String() string {
	buf := strbuf.New(10 + b.size)
	buf.AppendString("BitVec(")

	for i := 0; i < b.size; i++ {
		if b.words[i>>6]&(1<<(i&63)) != 0 {
			buf.AppendByte('1')
		} else {
			buf.AppendByte('0')
		}
	}

	buf.AppendString(")\n")

	return buf.String()
}
