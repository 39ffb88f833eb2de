// Package strbuf implements a growable string buffer with typed append
// operations, in-place replacement and case conversion, and FNV-1a
// hashing.
//
// The other container packages render their String() form through a
// Buffer. A Buffer tracks an explicit length over a heap-allocated byte
// store and doubles its capacity on demand, the same growth discipline the
// array package uses.
package strbuf

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/hupe1980/gotl/internal/hash"
)

// Buffer is a growable byte buffer. The zero value is ready to use.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// New creates a Buffer with the given initial capacity.
// Non-positive capacities allocate nothing; the buffer grows on first
// append.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		return &Buffer{}
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// NewString creates a Buffer initialized with s.
func NewString(s string) *Buffer {
	b := New(len(s))
	return b.AppendString(s)
}

// grow ensures room for n more bytes, doubling the capacity when the
// current store is too small.
func (b *Buffer) grow(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	newCap := 2 * cap(b.buf)
	if newCap < len(b.buf)+n {
		newCap = len(b.buf) + n
	}
	if newCap < 8 {
		newCap = 8
	}
	fresh := make([]byte, len(b.buf), newCap)
	copy(fresh, b.buf)
	b.buf = fresh
}

// AppendString appends s.
func (b *Buffer) AppendString(s string) *Buffer {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
	return b
}

// AppendBytes appends p.
func (b *Buffer) AppendBytes(p []byte) *Buffer {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
	return b
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) *Buffer {
	b.grow(1)
	b.buf = append(b.buf, c)
	return b
}

// AppendRune appends the UTF-8 encoding of r.
func (b *Buffer) AppendRune(r rune) *Buffer {
	b.grow(4)
	b.buf = append(b.buf, string(r)...)
	return b
}

// AppendInt appends the decimal representation of i.
func (b *Buffer) AppendInt(i int64) *Buffer {
	b.grow(20)
	b.buf = strconv.AppendInt(b.buf, i, 10)
	return b
}

// AppendUint appends the decimal representation of u.
func (b *Buffer) AppendUint(u uint64) *Buffer {
	b.grow(20)
	b.buf = strconv.AppendUint(b.buf, u, 10)
	return b
}

// AppendFloat appends the shortest representation of f that parses back
// exactly.
func (b *Buffer) AppendFloat(f float64) *Buffer {
	b.grow(24)
	b.buf = strconv.AppendFloat(b.buf, f, 'g', -1, 64)
	return b
}

// AppendBool appends "true" or "false".
func (b *Buffer) AppendBool(v bool) *Buffer {
	b.grow(5)
	b.buf = strconv.AppendBool(b.buf, v)
	return b
}

// Replace replaces all occurrences of old with new.
func (b *Buffer) Replace(old, new string) *Buffer {
	if old == "" {
		return b
	}
	b.buf = bytes.ReplaceAll(b.buf, []byte(old), []byte(new))
	return b
}

// ReplaceByte replaces all occurrences of old with new.
func (b *Buffer) ReplaceByte(old, new byte) *Buffer {
	for i := range b.buf {
		if b.buf[i] == old {
			b.buf[i] = new
		}
	}
	return b
}

// ToLower lowercases the buffer contents.
func (b *Buffer) ToLower() *Buffer {
	b.buf = []byte(strings.ToLower(string(b.buf)))
	return b
}

// ToUpper uppercases the buffer contents.
func (b *Buffer) ToUpper() *Buffer {
	b.buf = []byte(strings.ToUpper(string(b.buf)))
	return b
}

// Hash returns the 64-bit FNV-1a hash of the buffer contents.
func (b *Buffer) Hash() uint64 {
	return hash.FNV1a(string(b.buf))
}

// String returns the buffer contents as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Bytes returns the underlying byte store. The slice is valid until the
// next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Reset truncates the buffer to zero length, keeping the allocation.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Equal reports whether both buffers hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.buf, other.buf)
}
