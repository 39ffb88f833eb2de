package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV1a(t *testing.T) {
	// Known vectors for 64-bit FNV-1a.
	assert.Equal(t, uint64(0xcbf29ce484222325), FNV1a(""))
	assert.Equal(t, uint64(0xaf63dc4c8601ec8c), FNV1a("a"))

	assert.NotEqual(t, FNV1a("foo"), FNV1a("bar"))
}

func TestDJB2(t *testing.T) {
	assert.Equal(t, uint64(5381), DJB2(""))

	// hash("a") = 5381*33 + 'a'
	assert.Equal(t, uint64(5381*33+'a'), DJB2("a"))
	assert.NotEqual(t, DJB2("foo"), DJB2("bar"))
}

func TestSDBM(t *testing.T) {
	// Always odd by construction.
	for _, s := range []string{"", "a", "foo", "hello world"} {
		assert.Equal(t, uint64(1), SDBM(s)&1, "SDBM(%q) must be odd", s)
	}

	// High bit is masked off.
	for _, s := range []string{"foo", "bar", "longer input with spaces"} {
		assert.Zero(t, SDBM(s)>>63)
	}

	assert.NotEqual(t, SDBM("foo"), SDBM("bar"))
}

func TestDeterminism(t *testing.T) {
	for _, s := range []string{"", "k", "some-key", "another-key"} {
		assert.Equal(t, FNV1a(s), FNV1a(s))
		assert.Equal(t, DJB2(s), DJB2(s))
		assert.Equal(t, SDBM(s), SDBM(s))
	}
}
