package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundtrip(t *testing.T) {
	type payload struct {
		Name   string `json:"name"`
		Values []int  `json:"values"`
	}

	in := payload{Name: "test", Values: []int{3, 1, 2}}

	data, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCompressRoundtrip(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh01234567"), 256)

	for _, c := range []Compression{None, S2, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			packed, err := Compress(c, data)
			require.NoError(t, err)

			unpacked, err := Decompress(c, packed)
			require.NoError(t, err)
			assert.Equal(t, data, unpacked)

			if c != None {
				assert.Less(t, len(packed), len(data))
			}
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	for _, c := range []Compression{None, S2, LZ4} {
		packed, err := Compress(c, nil)
		require.NoError(t, err)

		unpacked, err := Decompress(c, packed)
		require.NoError(t, err)
		assert.Empty(t, unpacked)
	}
}

func TestUnknownCompression(t *testing.T) {
	_, err := Compress(Compression(99), []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownCompression)

	_, err = Decompress(Compression(99), []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownCompression)
}
