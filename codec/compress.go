package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the compression applied to an encoded payload.
type Compression uint8

const (
	// None stores the payload uncompressed.
	None Compression = iota
	// S2 compresses with the S2 block format (Snappy-compatible family).
	S2
	// LZ4 compresses with the LZ4 frame format.
	LZ4
)

// ErrUnknownCompression is returned for a Compression value this build
// does not understand, e.g. from a snapshot written by a newer version.
var ErrUnknownCompression = errors.New("unknown compression")

// String returns the stable name of the compression scheme.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Compress returns data compressed with the given scheme.
func Compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case S2:
		return s2.Encode(nil, data), nil
	case LZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

// Decompress reverses Compress for the given scheme.
func Decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case S2:
		out, err := s2.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("s2 decompress: %w", err)
		}
		return out, nil
	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}
