package array

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/gotl/codec"
)

const (
	snapshotMagic   = "GTLA"
	snapshotVersion = 1
)

// SnapshotOptions configures Save.
type SnapshotOptions struct {
	// Codec encodes the snapshot payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression is applied to the encoded payload. Defaults to
	// codec.None.
	Compression codec.Compression
}

// snapshot is the serialized form of an array. Capacity and the policy
// flags round-trip; the element ordering does not and is re-installed by
// the loader.
type snapshot[T any] struct {
	Capacity   int  `json:"capacity"`
	Used       int  `json:"used"`
	Sorted     bool `json:"sorted"`
	KeepSorted bool `json:"keep_sorted"`
	Growable   bool `json:"growable"`
	Elements   []T  `json:"elements"`
}

// Save writes a self-describing snapshot of a to w. The header records the
// codec name and compression scheme, so Load needs no out-of-band
// configuration.
func Save[T comparable](a *Array[T], w io.Writer, optFns ...func(o *SnapshotOptions)) error {
	opts := SnapshotOptions{
		Codec:       codec.Default,
		Compression: codec.None,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	snap := snapshot[T]{
		Capacity:   len(a.data),
		Used:       a.used,
		Sorted:     a.sorted,
		KeepSorted: a.keepSorted,
		Growable:   a.growable,
		Elements:   a.data[:a.used],
	}

	payload, err := opts.Codec.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	payload, err = codec.Compress(opts.Compression, payload)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	name := opts.Codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("%w: codec name %q too long", ErrInvalidSnapshot, name)
	}

	header := make([]byte, 0, len(snapshotMagic)+3+len(name)+8)
	header = append(header, snapshotMagic...)
	header = append(header, snapshotVersion, byte(len(name)))
	header = append(header, name...)
	header = append(header, byte(opts.Compression))
	header = binary.LittleEndian.AppendUint64(header, uint64(len(payload)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write snapshot payload: %w", err)
	}

	return nil
}

// Load restores an array written by Save. Snapshots taken from a
// keep-sorted array cannot be restored without an element ordering and
// return ErrKeepSortedUnordered; use LoadOrdered for those.
func Load[T comparable](r io.Reader) (*Array[T], error) {
	snap, err := readSnapshot[T](r)
	if err != nil {
		return nil, err
	}

	if snap.KeepSorted {
		return nil, ErrKeepSortedUnordered
	}

	return restore(snap, nil)
}

// LoadOrdered restores an array written by Save, installing the natural
// element ordering. Required for keep-sorted snapshots; for any other
// snapshot it additionally re-enables binary search dispatch.
func LoadOrdered[T cmp.Ordered](r io.Reader) (*Array[T], error) {
	snap, err := readSnapshot[T](r)
	if err != nil {
		return nil, err
	}

	return restore(snap, cmp.Compare[T])
}

func restore[T comparable](snap snapshot[T], compare func(a, b T) int) (*Array[T], error) {
	a := &Array[T]{
		data:       make([]T, snap.Capacity),
		used:       snap.Used,
		sorted:     snap.Sorted,
		keepSorted: snap.KeepSorted,
		growable:   snap.Growable,
		compare:    compare,
	}
	copy(a.data, snap.Elements)

	return a, nil
}

func readSnapshot[T comparable](r io.Reader) (snapshot[T], error) {
	var snap snapshot[T]

	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return snap, fmt.Errorf("read snapshot magic: %w", err)
	}
	if string(magic) != snapshotMagic {
		return snap, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, magic)
	}

	var meta [2]byte
	if _, err := io.ReadFull(r, meta[:]); err != nil {
		return snap, fmt.Errorf("read snapshot header: %w", err)
	}
	if meta[0] != snapshotVersion {
		return snap, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, meta[0])
	}

	name := make([]byte, meta[1])
	if _, err := io.ReadFull(r, name); err != nil {
		return snap, fmt.Errorf("read snapshot header: %w", err)
	}

	c, ok := codec.ByName(string(name))
	if !ok {
		return snap, fmt.Errorf("%w: unknown codec %q", ErrInvalidSnapshot, name)
	}

	var tail [9]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return snap, fmt.Errorf("read snapshot header: %w", err)
	}

	compression := codec.Compression(tail[0])
	size := binary.LittleEndian.Uint64(tail[1:])

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return snap, fmt.Errorf("read snapshot payload: %w", err)
	}

	payload, err := codec.Decompress(compression, payload)
	if err != nil {
		return snap, fmt.Errorf("decompress snapshot: %w", err)
	}

	if err := c.Unmarshal(payload, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}

	if snap.Capacity <= 0 || snap.Used < 0 || snap.Used > snap.Capacity || len(snap.Elements) != snap.Used {
		return snap, fmt.Errorf("%w: capacity %d, used %d, %d elements", ErrInvalidSnapshot, snap.Capacity, snap.Used, len(snap.Elements))
	}

	return snap, nil
}
