package hashmap

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hupe1980/gotl/internal/hash"
	"github.com/hupe1980/gotl/strbuf"
)

// Algorithm selects the string hash function.
type Algorithm int

const (
	// FNV1a is the 64-bit FNV-1a hash, the default.
	FNV1a Algorithm = iota
	// DJB2 is Bernstein's djb2 hash.
	DJB2
	// SDBM is the sdbm hash.
	SDBM
)

var (
	// ErrInvalidCapacity is returned when a capacity is not positive or
	// cannot hold the live entries.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidGrowFactor is returned for a grow factor outside (0, 1].
	ErrInvalidGrowFactor = errors.New("invalid grow factor")

	// ErrMapFull is returned when an insertion finds no free slot in a
	// non-growable map.
	ErrMapFull = errors.New("map is full")
)

type entryState uint8

const (
	stateEmpty entryState = iota
	stateUsed
	stateDeleted
)

type entry[K comparable, V any] struct {
	key   K
	value V
	state entryState
}

// Options configures a new Map.
type Options struct {
	// Algorithm is the string hash function. Defaults to FNV1a.
	Algorithm Algorithm

	// GrowFactor is the load factor (live entries / capacity) above which
	// a growable map doubles. Defaults to 0.7.
	GrowFactor float64

	// Growable doubles the capacity when the load factor is exceeded
	// instead of filling up. Defaults to true.
	Growable bool
}

// Map is an open-addressing hash map with linear probing.
type Map[K comparable, V any] struct {
	entries    []entry[K, V]
	used       int // live entries, tombstones excluded
	tombstones int
	algorithm  Algorithm
	growFactor float64
	growable   bool
}

// New creates a map with the given capacity.
func New[K comparable, V any](capacity int, optFns ...func(o *Options)) (*Map[K, V], error) {
	opts := Options{
		Algorithm:  FNV1a,
		GrowFactor: 0.7,
		Growable:   true,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if opts.GrowFactor <= 0 || opts.GrowFactor > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidGrowFactor, opts.GrowFactor)
	}

	return &Map[K, V]{
		entries:    make([]entry[K, V], capacity),
		algorithm:  opts.Algorithm,
		growFactor: opts.GrowFactor,
		growable:   opts.Growable,
	}, nil
}

func (m *Map[K, V]) hashString(s string) uint64 {
	switch m.algorithm {
	case DJB2:
		return hash.DJB2(s)
	case SDBM:
		return hash.SDBM(s)
	default:
		return hash.FNV1a(s)
	}
}

// hashKey maps a key to its hash. Integers hash to their value so the
// common case never allocates; everything else that isn't a string goes
// through its fmt rendering.
func (m *Map[K, V]) hashKey(k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return m.hashString(v)
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case uintptr:
		return uint64(v)
	default:
		return m.hashString(fmt.Sprint(v))
	}
}

// lookup returns the slot index of k, or -1. Probing continues past
// tombstones and stops at the first empty slot or after a full cycle.
func (m *Map[K, V]) lookup(k K) int {
	capacity := len(m.entries)
	idx := int(m.hashKey(k) % uint64(capacity))

	for i := 0; i < capacity; i++ {
		e := &m.entries[idx]

		switch e.state {
		case stateEmpty:
			return -1
		case stateUsed:
			if e.key == k {
				return idx
			}
		}

		idx++
		if idx == capacity {
			idx = 0
		}
	}

	return -1
}

// insert places k/v without growth checks. Assumes the table has a free
// slot unless every slot is live.
func (m *Map[K, V]) insert(k K, v V) (int, error) {
	capacity := len(m.entries)
	idx := int(m.hashKey(k) % uint64(capacity))
	firstDeleted := -1

	for i := 0; i < capacity; i++ {
		e := &m.entries[idx]

		switch e.state {
		case stateUsed:
			if e.key == k {
				e.value = v
				return idx, nil
			}
		case stateDeleted:
			if firstDeleted < 0 {
				firstDeleted = idx
			}
		case stateEmpty:
			target := idx
			if firstDeleted >= 0 {
				target = firstDeleted
				m.tombstones--
			}
			m.entries[target] = entry[K, V]{key: k, value: v, state: stateUsed}
			m.used++
			return target, nil
		}

		idx++
		if idx == capacity {
			idx = 0
		}
	}

	// Full cycle without an empty slot: fall back to a tombstone.
	if firstDeleted >= 0 {
		m.entries[firstDeleted] = entry[K, V]{key: k, value: v, state: stateUsed}
		m.tombstones--
		m.used++
		return firstDeleted, nil
	}

	return -1, fmt.Errorf("%w: capacity %d", ErrMapFull, capacity)
}

func (m *Map[K, V]) maybeGrow() error {
	if !m.growable {
		return nil
	}

	if float64(m.used+1) > m.growFactor*float64(len(m.entries)) {
		return m.Resize(2 * len(m.entries))
	}

	// Tombstone-heavy tables degrade probing even below the load factor;
	// rebuilding at the same capacity drops them.
	if float64(m.used+m.tombstones+1) > m.growFactor*float64(len(m.entries)) {
		return m.Resize(len(m.entries))
	}

	return nil
}

// Insert sets k to v, replacing the value if k is already present.
func (m *Map[K, V]) Insert(k K, v V) error {
	if err := m.maybeGrow(); err != nil {
		return err
	}

	_, err := m.insert(k, v)
	return err
}

// At returns a pointer to the value stored for k, inserting a zero value
// first if k is absent. The pointer stays valid until the next resize.
func (m *Map[K, V]) At(k K) (*V, error) {
	if idx := m.lookup(k); idx >= 0 {
		return &m.entries[idx].value, nil
	}

	if err := m.maybeGrow(); err != nil {
		return nil, err
	}

	var zero V
	idx, err := m.insert(k, zero)
	if err != nil {
		return nil, err
	}

	return &m.entries[idx].value, nil
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if idx := m.lookup(k); idx >= 0 {
		return m.entries[idx].value, true
	}

	var zero V
	return zero, false
}

// Exists reports whether k is present.
func (m *Map[K, V]) Exists(k K) bool {
	return m.lookup(k) >= 0
}

// Remove deletes k and reports whether it was present. The slot becomes a
// tombstone; the table is not compacted.
func (m *Map[K, V]) Remove(k K) bool {
	idx := m.lookup(k)
	if idx < 0 {
		return false
	}

	m.entries[idx] = entry[K, V]{state: stateDeleted} // zero key/value for the GC
	m.used--
	m.tombstones++

	return true
}

// Clear drops all entries, keeping the capacity.
func (m *Map[K, V]) Clear() {
	for i := range m.entries {
		m.entries[i] = entry[K, V]{}
	}
	m.used = 0
	m.tombstones = 0
}

// Resize rebuilds the table at the given capacity, re-probing every live
// entry and dropping all tombstones. The capacity must hold the live
// entries.
func (m *Map[K, V]) Resize(capacity int) error {
	if capacity < m.used || capacity <= 0 {
		return fmt.Errorf("%w: %d (used %d)", ErrInvalidCapacity, capacity, m.used)
	}

	old := m.entries
	m.entries = make([]entry[K, V], capacity)
	m.used = 0
	m.tombstones = 0

	for i := range old {
		if old[i].state == stateUsed {
			if _, err := m.insert(old[i].key, old[i].value); err != nil {
				return err
			}
		}
	}

	return nil
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.used }

// Cap returns the table capacity.
func (m *Map[K, V]) Cap() int { return len(m.entries) }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.used == 0 }

// All iterates the live entries in table order, which is not the
// insertion order and changes across resizes.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if m.entries[i].state == stateUsed {
				if !yield(m.entries[i].key, m.entries[i].value) {
					return
				}
			}
		}
	}
}

// String renders the map as "Map(k: v, ...)\n" in table order. The empty
// map renders as "Map()\n".
func (m *Map[K, V]) String() string {
	b := strbuf.New(8 + 8*m.used)
	b.AppendString("Map(")

	first := true
	for k, v := range m.All() {
		if !first {
			b.AppendString(", ")
		}
		first = false

		b.AppendString(fmt.Sprint(k))
		b.AppendString(": ")
		b.AppendString(fmt.Sprint(v))
	}

	b.AppendString(")\n")

	return b.String()
}
