package bitvec

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sparse is a compressed set of uint32 indices backed by a Roaring
// bitmap. Unlike BitVec it has no fixed size: any uint32 index is valid,
// and memory scales with the set's structure rather than its extent.
type Sparse struct {
	rb *roaring.Bitmap
}

// NewSparse creates an empty sparse set.
func NewSparse() *Sparse {
	return &Sparse{
		rb: roaring.New(),
	}
}

// Add adds index to the set.
func (s *Sparse) Add(index uint32) {
	s.rb.Add(index)
}

// Remove removes index from the set.
func (s *Sparse) Remove(index uint32) {
	s.rb.Remove(index)
}

// Contains reports whether index is in the set.
func (s *Sparse) Contains(index uint32) bool {
	return s.rb.Contains(index)
}

// Cardinality returns the number of indices in the set.
func (s *Sparse) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// IsEmpty reports whether the set holds no indices.
func (s *Sparse) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// And intersects the set with other in place.
func (s *Sparse) And(other *Sparse) {
	s.rb.And(other.rb)
}

// Or unions the set with other in place.
func (s *Sparse) Or(other *Sparse) {
	s.rb.Or(other.rb)
}

// Clear removes all indices.
func (s *Sparse) Clear() {
	s.rb.Clear()
}

// Clone returns a deep copy of the set.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{
		rb: s.rb.Clone(),
	}
}

// Equal reports whether both sets hold the same indices.
func (s *Sparse) Equal(other *Sparse) bool {
	return s.rb.Equals(other.rb)
}

// All iterates the indices in ascending order.
func (s *Sparse) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
