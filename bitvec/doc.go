// Package bitvec provides bit containers: BitVec, a fixed-size vector of
// bits packed into uint64 words, and Sparse, a compressed set of uint32
// indices backed by Roaring bitmaps for sparse or unbounded domains.
//
// Neither type is safe for concurrent use.
package bitvec
