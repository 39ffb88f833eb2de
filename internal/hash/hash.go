package hash

import "hash/fnv"

// FNV1a computes the 64-bit FNV-1a hash of s.
// Backed by the standard library implementation (offset basis
// 14695981039346656037, prime 1099511628211).
func FNV1a(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// DJB2 computes Bernstein's djb2 hash of s (seed 5381, hash*33 + c).
func DJB2(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint64(s[i])
	}
	return h
}

// SDBM computes the sdbm hash of s.
// The result is masked to 63 bits and forced odd, matching the reference
// implementation this library's table layout was validated against.
func SDBM(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = uint64(s[i]) + (h << 6) + (h << 16) - h
	}
	return (h & 0x7FFFFFFFFFFFFFFF) | 1
}
