// Package hashmap implements an open-addressing hash map with linear
// probing and pluggable string hash algorithms.
//
// # Probing and tombstones
//
// Every slot is empty, used, or a tombstone. Removal only marks a
// tombstone: lookups probe past tombstones, so chains stay intact, and
// insertions reuse the first tombstone on their probe path. Tombstones are
// dropped wholesale when the table resizes.
//
// # Hashing
//
// String keys go through the configured algorithm (FNV-1a by default).
// Integer keys hash to their own value. Any other comparable key type is
// hashed through its fmt rendering, which keeps hashing total at the cost
// of an allocation per operation.
//
// Map is not safe for concurrent use.
package hashmap
