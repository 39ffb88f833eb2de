// Package hash provides the string hash algorithms used by the hashmap
// package.
//
// # Algorithms
//
//   - FNV-1a: default; good distribution, stdlib-backed
//   - DJB2: Bernstein's classic multiplicative hash
//   - SDBM: the sdbm database library hash
//
// All three are one-shot, allocation-light functions over a string key.
// They are not cryptographic and must not be used where collision
// resistance against an adversary matters.
package hash
