// Package testutil provides deterministic random data generation for
// tests and benchmarks. All generators are seeded, so failures reproduce.
package testutil
