// Package testutil provides testing utilities for chainmap.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic key generation and helpers that search for keys
// colliding in the same bucket.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, 12) // 1000 distinct 12-byte keys
//
// # Engineered Collisions
//
//	keys := testutil.CollidingKeys(hashFn, 8, 3) // 3 keys sharing a bucket at capacity 8
package testutil
