// Package hash provides the 32-bit key hash functions used for bucket placement.
//
// All hashers are deterministic across runs and processes, so a key always
// lands in the same bucket for a given capacity.
//
// # Hashers
//
//	Name      Algorithm                            Notes
//	murmur3   MurmurHash3 x86_32, seed 0           default
//	xxhash    xxHash64, halves folded with xor     fastest on long keys
//	crc32c    CRC32-Castagnoli                     hardware accelerated, weak avalanche
//
// Custom functions can be plugged in through Func:
//
//	h := hash.Func(func(key []byte) uint32 { return uint32(len(key)) })
package hash
