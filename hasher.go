package chainmap

import "github.com/hupe1980/chainmap/internal/hash"

// Hasher maps a key to the 32-bit hash used for bucket placement.
// Implementations must be deterministic and must not retain the key.
type Hasher = hash.Hasher

// Murmur3Hasher returns the default MurmurHash3 x86_32 (seed 0) hasher.
func Murmur3Hasher() Hasher { return hash.Murmur3() }

// XXHasher returns an xxHash64-based hasher folded to 32 bits.
func XXHasher() Hasher { return hash.XXHash() }

// CRC32CHasher returns a CRC32-Castagnoli hasher.
func CRC32CHasher() Hasher { return hash.CRC32CHasher() }

// HasherByName returns a built-in hasher: "murmur3", "xxhash" or "crc32c".
func HasherByName(name string) (Hasher, bool) { return hash.ByName(name) }

// HasherFunc adapts a plain function to a Hasher.
func HasherFunc(fn func(key []byte) uint32) Hasher { return hash.Func(fn) }
