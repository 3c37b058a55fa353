package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher maps a key to a 32-bit hash.
// Implementations must be deterministic and must not retain key.
type Hasher interface {
	Sum32(key []byte) uint32
	Name() string
}

// Default is the hasher used when none is configured.
var Default Hasher = Murmur3()

// Murmur3 returns the MurmurHash3 x86_32 hasher with seed 0.
func Murmur3() Hasher { return murmur3Hasher{} }

// XXHash returns a hasher folding the 64-bit xxHash digest into 32 bits.
func XXHash() Hasher { return xxHasher{} }

// CRC32CHasher returns a hasher based on CRC32-Castagnoli.
func CRC32CHasher() Hasher { return crc32cHasher{} }

// ByName returns a built-in hasher by its stable name.
func ByName(name string) (Hasher, bool) {
	switch name {
	case "murmur3":
		return Murmur3(), true
	case "xxhash":
		return XXHash(), true
	case "crc32c":
		return CRC32CHasher(), true
	default:
		return nil, false
	}
}

// Func adapts a plain function to the Hasher interface.
type Func func(key []byte) uint32

// Sum32 implements Hasher.
func (f Func) Sum32(key []byte) uint32 { return f(key) }

// Name implements Hasher.
func (Func) Name() string { return "func" }

type murmur3Hasher struct{}

func (murmur3Hasher) Sum32(key []byte) uint32 { return murmur3.Sum32WithSeed(key, 0) }
func (murmur3Hasher) Name() string            { return "murmur3" }

type xxHasher struct{}

func (xxHasher) Sum32(key []byte) uint32 {
	h := xxhash.Sum64(key)
	return uint32(h) ^ uint32(h>>32)
}
func (xxHasher) Name() string { return "xxhash" }
