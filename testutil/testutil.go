package testutil

import (
	"math/rand/v2"
	"strconv"
	"sync"
)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Int63 returns a non-negative pseudo-random int64.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int64()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Key returns a random alphanumeric key of the given length.
func (r *RNG) Key(length int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keyLocked(length)
}

func (r *RNG) keyLocked(length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = keyAlphabet[r.rand.IntN(len(keyAlphabet))]
	}
	return b
}

// Keys returns num distinct random keys of the given length.
// length must be large enough for num distinct keys to exist.
func (r *RNG) Keys(num, length int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	keys := make([][]byte, 0, num)
	for len(keys) < num {
		k := r.keyLocked(length)
		if _, ok := seen[string(k)]; ok {
			continue
		}
		seen[string(k)] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// SequentialKeys returns keys prefix0, prefix1, ... prefix(num-1).
func SequentialKeys(prefix string, num int) [][]byte {
	keys := make([][]byte, num)
	for i := range keys {
		keys[i] = []byte(prefix + strconv.Itoa(i))
	}
	return keys
}

// CollidingKeys returns num distinct keys whose hash maps to the same bucket
// index at the given capacity. Candidates are "k0", "k1", ... so the result
// is deterministic for a given hash function. It returns nil if no such set
// is found within a bounded search.
func CollidingKeys(hash func([]byte) uint32, capacity, num int) [][]byte {
	const maxCandidates = 1 << 20

	byIndex := make(map[uint32][][]byte)
	for i := 0; i < maxCandidates; i++ {
		k := []byte("k" + strconv.Itoa(i))
		idx := hash(k) % uint32(capacity)
		byIndex[idx] = append(byIndex[idx], k)
		if len(byIndex[idx]) == num {
			return byIndex[idx]
		}
	}
	return nil
}
