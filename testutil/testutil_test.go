package testutil

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fnv32(b []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(b)
	return h.Sum32()
}

func TestKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.Keys(500, 3)
	assert.Len(t, keys, 500)

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.Len(t, k, 3)
		assert.False(t, seen[string(k)], "duplicate key %q", k)
		seen[string(k)] = true
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	k1 := rng.Key(16)

	rng.Reset()
	k2 := rng.Key(16)

	assert.Equal(t, k1, k2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestSequentialKeys(t *testing.T) {
	keys := SequentialKeys("key-", 3)
	assert.Equal(t, [][]byte{[]byte("key-0"), []byte("key-1"), []byte("key-2")}, keys)
}

func TestCollidingKeys(t *testing.T) {
	keys := CollidingKeys(fnv32, 8, 4)
	require.Len(t, keys, 4)

	idx := fnv32(keys[0]) % 8
	for _, k := range keys[1:] {
		assert.Equal(t, idx, fnv32(k)%8)
		assert.NotEqual(t, keys[0], k)
	}

	constant := func([]byte) uint32 { return 3 }
	assert.Len(t, CollidingKeys(constant, 8, 2), 2)
}
