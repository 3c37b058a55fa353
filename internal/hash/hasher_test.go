package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		hasher Hasher
		input  string
		want   uint32
	}{
		{"murmur3 empty", Murmur3(), "", 0},
		{"murmur3 hello", Murmur3(), "hello", 0x248bfa47},
		{"xxhash empty", XXHash(), "", 0xbe9e32ae},
		{"crc32c check", CRC32CHasher(), "123456789", 0xe3069283},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.hasher.Sum32([]byte(tc.input)))
		})
	}
}

func TestDeterministicAndOrderSensitive(t *testing.T) {
	for _, h := range []Hasher{Murmur3(), XXHash(), CRC32CHasher()} {
		t.Run(h.Name(), func(t *testing.T) {
			a := h.Sum32([]byte("Gear"))
			assert.Equal(t, a, h.Sum32([]byte("Gear")))
			assert.NotEqual(t, a, h.Sum32([]byte("raeG")))
		})
	}
}

func TestMurmur3Spread(t *testing.T) {
	const (
		buckets = 16
		keys    = 4096
	)
	var counts [buckets]int
	h := Murmur3()
	for i := 0; i < keys; i++ {
		counts[h.Sum32([]byte(fmt.Sprintf("key-%d", i)))%buckets]++
	}
	for i, c := range counts {
		assert.InDelta(t, keys/buckets, c, keys/buckets/2, "bucket %d", i)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"murmur3", "xxhash", "crc32c"} {
		h, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, h.Name())
	}

	_, ok := ByName("md5")
	assert.False(t, ok)
	assert.Equal(t, "murmur3", Default.Name())
}

func TestFunc(t *testing.T) {
	h := Func(func(key []byte) uint32 { return uint32(len(key)) })
	assert.Equal(t, uint32(5), h.Sum32([]byte("Apple")))
	assert.Equal(t, "func", h.Name())
}

func BenchmarkHashers(b *testing.B) {
	key := []byte("a-typical-table-key-0001")
	for _, h := range []Hasher{Murmur3(), XXHash(), CRC32CHasher()} {
		b.Run(h.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(key)))
			for i := 0; i < b.N; i++ {
				_ = h.Sum32(key)
			}
		})
	}
}
