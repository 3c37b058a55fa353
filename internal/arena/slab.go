package arena

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrMaxChunksExceeded is returned when the arena exceeds the maximum number of chunks.
	ErrMaxChunksExceeded = errors.New("arena: max chunks exceeded")
	// ErrAllocationFailed is returned when an allocation fails.
	ErrAllocationFailed = errors.New("arena: allocation failed")
)

const (
	// DefaultChunkSlots is the default number of slots per chunk.
	DefaultChunkSlots = 256
	// MaxSlots is the number of slots addressable by a Ref.
	MaxSlots = math.MaxUint32
)

// Ref references a slot. The zero Ref is null.
type Ref uint32

// Stats tracks arena usage.
type Stats struct {
	Chunks        int    // Current: chunks held
	Slots         int    // Current: total slot capacity
	Live          int    // Current: allocated slots
	FreeSlots     int    // Current: recyclable slots
	BytesReserved int64  // Current: chunk bytes charged to the acquirer
	TotalAllocs   uint64 // Historical: total allocations
}

// Arena is a slot allocator for values of type T.
type Arena[T any] struct {
	chunkBits uint
	chunkMask uint32
	maxChunks int // 0 means bounded by MaxSlots only
	chunks    [][]T
	used      uint32 // slots handed out from chunks at least once
	free      []Ref
	live      int
	allocs    uint64
	reserved  int64
	acquirer  MemoryAcquirer
}

// Option is a configuration option for Arena.
type Option func(*config)

type config struct {
	chunkSlots int
	maxChunks  int
	acquirer   MemoryAcquirer
}

// WithChunkSlots sets the number of slots per chunk, rounded up to a power of two.
func WithChunkSlots(n int) Option {
	return func(c *config) {
		c.chunkSlots = n
	}
}

// WithMaxChunks caps the number of chunks the arena may hold.
// By default the arena grows until MaxSlots slots are in use.
func WithMaxChunks(n int) Option {
	return func(c *config) {
		c.maxChunks = n
	}
}

// WithMemoryAcquirer sets the memory acquirer for the arena.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(c *config) {
		c.acquirer = acquirer
	}
}

// New creates an empty Arena. No chunk is allocated until the first Alloc.
func New[T any](opts ...Option) *Arena[T] {
	cfg := config{
		chunkSlots: DefaultChunkSlots,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chunkSlots <= 0 {
		cfg.chunkSlots = DefaultChunkSlots
	}
	if cfg.chunkSlots > 1<<24 {
		cfg.chunkSlots = 1 << 24
	}
	if cfg.maxChunks < 0 {
		cfg.maxChunks = 0
	}

	// Round up to next power of 2 for shift/mask addressing.
	chunkBits := uint(bits.Len(uint(cfg.chunkSlots - 1)))

	return &Arena[T]{
		chunkBits: chunkBits,
		chunkMask: 1<<chunkBits - 1,
		maxChunks: cfg.maxChunks,
		acquirer:  cfg.acquirer,
	}
}

// ChunkSlots returns the number of slots per chunk.
func (a *Arena[T]) ChunkSlots() int { return 1 << a.chunkBits }

func (a *Arena[T]) chunkBytes() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero)) << a.chunkBits
}

// Alloc returns a zeroed slot and its reference.
func (a *Arena[T]) Alloc() (Ref, *T, error) {
	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		a.live++
		a.allocs++
		return ref, a.slot(ref), nil
	}

	if a.used == uint32(len(a.chunks))<<a.chunkBits {
		if err := a.grow(); err != nil {
			return 0, nil, err
		}
	}

	a.used++
	ref := Ref(a.used)
	a.live++
	a.allocs++
	return ref, a.slot(ref), nil
}

func (a *Arena[T]) grow() error {
	if a.maxChunks > 0 && len(a.chunks) >= a.maxChunks {
		return ErrMaxChunksExceeded
	}
	if uint64(len(a.chunks)+1)<<a.chunkBits > MaxSlots {
		return ErrMaxChunksExceeded
	}

	size := a.chunkBytes()
	if a.acquirer != nil {
		if err := a.acquirer.AcquireMemory(size); err != nil {
			return fmt.Errorf("%w: chunk of %d bytes: %w", ErrAllocationFailed, size, err)
		}
	}

	a.chunks = append(a.chunks, make([]T, 1<<a.chunkBits))
	a.reserved += size
	return nil
}

func (a *Arena[T]) slot(ref Ref) *T {
	idx := uint32(ref) - 1
	return &a.chunks[idx>>a.chunkBits][idx&a.chunkMask]
}

// Get returns the slot for ref, or nil for the null Ref and out-of-range refs.
func (a *Arena[T]) Get(ref Ref) *T {
	if ref == 0 || uint32(ref) > a.used {
		return nil
	}
	return a.slot(ref)
}

// Free zeroes the slot for ref and makes it available for reuse.
// Freeing a slot twice is a caller error.
func (a *Arena[T]) Free(ref Ref) {
	p := a.Get(ref)
	if p == nil {
		return
	}
	var zero T
	*p = zero
	a.free = append(a.free, ref)
	a.live--
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return a.live }

// Reset drops every chunk and returns their memory to the acquirer.
// Outstanding refs become invalid.
func (a *Arena[T]) Reset() {
	if a.acquirer != nil && a.reserved > 0 {
		a.acquirer.ReleaseMemory(a.reserved)
	}
	a.chunks = nil
	a.free = nil
	a.used = 0
	a.live = 0
	a.reserved = 0
}

// Stats returns current usage statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Chunks:        len(a.chunks),
		Slots:         len(a.chunks) << a.chunkBits,
		Live:          a.live,
		FreeSlots:     len(a.free),
		BytesReserved: a.reserved,
		TotalAllocs:   a.allocs,
	}
}

// String returns a human readable summary.
func (a *Arena[T]) String() string {
	s := a.Stats()
	return fmt.Sprintf("Arena{chunks=%d, slots=%d, live=%d, free=%d, reserved=%d}",
		s.Chunks, s.Slots, s.Live, s.FreeSlots, s.BytesReserved)
}
