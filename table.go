package chainmap

import (
	"bytes"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/chainmap/internal/arena"
	"github.com/hupe1980/chainmap/internal/resource"
	"github.com/hupe1980/chainmap/value"
)

const (
	// MaxCapacity is the largest supported bucket-array length.
	MaxCapacity = 1 << 30
	// DefaultMaxLoadFactor is the load factor at which a new key triggers growth.
	DefaultMaxLoadFactor = 1.0

	headSize = 4 // bytes per bucket-head slot
)

// node is a chain element. next is an arena reference; 0 ends the chain.
type node struct {
	hash  uint32
	key   []byte
	value value.Var
	next  arena.Ref
}

// Table is a hash table with separate chaining, mapping byte-string keys
// to values.
//
// The table owns every value inserted into it and destroys it when the key
// is overwritten, deleted, or the table is destroyed.
//
// A Table is not safe for concurrent use; callers must serialize access.
type Table struct {
	opts options

	heads    []arena.Ref
	occupied *roaring.Bitmap
	nodes    *arena.Arena[node]
	count    int
	resizes  int
	closed   bool

	rc      *resource.Controller
	logger  *Logger
	metrics MetricsCollector
}

// New creates a table with the given initial capacity.
func New(capacity int, optFns ...Option) (*Table, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}

	opts := applyOptions(optFns)
	rc := resource.NewController(resource.Config{MemoryLimitBytes: opts.memoryLimit})

	if err := rc.AcquireMemory(int64(capacity) * headSize); err != nil {
		err = translateError(err)
		opts.logger.Error("create failed", "capacity", capacity, "error", err)
		return nil, err
	}

	t := &Table{
		opts:     opts,
		heads:    make([]arena.Ref, capacity),
		occupied: roaring.New(),
		nodes: arena.New[node](
			arena.WithChunkSlots(opts.chunkSlots),
			arena.WithMemoryAcquirer(rc),
		),
		rc:      rc,
		logger:  opts.logger.WithCapacity(capacity),
		metrics: opts.metricsCollector,
	}
	return t, nil
}

// Len returns the number of keys in the table.
func (t *Table) Len() int { return t.count }

// Cap returns the current bucket-array length.
func (t *Table) Cap() int { return len(t.heads) }

// LoadFactor returns count / capacity.
func (t *Table) LoadFactor() float64 {
	if len(t.heads) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.heads))
}

// MemoryUsage returns the bytes currently accounted to the table.
func (t *Table) MemoryUsage() int64 { return t.rc.MemoryUsage() }

func (t *Table) index(h uint32) uint32 {
	return h % uint32(len(t.heads))
}

// lookup returns the node matching key along with its predecessor in the
// chain (0 when the node is the head).
func (t *Table) lookup(h uint32, key []byte) (ref, prev arena.Ref, n *node) {
	if t.closed {
		return 0, 0, nil
	}
	for ref = t.heads[t.index(h)]; ref != 0; {
		n = t.nodes.Get(ref)
		if n.hash == h && bytes.Equal(n.key, key) {
			return ref, prev, n
		}
		prev, ref = ref, n.next
	}
	return 0, 0, nil
}

// nodeBytes is the payload accounted per node. The node itself is charged
// with its arena chunk.
func nodeBytes(key []byte, v value.Var) int64 {
	return int64(len(key) + v.Size())
}

// Insert maps key to v, taking ownership of v.
//
// If key is present its old value is destroyed and replaced in place.
// Otherwise a new node is pushed to the head of its bucket chain; when the
// table has reached its load limit the capacity is doubled first.
//
// On error the keys, values and capacity are unchanged and v still belongs
// to the caller.
func (t *Table) Insert(key []byte, v value.Var) (err error) {
	start := time.Now()
	updated := false
	defer func() {
		t.metrics.RecordInsert(time.Since(start), updated, err)
		t.logger.LogInsert(len(key), updated, err)
	}()

	switch {
	case t.closed:
		return ErrClosed
	case len(key) == 0:
		return ErrEmptyKey
	case value.IsNil(v):
		return ErrNilValue
	}

	h := t.opts.hasher.Sum32(key)

	if _, _, n := t.lookup(h, key); n != nil {
		updated = true
		if n.value == v {
			return nil
		}
		if err := t.rc.AcquireMemory(int64(v.Size())); err != nil {
			return translateError(err)
		}
		old := n.value
		n.value = v
		t.rc.ReleaseMemory(int64(old.Size()))
		value.Destroy(old)
		return nil
	}

	// Secure the node before growing so a failure leaves the capacity as is.
	size := nodeBytes(key, v)
	if err := t.rc.AcquireMemory(size); err != nil {
		return translateError(err)
	}

	ref, n, err := t.nodes.Alloc()
	if err != nil {
		t.rc.ReleaseMemory(size)
		return translateError(err)
	}

	if t.overloaded() {
		if err := t.resize(len(t.heads) * 2); err != nil {
			t.nodes.Free(ref)
			t.rc.ReleaseMemory(size)
			return err
		}
	}

	idx := t.index(h)
	n.hash = h
	n.key = bytes.Clone(key)
	n.value = v
	n.next = t.heads[idx]

	t.heads[idx] = ref
	t.occupied.Add(idx)
	t.count++
	return nil
}

// overloaded reports whether adding one more key must grow the table first.
func (t *Table) overloaded() bool {
	return float64(t.count) >= float64(len(t.heads))*t.opts.maxLoadFactor
}

// Get returns the value stored for key. The value remains owned by the
// table and is only valid until the key is overwritten or deleted.
func (t *Table) Get(key []byte) (value.Var, bool) {
	start := time.Now()
	var n *node
	if len(key) > 0 {
		_, _, n = t.lookup(t.opts.hasher.Sum32(key), key)
	}
	t.metrics.RecordFind(time.Since(start), n != nil)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

// Contains reports whether key is present.
func (t *Table) Contains(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

// Find returns a view of the node holding key.
func (t *Table) Find(key []byte) (Entry, bool) {
	start := time.Now()
	var n *node
	if len(key) > 0 {
		_, _, n = t.lookup(t.opts.hasher.Sum32(key), key)
	}
	t.metrics.RecordFind(time.Since(start), n != nil)
	if n == nil {
		return Entry{}, false
	}
	return t.entry(n), true
}

// Delete removes key and destroys its value. It reports whether the key was
// present; deleting a missing key is a no-op.
func (t *Table) Delete(key []byte) bool {
	start := time.Now()
	found := t.delete(key)
	t.metrics.RecordDelete(time.Since(start), found)
	t.logger.LogDelete(len(key), found)
	return found
}

func (t *Table) delete(key []byte) bool {
	if len(key) == 0 {
		return false
	}

	h := t.opts.hasher.Sum32(key)
	ref, prev, n := t.lookup(h, key)
	if n == nil {
		return false
	}

	// Unlink before the slot is released.
	next := n.next
	if prev == 0 {
		idx := t.index(h)
		t.heads[idx] = next
		if next == 0 {
			t.occupied.Remove(idx)
		}
	} else {
		t.nodes.Get(prev).next = next
	}

	t.rc.ReleaseMemory(nodeBytes(n.key, n.value))
	value.Destroy(n.value)
	clear(n.key)
	t.nodes.Free(ref)
	t.count--
	return true
}

// Grow raises the capacity to at least n buckets, rehashing every entry.
// It is a no-op when n does not exceed the current capacity.
func (t *Table) Grow(n int) error {
	if t.closed {
		return ErrClosed
	}
	if n < 1 || n > MaxCapacity {
		return &ErrInvalidCapacity{Capacity: n}
	}
	if n <= len(t.heads) {
		return nil
	}
	return t.resize(n)
}

// resize moves every node into a freshly allocated head array of the new
// capacity using the cached hashes. The old array is only dropped once all
// chains have been redistributed.
func (t *Table) resize(newCapacity int) (err error) {
	start := time.Now()
	oldCapacity := len(t.heads)
	defer func() {
		d := time.Since(start)
		t.metrics.RecordResize(oldCapacity, newCapacity, d, err)
		t.logger.LogResize(oldCapacity, newCapacity, t.count, d, err)
	}()

	if newCapacity > MaxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds %d", ErrAllocationFailed, newCapacity, MaxCapacity)
	}
	if err := t.rc.AcquireMemory(int64(newCapacity) * headSize); err != nil {
		return translateError(err)
	}

	heads := make([]arena.Ref, newCapacity)
	occupied := roaring.New()
	size := uint32(newCapacity)

	it := t.occupied.Iterator()
	for it.HasNext() {
		for ref := t.heads[it.Next()]; ref != 0; {
			n := t.nodes.Get(ref)
			next := n.next
			idx := n.hash % size
			n.next = heads[idx]
			heads[idx] = ref
			occupied.Add(idx)
			ref = next
		}
	}

	t.heads = heads
	t.occupied = occupied
	t.resizes++
	t.logger = t.opts.logger.WithCapacity(newCapacity)
	t.rc.ReleaseMemory(int64(oldCapacity) * headSize)
	return nil
}

// Destroy releases every key, value and node and the bucket array.
// Calling Destroy more than once is a no-op. A destroyed table rejects
// inserts with ErrClosed and reports every key as missing.
func (t *Table) Destroy() {
	if t.closed {
		return
	}

	before := t.rc.MemoryUsage()
	count := t.count

	it := t.occupied.Iterator()
	for it.HasNext() {
		idx := it.Next()
		for ref := t.heads[idx]; ref != 0; {
			n := t.nodes.Get(ref)
			next := n.next
			t.rc.ReleaseMemory(nodeBytes(n.key, n.value))
			value.Destroy(n.value)
			clear(n.key)
			t.nodes.Free(ref)
			ref = next
		}
		t.heads[idx] = 0
	}

	t.nodes.Reset()
	t.rc.ReleaseMemory(int64(len(t.heads)) * headSize)
	t.heads = nil
	t.occupied.Clear()
	t.count = 0
	t.closed = true

	t.logger.LogDestroy(count, before-t.rc.MemoryUsage())
}
