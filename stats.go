package chainmap

import "fmt"

// Stats is a point-in-time summary of a table.
type Stats struct {
	Capacity        int
	Count           int
	LoadFactor      float64
	UsedBuckets     int // buckets with a non-empty chain
	LongestChain    int
	Resizes         int
	Hasher          string
	MemoryBytes     int64 // bytes currently accounted
	PeakMemoryBytes int64
	ArenaChunks     int
	ArenaSlots      int
	NodeAllocations uint64 // historical node allocations
}

// Stats returns current table statistics.
func (t *Table) Stats() Stats {
	a := t.nodes.Stats()
	s := Stats{
		Capacity:        len(t.heads),
		Count:           t.count,
		LoadFactor:      t.LoadFactor(),
		UsedBuckets:     int(t.occupied.GetCardinality()),
		Resizes:         t.resizes,
		Hasher:          t.opts.hasher.Name(),
		MemoryBytes:     t.rc.MemoryUsage(),
		PeakMemoryBytes: t.rc.PeakMemoryUsage(),
		ArenaChunks:     a.Chunks,
		ArenaSlots:      a.Slots,
		NodeAllocations: a.TotalAllocs,
	}

	it := t.occupied.Iterator()
	for it.HasNext() {
		length := 0
		for ref := t.heads[it.Next()]; ref != 0; ref = t.nodes.Get(ref).next {
			length++
		}
		s.LongestChain = max(s.LongestChain, length)
	}
	return s
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{capacity=%d, count=%d, load=%.2f, used=%d, longest=%d, resizes=%d, hasher=%s, memory=%d}",
		s.Capacity, s.Count, s.LoadFactor, s.UsedBuckets, s.LongestChain, s.Resizes, s.Hasher, s.MemoryBytes)
}
