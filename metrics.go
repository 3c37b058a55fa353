package chainmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// updated is true when an existing key had its value replaced.
	RecordInsert(duration time.Duration, updated bool, err error)

	// RecordFind is called after each lookup (Find, Get, Contains).
	RecordFind(duration time.Duration, hit bool)

	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, found bool)

	// RecordResize is called after each resize-and-rehash attempt.
	RecordResize(oldCapacity, newCapacity int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool, error)     {}
func (NoopMetricsCollector) RecordFind(time.Duration, bool)              {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool)            {}
func (NoopMetricsCollector) RecordResize(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertUpdates    atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	FindCount        atomic.Int64
	FindHits         atomic.Int64
	FindTotalNanos   atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
	ResizeCount      atomic.Int64
	ResizeErrors     atomic.Int64
	ResizeTotalNanos atomic.Int64
	MaxCapacity      atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, updated bool, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	if updated {
		b.InsertUpdates.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(duration time.Duration, hit bool) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.FindHits.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, found bool) {
	b.DeleteCount.Add(1)
	if !found {
		b.DeleteMisses.Add(1)
	}
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(oldCapacity, newCapacity int, duration time.Duration, err error) {
	b.ResizeCount.Add(1)
	b.ResizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ResizeErrors.Add(1)
		return
	}
	for {
		cur := b.MaxCapacity.Load()
		if int64(newCapacity) <= cur || b.MaxCapacity.CompareAndSwap(cur, int64(newCapacity)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertUpdates:  b.InsertUpdates.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		InsertAvgNanos: avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		FindCount:      b.FindCount.Load(),
		FindHits:       b.FindHits.Load(),
		FindAvgNanos:   avgNanos(b.FindTotalNanos.Load(), b.FindCount.Load()),
		DeleteCount:    b.DeleteCount.Load(),
		DeleteMisses:   b.DeleteMisses.Load(),
		ResizeCount:    b.ResizeCount.Load(),
		ResizeErrors:   b.ResizeErrors.Load(),
		ResizeAvgNanos: avgNanos(b.ResizeTotalNanos.Load(), b.ResizeCount.Load()),
		MaxCapacity:    b.MaxCapacity.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertUpdates  int64
	InsertErrors   int64
	InsertAvgNanos int64
	FindCount      int64
	FindHits       int64
	FindAvgNanos   int64
	DeleteCount    int64
	DeleteMisses   int64
	ResizeCount    int64
	ResizeErrors   int64
	ResizeAvgNanos int64
	MaxCapacity    int64
}
