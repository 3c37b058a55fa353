package chainmap

import (
	"log/slog"

	"github.com/hupe1980/chainmap/internal/hash"
)

type options struct {
	hasher           Hasher
	metricsCollector MetricsCollector
	logger           *Logger
	memoryLimit      int64
	maxLoadFactor    float64
	chunkSlots       int
	name             string
}

// Option configures Table construction.
type Option func(*options)

// WithHasher configures the key hash function.
//
// If nil is passed, the Murmur3 hasher is used.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = hash.Default
		}
		o.hasher = h
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &chainmap.BasicMetricsCollector{}
//	t, _ := chainmap.New(8, chainmap.WithMetricsCollector(metrics))
//	// ... use t ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Resizes: %d\n", stats.InsertCount, stats.ResizeCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := chainmap.NewJSONLogger(slog.LevelInfo)
//	t, _ := chainmap.New(8, chainmap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMemoryLimit caps the bytes the table may hold (bucket array, arena
// chunks, keys and values). Operations that would exceed it fail with
// ErrAllocationFailed. Zero means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMaxLoadFactor sets the count/capacity ratio at which adding a new key
// first doubles the capacity. Values <= 0 fall back to DefaultMaxLoadFactor.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		o.maxLoadFactor = f
	}
}

// WithName tags every log record of the table with the given name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithArenaChunkSize sets how many chain nodes are allocated per arena chunk.
func WithArenaChunkSize(slots int) Option {
	return func(o *options) {
		o.chunkSlots = slots
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		hasher:           hash.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxLoadFactor:    DefaultMaxLoadFactor,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.maxLoadFactor <= 0 {
		o.maxLoadFactor = DefaultMaxLoadFactor
	}
	if o.name != "" {
		o.logger = o.logger.WithTable(o.name)
	}
	return o
}
