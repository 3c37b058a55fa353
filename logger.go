package chainmap

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with chainmap-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTable tags the logger with a table name.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(keyLen int, updated bool, err error) {
	if err != nil {
		l.Error("insert failed",
			"key_len", keyLen,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"key_len", keyLen,
			"updated", updated,
		)
	}
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(keyLen int, found bool) {
	l.Debug("delete completed",
		"key_len", keyLen,
		"found", found,
	)
}

// LogResize logs a resize-and-rehash.
func (l *Logger) LogResize(oldCapacity, newCapacity, count int, duration time.Duration, err error) {
	if err != nil {
		l.Error("resize failed",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"count", count,
			"error", err,
		)
	} else {
		l.Info("resize completed",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"count", count,
			"duration", duration,
		)
	}
}

// LogDestroy logs table teardown.
func (l *Logger) LogDestroy(count int, released int64) {
	l.Debug("table destroyed",
		"count", count,
		"released_bytes", released,
	)
}
