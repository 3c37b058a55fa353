package chainmap

import (
	"errors"
	"fmt"

	"github.com/hupe1980/chainmap/internal/arena"
	"github.com/hupe1980/chainmap/internal/resource"
)

var (
	// ErrAllocationFailed is returned when memory for the bucket array, a node,
	// a key or a value cannot be obtained. The table is left unchanged.
	ErrAllocationFailed = errors.New("allocation failed")
	// ErrEmptyKey is returned when inserting an empty key.
	ErrEmptyKey = errors.New("key must not be empty")
	// ErrNilValue is returned when inserting a nil value.
	ErrNilValue = errors.New("value must not be nil")
	// ErrClosed is returned when mutating a destroyed table.
	ErrClosed = errors.New("table is destroyed")
)

// ErrInvalidCapacity indicates a capacity outside [1, MaxCapacity].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCapacity struct {
	Capacity int
	cause    error
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d (must be in [1, %d])", e.Capacity, MaxCapacity)
}

func (e *ErrInvalidCapacity) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrAllocationFailed) {
		return err
	}
	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if errors.Is(err, arena.ErrAllocationFailed) || errors.Is(err, arena.ErrMaxChunksExceeded) {
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	return err
}
