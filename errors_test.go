package chainmap

import (
	"errors"
	"testing"

	"github.com/hupe1980/chainmap/internal/arena"
	"github.com/hupe1980/chainmap/internal/resource"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	err := translateError(resource.ErrMemoryLimitExceeded)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)

	err = translateError(arena.ErrMaxChunksExceeded)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, arena.ErrMaxChunksExceeded)

	err = translateError(arena.ErrAllocationFailed)
	assert.ErrorIs(t, err, ErrAllocationFailed)

	other := errors.New("boom")
	assert.Same(t, other, translateError(other))
}

func TestErrInvalidCapacity(t *testing.T) {
	cause := errors.New("negative")
	err := error(&ErrInvalidCapacity{Capacity: -1, cause: cause})

	var ic *ErrInvalidCapacity
	assert.ErrorAs(t, err, &ic)
	assert.Equal(t, -1, ic.Capacity)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid capacity: -1")
}
