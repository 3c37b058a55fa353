package chainmap

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chainmap/value"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordInsert(10*time.Nanosecond, false, nil)
	m.RecordInsert(20*time.Nanosecond, true, nil)
	m.RecordInsert(30*time.Nanosecond, true, errors.New("boom"))
	m.RecordFind(4*time.Nanosecond, true)
	m.RecordFind(6*time.Nanosecond, false)
	m.RecordDelete(time.Nanosecond, false)
	m.RecordResize(8, 16, time.Nanosecond, nil)
	m.RecordResize(16, 32, time.Nanosecond, errors.New("limit"))

	s := m.GetStats()
	assert.Equal(t, int64(3), s.InsertCount)
	assert.Equal(t, int64(1), s.InsertUpdates)
	assert.Equal(t, int64(1), s.InsertErrors)
	assert.Equal(t, int64(20), s.InsertAvgNanos)
	assert.Equal(t, int64(2), s.FindCount)
	assert.Equal(t, int64(1), s.FindHits)
	assert.Equal(t, int64(5), s.FindAvgNanos)
	assert.Equal(t, int64(1), s.DeleteCount)
	assert.Equal(t, int64(1), s.DeleteMisses)
	assert.Equal(t, int64(2), s.ResizeCount)
	assert.Equal(t, int64(1), s.ResizeErrors)
	assert.Equal(t, int64(16), s.MaxCapacity)
}

func TestTableRecordsMetrics(t *testing.T) {
	m := &BasicMetricsCollector{}
	tbl := newTable(t, 2, WithMetricsCollector(m))

	mustInsert(t, tbl, "a", value.Integer(1))
	mustInsert(t, tbl, "b", value.Integer(2))
	mustInsert(t, tbl, "c", value.Integer(3)) // grows to 4
	mustInsert(t, tbl, "a", value.Integer(4))
	_ = tbl.Insert(nil, value.Integer(5))

	tbl.Get([]byte("a"))
	tbl.Find([]byte("zzz"))
	tbl.Contains([]byte("b"))
	tbl.Delete([]byte("b"))
	tbl.Delete([]byte("b"))

	s := m.GetStats()
	assert.Equal(t, int64(5), s.InsertCount)
	assert.Equal(t, int64(1), s.InsertUpdates)
	assert.Equal(t, int64(1), s.InsertErrors)
	assert.Equal(t, int64(3), s.FindCount)
	assert.Equal(t, int64(2), s.FindHits)
	assert.Equal(t, int64(2), s.DeleteCount)
	assert.Equal(t, int64(1), s.DeleteMisses)
	assert.Equal(t, int64(1), s.ResizeCount)
	assert.Equal(t, int64(4), s.MaxCapacity)
}

func TestTableLogsResize(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo)
	tbl := newTable(t, 1, WithLogger(logger))

	mustInsert(t, tbl, "a", value.Integer(1))
	assert.Empty(t, buf.String())

	mustInsert(t, tbl, "b", value.Integer(2))
	out := buf.String()
	require.Contains(t, out, "resize completed")
	assert.Contains(t, out, "old_capacity=1")
	assert.Contains(t, out, "new_capacity=2")
}

func TestOptions(t *testing.T) {
	o := applyOptions(nil)
	assert.Equal(t, "murmur3", o.hasher.Name())
	assert.Equal(t, DefaultMaxLoadFactor, o.maxLoadFactor)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)

	o = applyOptions([]Option{
		WithHasher(nil),
		WithMetricsCollector(nil),
		WithLogger(nil),
		WithMaxLoadFactor(-1),
		nil,
	})
	assert.Equal(t, "murmur3", o.hasher.Name())
	assert.Equal(t, DefaultMaxLoadFactor, o.maxLoadFactor)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)

	o = applyOptions([]Option{
		WithHasher(XXHasher()),
		WithMemoryLimit(1 << 20),
		WithMaxLoadFactor(0.75),
		WithArenaChunkSize(64),
		WithLogLevel(slog.LevelDebug),
	})
	assert.Equal(t, "xxhash", o.hasher.Name())
	assert.Equal(t, int64(1<<20), o.memoryLimit)
	assert.Equal(t, 0.75, o.maxLoadFactor)
	assert.Equal(t, 64, o.chunkSlots)
	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestHasherByName(t *testing.T) {
	h, ok := HasherByName("crc32c")
	require.True(t, ok)
	assert.Equal(t, CRC32CHasher().Sum32([]byte("x")), h.Sum32([]byte("x")))

	_, ok = HasherByName("sha1")
	assert.False(t, ok)
}
