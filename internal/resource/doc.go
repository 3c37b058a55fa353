// Package resource implements memory accounting and limits for a table.
//
// Every byte a table holds (bucket-head arrays, arena chunks, keys and
// values) is charged through a Controller and released when it is dropped,
// so usage returns to zero after teardown.
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB limit
//	})
//
//	if err := rc.AcquireMemory(1024); err != nil {
//	    // ErrMemoryLimitExceeded - surfaced to the caller as an allocation failure
//	}
//	defer rc.ReleaseMemory(1024)
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
