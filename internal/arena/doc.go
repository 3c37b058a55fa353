// Package arena provides a chunked slot allocator for hash table chain nodes.
//
// Slots are addressed by Ref, a 1-based uint32 index. The zero Ref is the
// null reference, so chain links can be stored as plain integers and a
// released slot can never be reached through a dangling pointer.
//
// # Features
//
//   - Fixed-size chunks (power of two slots) give stable slot addresses
//   - Released slots are zeroed and recycled through a free list
//   - Chunk memory is charged to an optional MemoryAcquirer
//
// # Safety
//
// All methods return errors instead of panicking. Get returns nil for the
// null Ref and for refs outside the allocated range.
//
// An Arena is not safe for concurrent use.
package arena
