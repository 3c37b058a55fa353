// Package chainmap provides a hash table with separate chaining that maps
// byte-string keys to small typed values.
//
// # Quick Start
//
//	t, _ := chainmap.New(8)
//	defer t.Destroy()
//
//	_ = t.Insert([]byte("name"), value.FromString("Ryan"))
//	_ = t.Insert([]byte("age"), value.Integer(24))
//
//	if v, ok := t.Get([]byte("age")); ok {
//	    fmt.Println(v) // 24
//	}
//	t.Delete([]byte("name"))
//	fmt.Print(t.Dump())
//
// # Ownership
//
// Insert transfers ownership of the value to the table. The table destroys
// a value when its key is overwritten, deleted, or the table is destroyed.
// Values returned by Get and Find stay owned by the table and must not be
// destroyed by the caller.
//
// # Storage
//
// Chain nodes live in a chunked arena and link to each other by slot index,
// so unlinking a node never reads released memory. Each node caches the hash
// of its key; growing the table redistributes nodes into a new bucket array
// without rehashing key bytes.
//
// # Growth
//
// When a new key is about to be added and count >= capacity * max load factor
// (1.0 by default, see WithMaxLoadFactor), the capacity doubles first.
// Overwriting an existing key never grows the table.
//
// # Errors
//
// Memory is accounted per table. With WithMemoryLimit, operations that would
// exceed the limit return ErrAllocationFailed and leave the table's keys,
// values and capacity unchanged. An arena chunk reserved along the way is
// kept for reuse by later inserts.
// A missing key is never an error.
//
// # Hashing
//
// Keys are hashed with MurmurHash3 x86_32 (seed 0) by default. WithHasher
// plugs in xxHash, CRC32-C, or any custom Hasher. Lookups always compare the
// full key bytes, so hash collisions are resolved correctly.
//
// # Concurrency
//
// A Table is not safe for concurrent use.
package chainmap
