package chainmap

import (
	"fmt"
	"iter"

	"github.com/hupe1980/chainmap/value"
)

// Entry is a read-only view of a stored key.
//
// Key is a copy owned by the caller. Value is still owned by the table and
// is only valid until the key is overwritten or deleted.
type Entry struct {
	Key   []byte
	Hash  uint32
	Index int
	Value value.Var
}

// String formats the entry as "index=I, hash=H, key=K, value=V".
func (e Entry) String() string {
	return fmt.Sprintf("index=%d, hash=%d, key=%s, value=%s", e.Index, e.Hash, e.Key, value.Render(e.Value))
}

func (t *Table) entry(n *node) Entry {
	return Entry{
		Key:   append([]byte(nil), n.key...),
		Hash:  n.hash,
		Index: int(t.index(n.hash)),
		Value: n.value,
	}
}

// All returns an iterator over every key and value, in bucket index order
// and head-to-tail within a chain. The order is stable until the next
// mutation. The yielded key must not be modified or retained.
//
// The table must not be mutated during iteration.
func (t *Table) All() iter.Seq2[[]byte, value.Var] {
	return func(yield func([]byte, value.Var) bool) {
		if t.closed {
			return
		}
		it := t.occupied.Iterator()
		for it.HasNext() {
			for ref := t.heads[it.Next()]; ref != 0; {
				n := t.nodes.Get(ref)
				if !yield(n.key, n.value) {
					return
				}
				ref = n.next
			}
		}
	}
}

// Entries returns a view of every entry in iteration order.
func (t *Table) Entries() []Entry {
	if t.closed {
		return nil
	}
	out := make([]Entry, 0, t.count)
	it := t.occupied.Iterator()
	for it.HasNext() {
		for ref := t.heads[it.Next()]; ref != 0; {
			n := t.nodes.Get(ref)
			out = append(out, t.entry(n))
			ref = n.next
		}
	}
	return out
}
