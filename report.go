package chainmap

import (
	"github.com/hupe1980/chainmap/codec"
)

// Report is the structured form of Dump. Only non-empty buckets are listed.
type Report struct {
	Capacity   int            `json:"capacity"`
	Count      int            `json:"count"`
	LoadFactor float64        `json:"load_factor"`
	Buckets    []BucketReport `json:"buckets"`
}

// BucketReport lists one chain from head to tail.
type BucketReport struct {
	Index   int           `json:"index"`
	Entries []EntryReport `json:"entries"`
}

// EntryReport describes a stored key and its rendered value.
type EntryReport struct {
	Key   string `json:"key"`
	Hash  uint32 `json:"hash"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Report returns the structured diagnostic listing of the table.
func (t *Table) Report() Report {
	r := Report{
		Capacity:   len(t.heads),
		Count:      t.count,
		LoadFactor: t.LoadFactor(),
		Buckets:    []BucketReport{},
	}

	it := t.occupied.Iterator()
	for it.HasNext() {
		idx := it.Next()
		b := BucketReport{Index: int(idx)}
		for ref := t.heads[idx]; ref != 0; {
			n := t.nodes.Get(ref)
			b.Entries = append(b.Entries, EntryReport{
				Key:   string(n.key),
				Hash:  n.hash,
				Kind:  n.value.Kind().String(),
				Value: n.value.String(),
			})
			ref = n.next
		}
		r.Buckets = append(r.Buckets, b)
	}
	return r
}

// DumpJSON encodes Report with c. If c is nil, codec.Default is used.
func (t *Table) DumpJSON(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(t.Report())
}
