package chainmap

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Dump returns a deterministic listing of capacity, count, load factor and
// every bucket's chain from head to tail:
//
//	capacity:    8
//	count:       2
//	load factor: 0.25
//	data:
//	[0]: [Four, hey] [name, Ryan]
//	[1]: null
//	...
func (t *Table) Dump() string {
	var sb strings.Builder
	_, _ = t.WriteDump(&sb)
	return sb.String()
}

// WriteDump writes the Dump listing to w.
func (t *Table) WriteDump(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "capacity:    %d\n", len(t.heads))
	fmt.Fprintf(&buf, "count:       %d\n", t.count)
	fmt.Fprintf(&buf, "load factor: %.2f\n", t.LoadFactor())
	buf.WriteString("data:\n")

	for i, head := range t.heads {
		fmt.Fprintf(&buf, "[%d]: ", i)
		if head == 0 {
			buf.WriteString("null\n")
			continue
		}
		for ref := head; ref != 0; {
			n := t.nodes.Get(ref)
			if ref != head {
				buf.WriteByte(' ')
			}
			buf.WriteByte('[')
			buf.Write(n.key)
			buf.WriteString(", ")
			buf.WriteString(n.value.String())
			buf.WriteByte(']')
			ref = n.next
		}
		buf.WriteByte('\n')
	}

	return buf.WriteTo(w)
}
