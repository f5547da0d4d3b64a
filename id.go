package listkit

import (
	"hash/fnv"
	"strconv"
	"sync/atomic"
)

// ID identifies a control for press and focus tracking.
// IDs are stable across passes for the same control.
type ID uint64

var idCounter atomic.Uint64

// NewID returns a fresh root ID for a widget instance.
func NewID() ID {
	return ID(idCounter.Add(1) << 20)
}

// Child derives a stable ID for a sub-control of id.
func (id ID) Child(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatUint(uint64(id), 16)))
	h.Write([]byte{0})
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// ChildN derives a stable ID for the n-th repeated sub-control of id.
func (id ID) ChildN(label string, n int) ID {
	return id.Child(label + "#" + strconv.Itoa(n))
}
