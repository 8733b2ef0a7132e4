// Package seqalg provides in-place rearrangement algorithms over ordered
// sequences: rotation, stable and half-stable partitioning, and the batch
// positional edits built on top of them (remove at positions, gather to an
// insertion point, shift a contiguous block).
//
// The engines operate either on plain slices or on any sequence exposing the
// Interface capability. None of the algorithms allocate or duplicate the
// underlying storage; they only swap or copy elements within it.
package seqalg

// Interface is the minimal capability the in-place engines need from a
// sequence: a length and positional swap. It is sort.Interface without the
// ordering.
type Interface interface {
	Len() int
	Swap(i, j int)
}

type sliceData[E any] []E

func (r sliceData[E]) Len() int      { return len(r) }
func (r sliceData[E]) Swap(i, j int) { r[i], r[j] = r[j], r[i] }

func checkBounds(data Interface, a, m, b int) {
	if a < 0 || m < a || b < m || data.Len() < b {
		panic("seqalg: position out of range")
	}
}
