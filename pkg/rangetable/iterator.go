package rangetable

import "github.com/henderiw/rangeset/pkg/rangeset"

// Iterator walks the claimed entries of a table in ascending id order.
type Iterator[T1 any] struct {
	current int
	ids     []int64
	data    map[int64]T1
}

func (r *Iterator[T1]) Value() T1 {
	return r.data[r.ids[r.current]]
}

func (r *Iterator[T1]) ID() int64 {
	return r.ids[r.current]
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < len(r.ids)
}

// FreeIterator walks the free space of a table one range at a time.
type FreeIterator struct {
	current int
	ranges  []rangeset.Range[int64]
}

func (r *FreeIterator) Range() rangeset.Range[int64] {
	return r.ranges[r.current]
}

func (r *FreeIterator) Next() bool {
	r.current++
	return r.current < len(r.ranges)
}
