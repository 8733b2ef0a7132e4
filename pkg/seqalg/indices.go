package seqalg

import "github.com/henderiw/rangeset/pkg/rangeset"

// IndicesWhere returns the set of positions in s whose element satisfies
// pred. The scan is a single forward pass and every matching position is
// added through the set's ascending-order fast path, so building the set is
// O(len(s)) with runs of matches coalescing into single ranges.
func IndicesWhere[E any](s []E, pred func(E) bool) rangeset.RangeSet[int] {
	var out rangeset.RangeSet[int]
	for i, e := range s {
		if pred(e) {
			rangeset.AppendID(&out, i)
		}
	}
	return out
}

// IndicesOf returns the set of positions in s holding v.
func IndicesOf[E comparable](s []E, v E) rangeset.RangeSet[int] {
	return IndicesWhere(s, func(e E) bool { return e == v })
}
