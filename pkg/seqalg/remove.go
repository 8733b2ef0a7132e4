package seqalg

import "github.com/henderiw/rangeset/pkg/rangeset"

// RemoveAll deletes the elements of s at the positions in set, in place,
// preserving the relative order of the surviving elements. It returns the
// shortened slice, which shares the backing array of s; the vacated tail is
// zeroed so no element stays reachable. Every position in set must be a valid
// position of s.
//
// The compaction is a single pass over set's ranges: the surviving elements in
// each gap between removed ranges are copied leftward into the space vacated
// so far, costing O(len(s)) element copies and no allocation.
func RemoveAll[E any](s []E, set rangeset.RangeSet[int]) []E {
	n := set.NumRanges()
	if n == 0 {
		return s
	}
	if set.RangeAt(0).From < 0 || len(s) < set.RangeAt(n-1).To {
		panic("seqalg: position out of range")
	}
	w := set.RangeAt(0).From
	for k := 0; k < n; k++ {
		gapFrom := set.RangeAt(k).To
		gapTo := len(s)
		if k+1 < n {
			gapTo = set.RangeAt(k + 1).From
		}
		w += copy(s[w:], s[gapFrom:gapTo])
	}
	clear(s[w:])
	return s[:w]
}

// RemovingAll returns a new slice holding the elements of s not at the
// positions in set, in order. s is left untouched. Use RemoveAll to compact in
// place instead.
func RemovingAll[E any](s []E, set rangeset.RangeSet[int]) []E {
	keep := set.Inverted(rangeset.RangeFrom(0, len(s)))
	out := make([]E, 0, rangeset.Count(keep))
	for k := 0; k < keep.NumRanges(); k++ {
		rng := keep.RangeAt(k)
		out = append(out, s[rng.From:rng.To]...)
	}
	return out
}
