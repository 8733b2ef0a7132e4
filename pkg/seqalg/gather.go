package seqalg

import "github.com/henderiw/rangeset/pkg/rangeset"

// Gather moves the elements of s at the positions in set so they form one
// contiguous block ending where position before originally pointed, preserving
// the relative order of the gathered elements and of everything else. It
// returns the range the gathered elements occupy afterwards.
//
// Both sides of the insertion point are stable-partitioned by set membership
// of the original positions, so the whole move costs O(len(s) log len(s))
// swaps and no extra space.
func Gather[E any](s []E, set rangeset.RangeSet[int], before int) rangeset.Range[int] {
	d := sliceData[E](s)
	lo := StablePartitionData(d, 0, before, func(i int) bool {
		return set.Contains(i)
	})
	hi := StablePartitionData(d, before, len(s), func(i int) bool {
		return !set.Contains(i)
	})
	return rangeset.RangeFrom(lo, hi)
}

// GatherFunc moves the elements of s satisfying pred so they form one
// contiguous block ending where position before originally pointed. See
// Gather.
func GatherFunc[E any](s []E, before int, pred func(E) bool) rangeset.Range[int] {
	d := sliceData[E](s)
	lo := StablePartitionData(d, 0, before, func(i int) bool {
		return pred(s[i])
	})
	hi := StablePartitionData(d, before, len(s), func(i int) bool {
		return !pred(s[i])
	})
	return rangeset.RangeFrom(lo, hi)
}

// Shift moves the contiguous block s[from.From:from.To] so it ends where
// position before originally pointed, with a single rotation over the span
// between the block and the insertion point. It returns the range the block
// occupies afterwards. An insertion point inside the block is a no-op: the
// block already surrounds it.
func Shift[E any](s []E, from rangeset.Range[int], before int) rangeset.Range[int] {
	if from.Empty() {
		return rangeset.RangeFrom(before, before)
	}
	switch {
	case from.To <= before:
		p := RotateRange(s, from.From, from.To, before)
		return rangeset.RangeFrom(p, before)
	case before <= from.From:
		p := RotateRange(s, before, from.From, from.To)
		return rangeset.RangeFrom(before, p)
	default:
		return from
	}
}

// ShiftOne moves the single element at i so it sits just before the element
// originally at position before, returning its new position.
func ShiftOne[E any](s []E, i, before int) int {
	return Shift(s, rangeset.RangeFrom(i, i+1), before).From
}
