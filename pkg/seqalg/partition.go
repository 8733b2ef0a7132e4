package seqalg

// HalfStablePartitionData moves every element of data[a:b] whose position
// satisfies pred to the end of the range, preserving the relative order of the
// elements that do not satisfy it. It returns the boundary: the first position
// of the satisfying group, or b if no position satisfies pred.
//
// pred is called exactly once per position, in ascending order, before the
// element at that position has been moved.
func HalfStablePartitionData(data Interface, a, b int, pred func(i int) bool) int {
	checkBounds(data, a, a, b)
	p := a
	for i := a; i < b; i++ {
		if !pred(i) {
			if i != p {
				data.Swap(p, i)
			}
			p++
		}
	}
	return p
}

// StablePartitionData rearranges data[a:b] so every element whose position
// satisfies pred follows every element whose position does not, preserving the
// relative order of both groups. It returns the boundary between the groups.
//
// The range is split at its midpoint, each half is partitioned recursively and
// the two halves are merged with a single rotation, so the whole partition
// costs O(n log n) swaps and no extra space. pred is called exactly once per
// position, before the element at that position has been moved.
func StablePartitionData(data Interface, a, b int, pred func(i int) bool) int {
	checkBounds(data, a, a, b)
	return stablePartition(data, a, b, pred)
}

func stablePartition(data Interface, a, b int, pred func(i int) bool) int {
	switch b - a {
	case 0:
		return a
	case 1:
		if pred(a) {
			return a
		}
		return b
	}
	m := int(uint(a+b) >> 1)
	p := stablePartition(data, a, m, pred)
	q := stablePartition(data, m, b, pred)
	// data[p:m] passes, data[m:q] fails; one rotation joins the two
	// partitioned halves and its return value is the merged boundary.
	return RotateData(data, p, m, q)
}

// HalfStablePartition partitions s in place by pred, moving every satisfying
// element to the end and preserving only the order of the group that does not
// satisfy pred. It returns the boundary of the two groups.
func HalfStablePartition[E any](s []E, pred func(E) bool) int {
	return HalfStablePartitionData(sliceData[E](s), 0, len(s), func(i int) bool {
		return pred(s[i])
	})
}

// StablePartition partitions s in place by pred, preserving the relative order
// of both groups: s[:p] holds the elements failing pred and s[p:] the elements
// satisfying it, each in their original order. It returns p.
func StablePartition[E any](s []E, pred func(E) bool) int {
	return StablePartitionData(sliceData[E](s), 0, len(s), func(i int) bool {
		return pred(s[i])
	})
}
