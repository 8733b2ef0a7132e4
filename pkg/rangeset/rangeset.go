// Package rangeset provides a set of positions over an ordered index domain,
// stored as a sorted list of non-overlapping, non-adjacent half-open ranges.
// The zero value of RangeSet is an empty set ready for use.
package rangeset

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// RangeSet holds the component ranges in ascending order. No range is empty,
// no two ranges overlap and no two ranges touch: touching ranges are merged
// into one on insertion.
type RangeSet[B constraints.Ordered] struct {
	ranges []Range[B]
}

// New returns the set covering the union of the given ranges.
func New[B constraints.Ordered](ranges ...Range[B]) RangeSet[B] {
	var r RangeSet[B]
	for _, rng := range ranges {
		r.Insert(rng)
	}
	return r
}

func (r RangeSet[B]) IsEmpty() bool {
	return len(r.ranges) == 0
}

// NumRanges returns the number of component ranges.
func (r RangeSet[B]) NumRanges() int {
	return len(r.ranges)
}

// RangeAt returns the i-th component range in ascending order.
func (r RangeSet[B]) RangeAt(i int) Range[B] {
	return r.ranges[i]
}

// Ranges returns the component ranges in ascending order.
func (r RangeSet[B]) Ranges() []Range[B] {
	return slices.Clone(r.ranges)
}

func (r RangeSet[B]) Equal(other RangeSet[B]) bool {
	return slices.Equal(r.ranges, other.ranges)
}

func (r RangeSet[B]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, rng := range r.ranges {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(rng.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Contains reports whether id is covered by the set.
func (r RangeSet[B]) Contains(id B) bool {
	i := sort.Search(len(r.ranges), func(k int) bool {
		return id < r.ranges[k].To
	})
	return i < len(r.ranges) && r.ranges[i].From <= id
}

// ContainsRange reports whether every position of rng is covered by the set.
// An empty rng is covered by any set.
func (r RangeSet[B]) ContainsRange(rng Range[B]) bool {
	if rng.Empty() {
		return true
	}
	i := sort.Search(len(r.ranges), func(k int) bool {
		return rng.From < r.ranges[k].To
	})
	return i < len(r.ranges) && rng.CoveredBy(r.ranges[i])
}

// Overlaps reports whether rng shares at least one position with the set.
func (r RangeSet[B]) Overlaps(rng Range[B]) bool {
	if rng.Empty() {
		return false
	}
	i := sort.Search(len(r.ranges), func(k int) bool {
		return rng.From < r.ranges[k].To
	})
	return i < len(r.ranges) && r.ranges[i].From < rng.To
}

// Insert adds rng to the set, merging it with any ranges it overlaps or
// touches. Inserting an empty range is a no-op.
func (r *RangeSet[B]) Insert(rng Range[B]) {
	if rng.Empty() {
		return
	}
	ranges := r.ranges

	// i is the first range that overlaps or touches rng, j the first range
	// entirely past it. rng absorbs ranges[i:j].
	i := sort.Search(len(ranges), func(k int) bool {
		return rng.From <= ranges[k].To
	})
	j := sort.Search(len(ranges), func(k int) bool {
		return rng.To < ranges[k].From
	})
	if i < j {
		if ranges[i].From < rng.From {
			rng.From = ranges[i].From
		}
		if rng.To < ranges[j-1].To {
			rng.To = ranges[j-1].To
		}
	}
	r.ranges = slices.Replace(ranges, i, j, rng)
}

// Append adds rng at the end of the set. rng must start at or after the upper
// bound of every range already present; a range touching the last range is
// merged into it. This is the fast path used when ranges are produced in
// ascending order.
func (r *RangeSet[B]) Append(rng Range[B]) {
	if rng.Empty() {
		return
	}
	if n := len(r.ranges); n > 0 {
		last := &r.ranges[n-1]
		if rng.From < last.To {
			panic("rangeset: append out of order")
		}
		if rng.From == last.To {
			last.To = rng.To
			return
		}
	}
	r.ranges = append(r.ranges, rng)
}

// Remove deletes every position of rng from the set, shrinking, splitting or
// dropping the ranges it overlaps. Removing an empty range is a no-op.
func (r *RangeSet[B]) Remove(rng Range[B]) {
	if rng.Empty() || len(r.ranges) == 0 {
		return
	}
	ranges := r.ranges

	// ranges[i:j] is the span overlapping rng. Unlike Insert, a range merely
	// touching rng is unaffected.
	i := sort.Search(len(ranges), func(k int) bool {
		return rng.From < ranges[k].To
	})
	j := sort.Search(len(ranges), func(k int) bool {
		return rng.To <= ranges[k].From
	})
	if i >= j {
		return
	}

	// At most a leftover prefix of the first affected range and a leftover
	// suffix of the last one survive; keeping them in an inline buffer avoids
	// allocating on the common paths.
	var keep [2]Range[B]
	n := 0
	if ranges[i].From < rng.From {
		keep[n] = Range[B]{From: ranges[i].From, To: rng.From}
		n++
	}
	if rng.To < ranges[j-1].To {
		keep[n] = Range[B]{From: rng.To, To: ranges[j-1].To}
		n++
	}
	r.ranges = slices.Replace(ranges, i, j, keep[:n]...)
}

// Inverted returns the set covering exactly the positions of within that are
// not in r.
func (r RangeSet[B]) Inverted(within Range[B]) RangeSet[B] {
	var out RangeSet[B]
	cur := within.From
	for _, rng := range r.ranges {
		if rng.To <= within.From {
			continue
		}
		if within.To <= rng.From {
			break
		}
		if cur < rng.From {
			out.Append(Range[B]{From: cur, To: rng.From})
		}
		if cur < rng.To {
			cur = rng.To
		}
	}
	if cur < within.To {
		out.Append(Range[B]{From: cur, To: within.To})
	}
	return out
}

// invariant verifies the structural rules of the range list. It is exercised
// by the tests after every mutation and must hold after any public operation.
func (r RangeSet[B]) invariant() error {
	for i, rng := range r.ranges {
		if rng.Empty() {
			return fmt.Errorf("empty range %s at position %d", rng, i)
		}
		if i > 0 && rng.From <= r.ranges[i-1].To {
			return fmt.Errorf("range %s at position %d overlaps or touches %s", rng, i, r.ranges[i-1])
		}
	}
	return nil
}
