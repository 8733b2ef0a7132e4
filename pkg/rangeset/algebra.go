package rangeset

import "slices"

// Union returns a new set covering every position covered by r or other.
func (r RangeSet[B]) Union(other RangeSet[B]) RangeSet[B] {
	out := RangeSet[B]{ranges: slices.Clone(r.ranges)}
	for _, rng := range other.ranges {
		out.Insert(rng)
	}
	return out
}

// Subtract returns a new set covering every position covered by r but not by
// other.
func (r RangeSet[B]) Subtract(other RangeSet[B]) RangeSet[B] {
	out := RangeSet[B]{ranges: slices.Clone(r.ranges)}
	for _, rng := range other.ranges {
		out.Remove(rng)
	}
	return out
}

// Intersect returns a new set covering every position covered by both r and
// other. Both range lists are walked once.
func (r RangeSet[B]) Intersect(other RangeSet[B]) RangeSet[B] {
	var out RangeSet[B]
	i, j := 0, 0
	for i < len(r.ranges) && j < len(other.ranges) {
		a, b := r.ranges[i], other.ranges[j]
		lo := max(a.From, b.From)
		hi := min(a.To, b.To)
		if lo < hi {
			out.Append(Range[B]{From: lo, To: hi})
		}
		if a.To < b.To {
			i++
		} else {
			j++
		}
	}
	return out
}

// SymmetricDifference returns a new set covering every position covered by
// exactly one of r and other.
func (r RangeSet[B]) SymmetricDifference(other RangeSet[B]) RangeSet[B] {
	return r.Union(other).Subtract(r.Intersect(other))
}

func (r RangeSet[B]) IsSubsetOf(other RangeSet[B]) bool {
	return r.Intersect(other).Equal(r)
}

func (r RangeSet[B]) IsSupersetOf(other RangeSet[B]) bool {
	return other.IsSubsetOf(r)
}

func (r RangeSet[B]) IsStrictSubsetOf(other RangeSet[B]) bool {
	return r.IsSubsetOf(other) && !r.Equal(other)
}

func (r RangeSet[B]) IsStrictSupersetOf(other RangeSet[B]) bool {
	return other.IsStrictSubsetOf(r)
}
