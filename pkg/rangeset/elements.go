package rangeset

import "golang.org/x/exp/constraints"

// Element-wise operations are expressed as unit-length range operations and
// therefore need a bound type with a successor, i.e. an integer.

// Of returns the set covering exactly the given ids.
func Of[B constraints.Integer](ids ...B) RangeSet[B] {
	var r RangeSet[B]
	for _, id := range ids {
		InsertID(&r, id)
	}
	return r
}

// InsertID adds a single id to the set.
func InsertID[B constraints.Integer](r *RangeSet[B], id B) {
	r.Insert(Range[B]{From: id, To: id + 1})
}

// RemoveID deletes a single id from the set.
func RemoveID[B constraints.Integer](r *RangeSet[B], id B) {
	r.Remove(Range[B]{From: id, To: id + 1})
}

// AppendID adds a single id at the end of the set, with the same precondition
// as Append.
func AppendID[B constraints.Integer](r *RangeSet[B], id B) {
	r.Append(Range[B]{From: id, To: id + 1})
}

// IDs returns every id covered by the set in ascending order.
func IDs[B constraints.Integer](r RangeSet[B]) []B {
	return AppendIDs(r, nil)
}

// AppendIDs appends every id covered by the set to dst in ascending order.
func AppendIDs[B constraints.Integer](r RangeSet[B], dst []B) []B {
	for _, rng := range r.ranges {
		for id := rng.From; id < rng.To; id++ {
			dst = append(dst, id)
		}
	}
	return dst
}

// Count returns the number of ids covered by the set.
func Count[B constraints.Integer](r RangeSet[B]) int {
	n := 0
	for _, rng := range r.ranges {
		n += int(rng.To - rng.From)
	}
	return n
}
