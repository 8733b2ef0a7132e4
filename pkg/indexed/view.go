// Package indexed provides a projection view over a base slice restricted to
// the positions named by a range set. Constructing a view copies nothing;
// reads and writes go straight through to the base slice.
package indexed

import (
	"cmp"
	"iter"

	"github.com/henderiw/rangeset/pkg/rangeset"
)

// Index addresses an element of a View. It tracks both the ordinal of the
// component range and the position in the base slice; ordering follows the
// base position alone, so indexes from views over the same base compare
// consistently with the base's own order.
type Index struct {
	r   int
	pos int
}

// Pos returns the position in the base slice.
func (i Index) Pos() int {
	return i.pos
}

func (i Index) Compare(j Index) int {
	return cmp.Compare(i.pos, j.pos)
}

// View presents the elements of a base slice at the positions in a range set
// as a single sequence in ascending base order.
type View[E any] struct {
	base []E
	set  rangeset.RangeSet[int]
}

// NewView returns the view of base restricted to the positions in set. Every
// position in set must be a valid position of base. The view aliases both the
// base slice and the set; mutating the set while the view is in use is
// unspecified.
func NewView[E any](base []E, set rangeset.RangeSet[int]) View[E] {
	if n := set.NumRanges(); n > 0 {
		if set.RangeAt(0).From < 0 || len(base) < set.RangeAt(n-1).To {
			panic("indexed: set positions out of range of base")
		}
	}
	return View[E]{base: base, set: set}
}

// Start returns the index of the first element, or End for an empty view.
func (v View[E]) Start() Index {
	if v.set.NumRanges() == 0 {
		return v.End()
	}
	return Index{r: 0, pos: v.set.RangeAt(0).From}
}

// End returns the index one past the last element.
func (v View[E]) End() Index {
	n := v.set.NumRanges()
	if n == 0 {
		return Index{}
	}
	return Index{r: n, pos: v.set.RangeAt(n - 1).To}
}

// Next returns the index after i, stepping across range boundaries.
func (v View[E]) Next(i Index) Index {
	rng := v.set.RangeAt(i.r)
	if i.pos+1 < rng.To {
		return Index{r: i.r, pos: i.pos + 1}
	}
	if i.r+1 < v.set.NumRanges() {
		return Index{r: i.r + 1, pos: v.set.RangeAt(i.r + 1).From}
	}
	return Index{r: i.r + 1, pos: rng.To}
}

// Prev returns the index before i, stepping across range boundaries.
func (v View[E]) Prev(i Index) Index {
	if i.r < v.set.NumRanges() {
		if rng := v.set.RangeAt(i.r); rng.From < i.pos {
			return Index{r: i.r, pos: i.pos - 1}
		}
	}
	prev := v.set.RangeAt(i.r - 1)
	return Index{r: i.r - 1, pos: prev.To - 1}
}

// At returns the element at i.
func (v View[E]) At(i Index) E {
	return v.base[i.pos]
}

// SetAt writes e through to the base slice at i.
func (v View[E]) SetAt(i Index, e E) {
	v.base[i.pos] = e
}

// Count returns the number of elements in the view. It walks the component
// ranges, so it is O(set.NumRanges()), not O(1).
func (v View[E]) Count() int {
	return rangeset.Count(v.set)
}

// Values returns an iterator over the elements of the view in ascending base
// order.
func (v View[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for k := 0; k < v.set.NumRanges(); k++ {
			rng := v.set.RangeAt(k)
			for p := rng.From; p < rng.To; p++ {
				if !yield(v.base[p]) {
					return
				}
			}
		}
	}
}

// All returns an iterator over (base position, element) pairs in ascending
// base order.
func (v View[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for k := 0; k < v.set.NumRanges(); k++ {
			rng := v.set.RangeAt(k)
			for p := rng.From; p < rng.To; p++ {
				if !yield(p, v.base[p]) {
					return
				}
			}
		}
	}
}

// Collect copies the elements of the view into a new slice.
func (v View[E]) Collect() []E {
	out := make([]E, 0, v.Count())
	for e := range v.Values() {
		out = append(out, e)
	}
	return out
}
