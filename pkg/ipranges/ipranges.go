// Package ipranges provides a set of IP addresses held as sorted, merged
// address ranges. It is the IP-space counterpart of pkg/rangeset: ranges here
// are inclusive on both ends, following netipx.IPRange.
package ipranges

import (
	"net/netip"
	"slices"
	"strings"

	"go4.org/netipx"
)

// IPRangeSet is an immutable set of IP addresses. The zero value is the empty
// set; every operation returns a new set.
type IPRangeSet struct {
	set *netipx.IPSet
}

// New returns the set covering the union of the given ranges.
func New(ranges ...netipx.IPRange) (IPRangeSet, error) {
	var b netipx.IPSetBuilder
	for _, rng := range ranges {
		b.AddRange(rng)
	}
	return build(&b)
}

func build(b *netipx.IPSetBuilder) (IPRangeSet, error) {
	s, err := b.IPSet()
	if err != nil {
		return IPRangeSet{}, err
	}
	return IPRangeSet{set: s}, nil
}

func (r IPRangeSet) builder() *netipx.IPSetBuilder {
	b := new(netipx.IPSetBuilder)
	if r.set != nil {
		b.AddSet(r.set)
	}
	return b
}

func (r IPRangeSet) Insert(rng netipx.IPRange) (IPRangeSet, error) {
	b := r.builder()
	b.AddRange(rng)
	return build(b)
}

func (r IPRangeSet) InsertPrefix(p netip.Prefix) (IPRangeSet, error) {
	b := r.builder()
	b.AddPrefix(p)
	return build(b)
}

func (r IPRangeSet) Remove(rng netipx.IPRange) (IPRangeSet, error) {
	b := r.builder()
	b.RemoveRange(rng)
	return build(b)
}

func (r IPRangeSet) Contains(addr netip.Addr) bool {
	return r.set != nil && r.set.Contains(addr)
}

func (r IPRangeSet) ContainsRange(rng netipx.IPRange) bool {
	return r.set != nil && r.set.ContainsRange(rng)
}

func (r IPRangeSet) Overlaps(rng netipx.IPRange) bool {
	return r.set != nil && r.set.OverlapsRange(rng)
}

func (r IPRangeSet) IsEmpty() bool {
	return r.set == nil || len(r.set.Ranges()) == 0
}

// Ranges returns the component address ranges in ascending order.
func (r IPRangeSet) Ranges() []netipx.IPRange {
	if r.set == nil {
		return nil
	}
	return r.set.Ranges()
}

// Prefixes returns the minimal set of CIDR prefixes covering the set.
func (r IPRangeSet) Prefixes() []netip.Prefix {
	if r.set == nil {
		return nil
	}
	return r.set.Prefixes()
}

func (r IPRangeSet) Union(other IPRangeSet) (IPRangeSet, error) {
	b := r.builder()
	if other.set != nil {
		b.AddSet(other.set)
	}
	return build(b)
}

func (r IPRangeSet) Subtract(other IPRangeSet) (IPRangeSet, error) {
	b := r.builder()
	if other.set != nil {
		b.RemoveSet(other.set)
	}
	return build(b)
}

func (r IPRangeSet) Intersect(other IPRangeSet) (IPRangeSet, error) {
	b := r.builder()
	var w netipx.IPSetBuilder
	if other.set != nil {
		w.AddSet(other.set)
	}
	ws, err := w.IPSet()
	if err != nil {
		return IPRangeSet{}, err
	}
	b.Intersect(ws)
	return build(b)
}

// Inverted returns the set covering exactly the addresses of within that are
// not in r.
func (r IPRangeSet) Inverted(within netipx.IPRange) (IPRangeSet, error) {
	b := r.builder()
	b.Complement()
	var w netipx.IPSetBuilder
	w.AddRange(within)
	ws, err := w.IPSet()
	if err != nil {
		return IPRangeSet{}, err
	}
	b.Intersect(ws)
	return build(b)
}

func (r IPRangeSet) Equal(other IPRangeSet) bool {
	return slices.Equal(r.Ranges(), other.Ranges())
}

func (r IPRangeSet) String() string {
	ranges := r.Ranges()
	strs := make([]string, 0, len(ranges))
	for _, rng := range ranges {
		strs = append(strs, rng.String())
	}
	return "{" + strings.Join(strs, " ") + "}"
}
