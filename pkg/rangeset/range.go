package rangeset

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Range is a half-open interval [From, To) over an ordered bound type.
// A Range with To <= From is empty.
type Range[B constraints.Ordered] struct {
	From B
	To   B
}

func RangeFrom[B constraints.Ordered](from, to B) Range[B] {
	return Range[B]{From: from, To: to}
}

// ParseRange parses a string of the form "from-to" into an integer range.
func ParseRange(s string) (Range[int64], error) {
	var r Range[int64]
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	fromInt64, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid from bound %q in range %q", from, s)
	}
	toInt64, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid to bound %q in range %q", to, s)
	}
	return Range[int64]{From: fromInt64, To: toInt64}, nil
}

func (r Range[B]) String() string {
	return fmt.Sprintf("%v-%v", r.From, r.To)
}

func (r Range[B]) Empty() bool {
	return r.To <= r.From
}

func (r Range[B]) Contains(id B) bool {
	return r.From <= id && id < r.To
}

// Overlaps reports whether r and other share at least one position.
func (r Range[B]) Overlaps(other Range[B]) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.From < other.To && other.From < r.To
}

func (r Range[B]) Less(other Range[B]) bool {
	if r.From != other.From {
		return r.From < other.From
	}
	return other.To < r.To
}

// EntirelyBefore reports whether r lies entirely before other.
func (r Range[B]) EntirelyBefore(other Range[B]) bool {
	return r.To <= other.From
}

// CoveredBy reports whether r is entirely contained within other.
func (r Range[B]) CoveredBy(other Range[B]) bool {
	return other.From <= r.From && r.To <= other.To
}

// InMiddleOf reports whether r is inside other, but not touching the
// edges of other.
func (r Range[B]) InMiddleOf(other Range[B]) bool {
	return other.From < r.From && r.To < other.To
}

// OverlapsStartOf reports whether r covers the start of other, but not
// all of other.
func (r Range[B]) OverlapsStartOf(other Range[B]) bool {
	return r.From <= other.From && r.To < other.To
}

// OverlapsEndOf reports whether r covers the end of other, but not all
// of other.
func (r Range[B]) OverlapsEndOf(other Range[B]) bool {
	return other.From < r.From && other.To <= r.To
}
