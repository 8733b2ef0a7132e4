package seqalg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/stretchr/testify/assert"
)

func TestIndicesWhere(t *testing.T) {
	s := []int{1, 2, 3, 4, 3, 3, 4, 5, 3, 4, 3, 3, 3}

	set := IndicesOf(s, 3)
	expected := []rangeset.Range[int]{
		rangeset.RangeFrom(2, 3),
		rangeset.RangeFrom(4, 6),
		rangeset.RangeFrom(8, 9),
		rangeset.RangeFrom(10, 13),
	}
	if diff := cmp.Diff(expected, set.Ranges()); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	none := IndicesWhere(s, func(v int) bool { return v > 100 })
	assert.True(t, none.IsEmpty())
}

func TestRemoveAll(t *testing.T) {
	cases := map[string]struct {
		input    []int
		remove   []rangeset.Range[int]
		expected []int
	}{
		"EmptySet": {
			input:    []int{1, 2, 3},
			expected: []int{1, 2, 3},
		},
		"Middle": {
			input:    []int{0, 1, 2, 3, 4, 5},
			remove:   []rangeset.Range[int]{rangeset.RangeFrom(2, 4)},
			expected: []int{0, 1, 4, 5},
		},
		"Head": {
			input:    []int{0, 1, 2, 3},
			remove:   []rangeset.Range[int]{rangeset.RangeFrom(0, 2)},
			expected: []int{2, 3},
		},
		"Tail": {
			input:    []int{0, 1, 2, 3},
			remove:   []rangeset.Range[int]{rangeset.RangeFrom(2, 4)},
			expected: []int{0, 1},
		},
		"Several": {
			input: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			remove: []rangeset.Range[int]{
				rangeset.RangeFrom(1, 3),
				rangeset.RangeFrom(5, 6),
				rangeset.RangeFrom(8, 10),
			},
			expected: []int{0, 3, 4, 6, 7},
		},
		"All": {
			input:    []int{0, 1, 2},
			remove:   []rangeset.Range[int]{rangeset.RangeFrom(0, 3)},
			expected: []int{},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := append([]int{}, tc.input...)
			got := RemoveAll(s, rangeset.New(tc.remove...))
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestRemoveAllIndicesOf(t *testing.T) {
	s := []int{1, 2, 3, 4, 3, 3, 4, 5, 3, 4, 3, 3, 3}
	got := RemoveAll(s, IndicesOf(s, 3))

	expected := []int{1, 2, 4, 4, 5, 4}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

// RemoveAll must compact within the caller's buffer, not allocate a new one.
func TestRemoveAllSharesBuffer(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	got := RemoveAll(s, rangeset.New(rangeset.RangeFrom(2, 5)))

	assert.Len(t, got, 5)
	assert.Same(t, &s[0], &got[0])
	// the vacated tail is zeroed
	if diff := cmp.Diff([]int{0, 1, 5, 6, 7, 0, 0, 0}, s); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestRemovingAll(t *testing.T) {
	s := []int{1, 2, 3, 4, 3, 3, 4, 5, 3, 4, 3, 3, 3}
	got := RemovingAll(s, IndicesOf(s, 3))

	expected := []int{1, 2, 4, 4, 5, 4}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
	// the input is untouched
	if diff := cmp.Diff([]int{1, 2, 3, 4, 3, 3, 4, 5, 3, 4, 3, 3, 3}, s); diff != "" {
		t.Errorf("input: -want, +got:\n%s", diff)
	}
}

func TestRemoveAllOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		RemoveAll([]int{1, 2, 3}, rangeset.New(rangeset.RangeFrom(2, 5)))
	})
}
