package seqalg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	cases := map[string]struct {
		input    []int
		m        int
		expected []int
		returned int
	}{
		"Middle": {
			input:    []int{1, 2, 3, 4, 5},
			m:        2,
			expected: []int{3, 4, 5, 1, 2},
			returned: 3,
		},
		"Second": {
			input:    []int{1, 2, 3, 4, 5},
			m:        1,
			expected: []int{2, 3, 4, 5, 1},
			returned: 4,
		},
		"Last": {
			input:    []int{1, 2, 3, 4, 5},
			m:        4,
			expected: []int{5, 1, 2, 3, 4},
			returned: 1,
		},
		"NoopStart": {
			input:    []int{1, 2, 3},
			m:        0,
			expected: []int{1, 2, 3},
			returned: 3,
		},
		"NoopEnd": {
			input:    []int{1, 2, 3},
			m:        3,
			expected: []int{1, 2, 3},
			returned: 0,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := append([]int{}, tc.input...)
			p := Rotate(s, tc.m)
			assert.Equal(t, tc.returned, p)
			if diff := cmp.Diff(tc.expected, s); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestRotateRange(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p := RotateRange(s, 2, 5, 7)
	assert.Equal(t, 4, p)

	expected := []int{0, 1, 5, 6, 2, 3, 4, 7}
	if diff := cmp.Diff(expected, s); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

// Rotating to p and then rotating the result at the returned boundary must
// restore the original order, for every choice of middle.
func TestRotateInverse(t *testing.T) {
	original := []int{1, 2, 3, 4, 5, 6, 7}
	for m := 0; m <= len(original); m++ {
		s := append([]int{}, original...)
		p := Rotate(s, m)
		Rotate(s, p)
		if diff := cmp.Diff(original, s); diff != "" {
			t.Errorf("m=%d: -want, +got:\n%s", m, diff)
		}
	}
}

func TestRotateOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		RotateRange([]int{1, 2, 3}, 0, 2, 4)
	})
	assert.Panics(t, func() {
		RotateRange([]int{1, 2, 3}, 2, 1, 3)
	})
}
