package labeltable

import (
	"fmt"
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

var initEntries = map[int64]labels.Set{
	0:    map[string]string{"type": "untagged", "status": "reserved"},
	1:    map[string]string{"type": "untagged", "status": "reserved"},
	4095: map[string]string{"type": "untagged", "status": "reserved"},
}

func reservedValidation(id int64) error {
	switch id {
	case 0, 1, 4095:
		return fmt.Errorf("id %d is reserved, cannot be added to the database", id)
	}
	return nil
}

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		initEntries       map[int64]labels.Set
		newSuccessEntries map[int64]labels.Set
		newFailedEntries  map[int64]labels.Set
		expectedEntries   int
	}{

		"Normal": {
			initEntries: initEntries,
			newSuccessEntries: map[int64]labels.Set{
				10: map[string]string{},
				11: map[string]string{},
			},
			newFailedEntries: map[int64]labels.Set{
				5000: map[string]string{},
				4095: map[string]string{},
			},
			expectedEntries: 5,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(4096, tc.initEntries, reservedValidation)
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := r.Claim(id, d)
				assert.NoError(t, err)

			}
			for id, d := range tc.newFailedEntries {
				err := r.Claim(id, d)
				assert.Error(t, err)
			}
			// check table
			for id := range tc.initEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting initEntry: %d\n", name, id)
				}
			}
			for id := range tc.newSuccessEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting success claim entry: %d\n", name, id)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestClaimRange(t *testing.T) {
	r, err := New(4096, initEntries, reservedValidation)
	assert.NoError(t, err)

	err = r.ClaimRange(100, 10, map[string]string{"purpose": "uplink"})
	assert.NoError(t, err)
	assert.Equal(t, 13, r.Count())

	// overlapping claim fails
	err = r.ClaimRange(105, 10, map[string]string{"purpose": "other"})
	assert.Error(t, err)
}

func TestGetByLabel(t *testing.T) {
	r, err := New(4096, initEntries, reservedValidation)
	assert.NoError(t, err)

	err = r.Claim(10, map[string]string{"tenant": "red"})
	assert.NoError(t, err)
	err = r.Claim(11, map[string]string{"tenant": "blue"})
	assert.NoError(t, err)
	err = r.Claim(12, map[string]string{"tenant": "red"})
	assert.NoError(t, err)

	selector, err := labels.Parse("tenant=red")
	assert.NoError(t, err)

	entries := r.GetByLabel(selector)
	assert.Len(t, entries, 2)
	for _, id := range []int64{10, 12} {
		if _, ok := entries[id]; !ok {
			t.Errorf("expecting entry: %d\n", id)
		}
	}
}

func TestClaimDynamicSkipsClaimed(t *testing.T) {
	r, err := New(4096, initEntries, nil)
	assert.NoError(t, err)

	id, err := r.ClaimDynamic(map[string]string{})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestUpdateAndGet(t *testing.T) {
	r, err := New(4096, initEntries, reservedValidation)
	assert.NoError(t, err)

	err = r.Claim(20, map[string]string{"state": "staging"})
	assert.NoError(t, err)

	err = r.Update(20, map[string]string{"state": "active"})
	assert.NoError(t, err)

	d, err := r.Get(20)
	assert.NoError(t, err)
	assert.Equal(t, "active", d["state"])

	err = r.Update(21, map[string]string{})
	assert.Error(t, err)
}
