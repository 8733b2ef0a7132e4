// Package labeltable provides a range table whose entries carry label sets
// and can be queried by label selector.
package labeltable

import (
	"fmt"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/henderiw/rangeset/pkg/rangetable"
	"k8s.io/apimachinery/pkg/labels"
)

type Table interface {
	Get(id int64) (labels.Set, error)
	Claim(id int64, d labels.Set) error
	ClaimDynamic(d labels.Set) (int64, error)
	ClaimRange(start, size int64, d labels.Set) error
	Release(id int64) error
	Update(id int64, d labels.Set) error

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)
	Free() rangeset.RangeSet[int64]

	GetAll() map[int64]labels.Set
	GetByLabel(selector labels.Selector) map[int64]labels.Set
}

func New(size int64, initEntries map[int64]labels.Set, v rangetable.ValidationFn) (Table, error) {
	t, err := rangetable.NewTable[labels.Set](size, initEntries, v)
	if err != nil {
		return nil, err
	}
	return &labelTable{
		table: t,
	}, nil
}

type labelTable struct {
	table rangetable.Table[labels.Set]
}

func (r *labelTable) Get(id int64) (labels.Set, error) {
	return r.table.Get(id)
}

func (r *labelTable) Claim(id int64, d labels.Set) error {
	if !r.table.IsFree(id) {
		return fmt.Errorf("id %d is already claimed", id)
	}
	return r.table.Claim(id, d)
}

func (r *labelTable) ClaimDynamic(d labels.Set) (int64, error) {
	return r.table.ClaimDynamic(d)
}

func (r *labelTable) ClaimRange(start, size int64, d labels.Set) error {
	return r.table.ClaimRange(start, size, d)
}

func (r *labelTable) Release(id int64) error {
	return r.table.Release(id)
}

func (r *labelTable) Update(id int64, d labels.Set) error {
	return r.table.Update(id, d)
}

func (r *labelTable) Count() int {
	return r.table.Count()
}

func (r *labelTable) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *labelTable) IsFree(id int64) bool {
	return r.table.IsFree(id)
}

func (r *labelTable) FindFree() (int64, error) {
	return r.table.FindFree()
}

func (r *labelTable) Free() rangeset.RangeSet[int64] {
	return r.table.Free()
}

func (r *labelTable) GetAll() map[int64]labels.Set {
	return r.table.GetAll()
}

func (r *labelTable) GetByLabel(selector labels.Selector) map[int64]labels.Set {
	entries := map[int64]labels.Set{}

	iter := r.table.Iterate()

	for iter.Next() {
		if selector.Matches(iter.Value()) {
			entries[iter.ID()] = iter.Value()
		}
	}
	return entries
}
