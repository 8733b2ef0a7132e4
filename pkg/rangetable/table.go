// Package rangetable provides a claim/release table over a bounded integer
// index universe. Allocation state is held as a range set, so free-space
// queries walk a handful of ranges instead of scanning every index.
package rangetable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/henderiw/rangeset/pkg/rangeset"
)

type Table[T1 any] interface {
	Get(id int64) (T1, error)
	Claim(id int64, d T1) error
	ClaimDynamic(d T1) (int64, error)
	ClaimRange(start, size int64, d T1) error
	ClaimSize(size int64, d T1) error
	Release(id int64) error
	Update(id int64, d T1) error

	Iterate() *Iterator[T1]
	IterateFree() *FreeIterator

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)
	FindFreeRange(start, size int64) (rangeset.Range[int64], error)
	FindFreeSize(size int64) (rangeset.RangeSet[int64], error)

	Allocated() rangeset.RangeSet[int64]
	Free() rangeset.RangeSet[int64]

	GetAll() map[int64]T1
}

type ValidationFn func(id int64) error

func NewTable[T1 any](s int64, initEntries map[int64]T1, v ValidationFn) (Table[T1], error) {
	r := &table[T1]{
		m:          new(sync.RWMutex),
		data:       map[int64]T1{},
		size:       s,
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		id := id
		if err := r.add(id, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T1 any] struct {
	m          *sync.RWMutex
	allocated  rangeset.RangeSet[int64]
	data       map[int64]T1
	size       int64
	validateFn ValidationFn
}

func (r *table[T1]) validate(id int64, init bool) error {
	if id > r.size-1 {
		return fmt.Errorf("id %d is bigger then max allowed entries: %d", id, r.size-1)
	}
	if id < 0 {
		return fmt.Errorf("id %d is negative", id)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) validateRange(rng rangeset.Range[int64]) error {
	if r.validateFn == nil {
		return nil
	}
	for id := rng.From; id < rng.To; id++ {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) universe() rangeset.Range[int64] {
	return rangeset.RangeFrom(int64(0), r.size)
}

func (r *table[T1]) free() rangeset.RangeSet[int64] {
	return r.allocated.Inverted(r.universe())
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	if err := r.validate(id, false); err != nil {
		return d, err
	}

	d, ok := r.data[id]
	if !ok {
		return d, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *table[T1]) Claim(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, false)
}

func (r *table[T1]) ClaimDynamic(d T1) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	free := r.free()
	if free.IsEmpty() {
		return 0, fmt.Errorf("no free entry found")
	}
	id := free.RangeAt(0).From
	if err := r.add(id, d, false); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *table[T1]) ClaimRange(start, size int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	rng, err := r.findFreeRange(start, size)
	if err != nil {
		return err
	}
	if err := r.validateRange(rng); err != nil {
		return err
	}
	r.allocated.Insert(rng)
	for id := rng.From; id < rng.To; id++ {
		r.data[id] = d
	}
	return nil
}

func (r *table[T1]) ClaimSize(size int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	entries, err := r.findFreeSize(size)
	if err != nil {
		return err
	}
	for k := 0; k < entries.NumRanges(); k++ {
		if err := r.validateRange(entries.RangeAt(k)); err != nil {
			return err
		}
	}
	for k := 0; k < entries.NumRanges(); k++ {
		rng := entries.RangeAt(k)
		r.allocated.Insert(rng)
		for id := rng.From; id < rng.To; id++ {
			r.data[id] = d
		}
	}
	return nil
}

func (r *table[T1]) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	rangeset.RemoveID(&r.allocated, id)
	delete(r.data, id)
	return nil
}

func (r *table[T1]) Update(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	if !r.allocated.Contains(id) {
		return fmt.Errorf("entry %d not found", id)
	}
	r.data[id] = d
	return nil
}

func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return &Iterator[T1]{
		current: -1,
		ids:     rangeset.IDs(r.allocated),
		data:    r.data,
	}
}

func (r *table[T1]) IterateFree() *FreeIterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return &FreeIterator{current: -1, ranges: r.free().Ranges()}
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return rangeset.Count(r.allocated)
}

func (r *table[T1]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.allocated.Contains(id)
}

func (r *table[T1]) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return !r.allocated.Contains(id)
}

func (r *table[T1]) FindFree() (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	free := r.free()
	if free.IsEmpty() {
		return 0, fmt.Errorf("no free entry found")
	}
	return free.RangeAt(0).From, nil
}

func (r *table[T1]) FindFreeRange(start, size int64) (rangeset.Range[int64], error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.findFreeRange(start, size)
}

func (r *table[T1]) findFreeRange(start, size int64) (rangeset.Range[int64], error) {
	rng := rangeset.RangeFrom(start, start+size)
	if start > r.size-1 {
		return rng, fmt.Errorf("start %d is bigger then max allowed entries: %d", start, r.size)
	}
	if start+size > r.size {
		return rng, fmt.Errorf("end %d is bigger then max allowed entries: %d", start+size-1, r.size)
	}
	if !r.free().ContainsRange(rng) {
		return rng, fmt.Errorf("could not find free range that fit in start %d, size %d", start, size)
	}
	return rng, nil
}

func (r *table[T1]) FindFreeSize(size int64) (rangeset.RangeSet[int64], error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.findFreeSize(size)
}

func (r *table[T1]) findFreeSize(size int64) (rangeset.RangeSet[int64], error) {
	var entries rangeset.RangeSet[int64]
	if size > r.size {
		return entries, fmt.Errorf("size %d is bigger then max allowed entries: %d", size, r.size)
	}
	free := r.free()
	remaining := size
	for k := 0; k < free.NumRanges() && remaining > 0; k++ {
		rng := free.RangeAt(k)
		if n := rng.To - rng.From; n > remaining {
			rng.To = rng.From + remaining
		}
		entries.Append(rng)
		remaining -= rng.To - rng.From
	}
	if remaining > 0 {
		return entries, fmt.Errorf("could not find free entries that fit in size %d", size)
	}
	return entries, nil
}

func (r *table[T1]) Allocated() rangeset.RangeSet[int64] {
	r.m.RLock()
	defer r.m.RUnlock()

	return rangeset.New(r.allocated.Ranges()...)
}

func (r *table[T1]) Free() rangeset.RangeSet[int64] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free()
}

func (r *table[T1]) add(id int64, d T1, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if r.allocated.Contains(id) {
		return fmt.Errorf("entry %d already exists", id)
	}
	rangeset.InsertID(&r.allocated, id)
	r.data[id] = d
	return nil
}

func (r *table[T1]) GetAll() map[int64]T1 {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[int64]T1, len(r.data))
	for id, d := range r.data {
		entries[id] = d
	}
	return entries
}
