package Sparse

import (
	"github.com/google/btree"
	"github.com/sephirothx/dstruct"
)

type entry[T any] struct {
	i int
	v T
}

func less[T any](a, b entry[T]) bool {
	return a.i < b.i
}

// Array is an array where most of the elements have the same default value. Only the
// elements that were set are stored, ordered by their indexes.
// An Array either has a fixed length, or grows to fit the largest index that was set.
type Array[T any] struct {
	t     *btree.BTreeG[entry[T]]
	def   T
	n     int
	fixed bool
}

// NewArray returns an Array without a fixed length.
func NewArray[T any](def T) *Array[T] {
	return &Array[T]{t: btree.NewG(16, less[T]), def: def}
}

// NewFixedArray returns an Array of length n.
func NewFixedArray[T any](n int, def T) (*Array[T], error) {
	if n < 0 {
		return nil, &dstruct.InvalidArgumentError{Name: "n", Reason: "negative length"}
	}
	return &Array[T]{t: btree.NewG(16, less[T]), def: def, n: n, fixed: true}, nil
}

func (u *Array[T]) check(i int) error {
	if i < 0 || u.fixed && i >= u.n {
		return &dstruct.IndexOutOfRangeError{Index: i, Len: u.n}
	}
	return nil
}

// Get the i-th element. Any non negative index is valid when the length isn't fixed.
// Time: O(log(Count()))
func (u *Array[T]) Get(i int) (T, error) {
	if err := u.check(i); err != nil {
		return u.def, err
	}
	if e, ok := u.t.Get(entry[T]{i: i}); ok {
		return e.v, nil
	}
	return u.def, nil
}

// Set the i-th element.
// Time: O(log(Count()))
func (u *Array[T]) Set(i int, v T) error {
	if err := u.check(i); err != nil {
		return err
	}
	u.t.ReplaceOrInsert(entry[T]{i, v})
	if !u.fixed {
		u.n = max(u.n, i+1)
	}
	return nil
}

// Unset the i-th element so it has the default value again. The length doesn't change.
func (u *Array[T]) Unset(i int) bool {
	_, ok := u.t.Delete(entry[T]{i: i})
	return ok
}

// Len is the fixed length, or 1 plus the largest index that was set.
func (u *Array[T]) Len() int {
	return u.n
}

// Count of the stored elements.
func (u *Array[T]) Count() int {
	return u.t.Len()
}

// Pairs calls f with the stored elements in index order, until f returns false.
func (u *Array[T]) Pairs(f func(i int, v T) bool) {
	u.t.Ascend(func(e entry[T]) bool {
		return f(e.i, e.v)
	})
}

// All returns a closure iterating every element from 0 to Len()-1, defaults included.
func (u *Array[T]) All() func() (T, bool) {
	i := 0
	return func() (v T, has bool) {
		if i >= u.n {
			return
		}
		v, _ = u.Get(i)
		i++
		return v, true
	}
}
