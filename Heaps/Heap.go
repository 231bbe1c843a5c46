package Heaps

import (
	"cmp"

	"github.com/sephirothx/dstruct"
)

// Heap is a binary heap stored in a slice. The value at the top is the one that is
// before all others according to less. The zero value isn't usable; use the constructors.
type Heap[T any] struct {
	vs   []T
	less func(a, b T) bool
}

// NewMin returns an empty heap whose top is the smallest value.
func NewMin[T cmp.Ordered](capacity int) *Heap[T] {
	return &Heap[T]{make([]T, 0, capacity), cmp.Less[T]}
}

// NewMax returns an empty heap whose top is the largest value.
func NewMax[T cmp.Ordered](capacity int) *Heap[T] {
	return &Heap[T]{make([]T, 0, capacity), func(a, b T) bool { return a > b }}
}

// NewFunc returns an empty heap whose top is the value for which less is true against
// every other value.
func NewFunc[T any](less func(a, b T) bool, capacity int) (*Heap[T], error) {
	if less == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "less", Reason: "nil function"}
	}
	return &Heap[T]{make([]T, 0, capacity), less}, nil
}

// From builds a heap out of vs in O(n). The slice is handed to the heap and mustn't be
// used by the caller later.
func From[T any](vs []T, less func(a, b T) bool) (*Heap[T], error) {
	if vs == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "vs", Reason: "nil slice"}
	}
	if less == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "less", Reason: "nil function"}
	}
	u := &Heap[T]{vs, less}
	for i := len(vs)/2 - 1; i >= 0; i-- {
		u.down(i)
	}
	return u, nil
}

// MinFrom is From with the natural order of T.
func MinFrom[T cmp.Ordered](vs []T) (*Heap[T], error) {
	return From(vs, cmp.Less[T])
}

// MaxFrom is From with the reversed natural order of T.
func MaxFrom[T cmp.Ordered](vs []T) (*Heap[T], error) {
	return From(vs, func(a, b T) bool { return a > b })
}

func (u *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) >> 1
		if !u.less(u.vs[i], u.vs[p]) {
			break
		}
		u.vs[i], u.vs[p] = u.vs[p], u.vs[i]
		i = p
	}
}

func (u *Heap[T]) down(i int) {
	for n := len(u.vs); ; {
		m := i
		if l := i<<1 + 1; l < n && u.less(u.vs[l], u.vs[m]) {
			m = l
		}
		if r := i<<1 + 2; r < n && u.less(u.vs[r], u.vs[m]) {
			m = r
		}
		if m == i {
			return
		}
		u.vs[i], u.vs[m] = u.vs[m], u.vs[i]
		i = m
	}
}

// Push v to the heap.
// Time: O(log n)
func (u *Heap[T]) Push(v T) {
	u.vs = append(u.vs, v)
	u.up(len(u.vs) - 1)
}

// Pop the top of the heap. Returns *dstruct.EmptyError if there's nothing to pop.
// Time: O(log n)
func (u *Heap[T]) Pop() (T, error) {
	if len(u.vs) == 0 {
		return *new(T), &dstruct.EmptyError{What: "heap"}
	}
	last := len(u.vs) - 1
	top := u.vs[0]
	u.vs[0] = u.vs[last]
	u.vs[last] = *new(T)
	u.vs = u.vs[:last]
	u.down(0)
	return top, nil
}

// Peek at the top of the heap.
// Time: O(1)
func (u *Heap[T]) Peek() (T, error) {
	if len(u.vs) == 0 {
		return *new(T), &dstruct.EmptyError{What: "heap"}
	}
	return u.vs[0], nil
}

func (u *Heap[T]) Len() int {
	return len(u.vs)
}

func (u *Heap[T]) Empty() bool {
	return len(u.vs) == 0
}

// Clear the heap, keeping its capacity.
func (u *Heap[T]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
}
