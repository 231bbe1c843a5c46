package Trees

import (
	"cmp"

	"github.com/sephirothx/dstruct"
)

// BSTree is a binary search tree that never rebalances. Its height depends on the
// insertion order, O(n) in the worst case. It has the same interface as the balanced
// trees and is mostly useful as a baseline for them.
type BSTree[T any] struct {
	ptrBase[T]
	st []*node[T] // st holds the nodes whose left size Remove decremented.
}

// NewBST returns an empty BSTree ordered by the natural order of T.
func NewBST[T cmp.Ordered]() *BSTree[T] {
	return &BSTree[T]{ptrBase: ptrBase[T]{c: cmp.Compare[T]}}
}

// NewBSTFunc returns an empty BSTree ordered by c.
func NewBSTFunc[T any](c dstruct.Comparator[T]) (*BSTree[T], error) {
	if c == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "c", Reason: "nil comparator"}
	}
	return &BSTree[T]{ptrBase: ptrBase[T]{c: c}}, nil
}

// BSTFrom inserts every value given by next, in order, into a new BSTree ordered by c.
// next may give nothing, but it must not be nil.
func BSTFrom[T any](next func() (T, bool), c dstruct.Comparator[T]) (*BSTree[T], error) {
	if next == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "next", Reason: "nil sequence"}
	}
	u, err := NewBSTFunc(c)
	if err != nil {
		return nil, err
	}
	for v, ok := next(); ok; v, ok = next() {
		u.Insert(v)
	}
	return u, nil
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) (rank int) {
	cur := &u.root
	for *cur != nil {
		if n := *cur; u.c(v, n.v) < 0 {
			n.lsz++
			cur = &n.l
		} else {
			rank += n.lsz + 1
			cur = &n.r
		}
	}
	*cur = &node[T]{v: v, h: 1}
	u.n++
	return
}

// Remove [Tree.Remove]
// Time: O(D); Space: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	st := u.st[:0]
	defer func() {
		clear(st)
		u.st = st[:0]
	}()
	for cur := &u.root; *cur != nil; {
		n := *cur
		if c := u.c(v, n.v); c < 0 {
			n.lsz--
			st = append(st, n)
			cur = &n.l
		} else if c > 0 {
			cur = &n.r
		} else {
			if n.l == nil {
				*cur = n.r
			} else if n.r == nil {
				*cur = n.l
			} else {
				s := &n.r
				for (*s).l != nil {
					(*s).lsz--
					s = &(*s).l
				}
				n.v = (*s).v
				*s = (*s).r
			}
			u.n--
			return true
		}
	}
	for _, n := range st {
		n.lsz++
	}
	return false
}

// Audit [Tree.Audit]
func (u *BSTree[T]) Audit() error {
	return auditShape(u.view())
}
