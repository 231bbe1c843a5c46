package dstruct

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// Comparator returns a negative number if a<b, 0 if a==b, and a positive number if a>b.
// It must define a total order that doesn't change during the lifetime of a container.
type Comparator[T any] func(a, b T) int

// Natural order of T.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FromGods adapts a gods comparator, such as utils.IntComparator, to a Comparator[T].
func FromGods[T any](c utils.Comparator) Comparator[T] {
	if c == nil {
		return nil
	}
	return func(a, b T) int {
		return c(a, b)
	}
}
