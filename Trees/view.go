package Trees

import (
	"github.com/sephirothx/dstruct"
)

// view is what the read only algorithms need to know about a tree. N is the handle of
// a node; its zero value is the absent node (nil pointer or the arena's sentinel index).
type view[T any, N comparable] interface {
	top() N
	left(N) N
	right(N) N
	val(N) T
	lsz(N) int
	size() int
	order(a, b T) int
}

var errEmpty = &dstruct.EmptyError{What: "tree"}

func minimum[T any, N comparable](u view[T, N]) (T, error) {
	var z N
	cur := u.top()
	if cur == z {
		return *new(T), errEmpty
	}
	for l := u.left(cur); l != z; l = u.left(cur) {
		cur = l
	}
	return u.val(cur), nil
}

func maximum[T any, N comparable](u view[T, N]) (T, error) {
	var z N
	cur := u.top()
	if cur == z {
		return *new(T), errEmpty
	}
	for r := u.right(cur); r != z; r = u.right(cur) {
		cur = r
	}
	return u.val(cur), nil
}

// index walks down by the left subtree sizes to the i-th smallest value, starting from 0.
func index[T any, N comparable](u view[T, N], i int) (T, error) {
	if i < 0 || i >= u.size() {
		return *new(T), &dstruct.IndexOutOfRangeError{Index: i, Len: u.size()}
	}
	var z N
	for cur := u.top(); cur != z; {
		if s := u.lsz(cur); i < s {
			cur = u.left(cur)
		} else if i > s {
			i -= s + 1
			cur = u.right(cur)
		} else {
			return u.val(cur), nil
		}
	}
	return *new(T), &dstruct.IndexOutOfRangeError{Index: i, Len: u.size()}
}

func find[T any, N comparable](u view[T, N], v T) bool {
	var z N
	for cur := u.top(); cur != z; {
		if c := u.order(v, u.val(cur)); c < 0 {
			cur = u.left(cur)
		} else if c > 0 {
			cur = u.right(cur)
		} else {
			return true
		}
	}
	return false
}

// rankOf returns the number of values less than v, and whether v is in the tree.
func rankOf[T any, N comparable](u view[T, N], v T) (ra int, found bool) {
	var z N
	for cur := u.top(); cur != z; {
		if c := u.order(v, u.val(cur)); c > 0 {
			ra += u.lsz(cur) + 1
			cur = u.right(cur)
		} else {
			found = found || c == 0
			cur = u.left(cur)
		}
	}
	return
}

func predecessor[T any, N comparable](u view[T, N], v T) (p T, has bool) {
	var z N
	for cur := u.top(); cur != z; {
		if u.order(v, u.val(cur)) <= 0 {
			cur = u.left(cur)
		} else {
			p, has = u.val(cur), true
			cur = u.right(cur)
		}
	}
	return
}

func successor[T any, N comparable](u view[T, N], v T) (p T, has bool) {
	var z N
	for cur := u.top(); cur != z; {
		if u.order(v, u.val(cur)) < 0 {
			p, has = u.val(cur), true
			cur = u.left(cur)
		} else {
			cur = u.right(cur)
		}
	}
	return
}

func height[T any, N comparable](u view[T, N], n N) int {
	var z N
	if n == z {
		return 0
	}
	return 1 + max(height(u, u.left(n)), height(u, u.right(n)))
}
