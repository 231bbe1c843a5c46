package Trees

import (
	"github.com/sephirothx/dstruct/Queues"
)

// The traversals below return closures acting like iterators, see [Tree.InOrder].
// Each uses O(D) extra space except breadthFirst, which uses O(width).

func inOrder[T any, N comparable](u view[T, N]) func() (T, bool) {
	var z N
	var st []N
	for cur := u.top(); cur != z; cur = u.left(cur) {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := u.right(cur); n != z; n = u.left(n) {
			st = append(st, n)
		}
		return u.val(cur), true
	}
}

func preOrder[T any, N comparable](u view[T, N]) func() (T, bool) {
	var z N
	var st []N
	if top := u.top(); top != z {
		st = append(st, top)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if n := u.right(cur); n != z {
			st = append(st, n)
		}
		if n := u.left(cur); n != z {
			st = append(st, n)
		}
		return u.val(cur), true
	}
}

// postOrder yields left, right, then self. last is the most recently yielded node, which
// tells whether the right subtree of the node on top of st was already done.
func postOrder[T any, N comparable](u view[T, N]) func() (T, bool) {
	var z, last N
	var st []N
	cur := u.top()
	return func() (r T, has bool) {
		for {
			for ; cur != z; cur = u.left(cur) {
				st = append(st, cur)
			}
			if len(st) == 0 {
				return
			}
			top := st[len(st)-1]
			if n := u.right(top); n != z && n != last {
				cur = n
				continue
			}
			st = st[:len(st)-1]
			last = top
			return u.val(top), true
		}
	}
}

func breadthFirst[T any, N comparable](u view[T, N]) func() (T, bool) {
	var z N
	q := Queues.NewArrayQueue[N](4)
	if top := u.top(); top != z {
		q.Push(top)
	}
	return func() (r T, has bool) {
		cur, err := q.Pop()
		if err != nil {
			return
		}
		if n := u.left(cur); n != z {
			q.Push(n)
		}
		if n := u.right(cur); n != z {
			q.Push(n)
		}
		return u.val(cur), true
	}
}
