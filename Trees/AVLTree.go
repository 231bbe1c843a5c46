package Trees

import (
	"cmp"

	"github.com/sephirothx/dstruct"
)

// AVLTree is a height balanced binary search tree that allows repeated values.
// For every node the heights of its two subtrees differ by at most 1, so the
// height D of the tree is less than 1.44*log2(n+2).
// Every node also keeps the size of its left subtree, which gives O(D) Index and
// rank computations.
type AVLTree[T any] struct {
	ptrBase[T]
}

// NewAVL returns an empty AVLTree ordered by the natural order of T.
func NewAVL[T cmp.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{ptrBase[T]{c: cmp.Compare[T]}}
}

// NewAVLFunc returns an empty AVLTree ordered by c.
func NewAVLFunc[T any](c dstruct.Comparator[T]) (*AVLTree[T], error) {
	if c == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "c", Reason: "nil comparator"}
	}
	return &AVLTree[T]{ptrBase[T]{c: c}}, nil
}

// AVLFrom inserts every value given by next, in order, into a new AVLTree ordered by c.
// next may give nothing, but it must not be nil.
func AVLFrom[T any](next func() (T, bool), c dstruct.Comparator[T]) (*AVLTree[T], error) {
	if next == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "next", Reason: "nil sequence"}
	}
	u, err := NewAVLFunc(c)
	if err != nil {
		return nil, err
	}
	for v, ok := next(); ok; v, ok = next() {
		u.Insert(v)
	}
	return u, nil
}

// insert v to the subtree rooting at cur recursively. cur is
// passed by reference. Returns the rank of v within the subtree.
func (u *AVLTree[T]) insert(curPtr **node[T], v T) (rank int) {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v, h: 1}
		return 0
	}
	if u.c(v, cur.v) < 0 {
		cur.lsz++
		rank = u.insert(&cur.l, v)
	} else {
		rank = cur.lsz + 1
		rank += u.insert(&cur.r, v)
	}
	rebalance(curPtr)
	return
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) int {
	u.n++
	return u.insert(&u.root, v)
}

// remove v from the subtree rooting at cur recursively. The left size of cur is
// decremented before going left and restored if v isn't found there.
func (u *AVLTree[T]) remove(curPtr **node[T], v T) (found bool) {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.c(v, cur.v); c < 0 {
		cur.lsz--
		if found = u.remove(&cur.l, v); !found {
			cur.lsz++
		}
	} else if c > 0 {
		found = u.remove(&cur.r, v)
	} else if cur.l == nil {
		*curPtr = cur.r
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		return true
	} else {
		cur.v = u.removeMin(&cur.r)
		found = true
	}
	if found {
		rebalance(curPtr)
	}
	return
}

// removeMin unlinks the leftmost node of the non empty subtree rooting at cur and
// returns its value. Recursive.
func (u *AVLTree[T]) removeMin(curPtr **node[T]) T {
	cur := *curPtr
	if cur.l == nil {
		*curPtr = cur.r
		return cur.v
	}
	cur.lsz--
	v := u.removeMin(&cur.l)
	rebalance(curPtr)
	return v
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.n--
		return true
	}
	return false
}

// Audit [Tree.Audit]. Besides the common checks, every stored height must be
// consistent with the children and every balance factor within [-1, 1]. Recursive.
func (u *AVLTree[T]) Audit() error {
	if err := auditShape(u.view()); err != nil {
		return err
	}
	var check func(*node[T]) error
	check = func(n *node[T]) error {
		if n == nil {
			return nil
		}
		if err := check(n.l); err != nil {
			return err
		}
		if err := check(n.r); err != nil {
			return err
		}
		if h := 1 + max(n.l.height(), n.r.height()); n.h != h {
			return corrupt("node %v has height %d, want %d", n.v, n.h, h)
		}
		if b := n.balance(); b < -1 || b > 1 {
			return corrupt("node %v has balance factor %d", n.v, b)
		}
		return nil
	}
	return check(u.root)
}
