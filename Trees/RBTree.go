package Trees

import (
	"cmp"

	"github.com/sephirothx/dstruct"
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree that allows repeated values. The root is black, no red
// node has a red child, and every path from the root down to an absent node passes
// the same number of black nodes, so the height D of the tree is at most 2*log2(n+1).
// Every node also keeps the size of its left subtree, which gives O(D) Index and
// rank computations.
// The nodes live in an arena and refer to each other by indexes of type S, including
// a parent index used for walking upwards. S should be a wide upperbound for the size
// of the tree; Insert panics once the indexes run out.
type RBTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	c  func(a, b T) int
	st []S // st holds the indexes whose left size Remove decremented.
}

// NewRB returns an empty RBTree ordered by the natural order of T, with room for hint values.
func NewRB[T cmp.Ordered, S constraints.Unsigned](hint S) *RBTree[T, S] {
	return &RBTree[T, S]{base: makeBase[T](hint), c: cmp.Compare[T]}
}

// NewRBFunc returns an empty RBTree ordered by c, with room for hint values.
func NewRBFunc[T any, S constraints.Unsigned](c dstruct.Comparator[T], hint S) (*RBTree[T, S], error) {
	if c == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "c", Reason: "nil comparator"}
	}
	return &RBTree[T, S]{base: makeBase[T](hint), c: c}, nil
}

// RBFrom inserts every value given by next, in order, into a new RBTree ordered by c.
// next may give nothing, but it must not be nil.
func RBFrom[T any, S constraints.Unsigned](next func() (T, bool), c dstruct.Comparator[T]) (*RBTree[T, S], error) {
	if next == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "next", Reason: "nil sequence"}
	}
	u, err := NewRBFunc[T, S](c, 0)
	if err != nil {
		return nil, err
	}
	for v, ok := next(); ok; v, ok = next() {
		u.Insert(v)
	}
	return u, nil
}

func (u *RBTree[T, S]) order(a, b T) int { return u.c(a, b) }

func (u *RBTree[T, S]) view() view[T, S] {
	return u
}

func (u *RBTree[T, S]) red(i S) bool {
	return u.ifs[i].red
}

// fixRedRed restores the red rule at x, a red node whose parent may also be red.
// Recoloring moves the violation up to the grandparent; a rotation ends it.
func (u *RBTree[T, S]) fixRedRed(x S) {
	for {
		p := u.ifs[x].p
		if p == 0 {
			u.ifs[x].red = false
			return
		}
		if !u.ifs[p].red {
			return
		}
		g := u.ifs[p].p // p is red so it isn't the root.
		if p == u.ifs[g].l {
			if y := u.ifs[g].r; u.red(y) {
				u.ifs[p].red, u.ifs[y].red, u.ifs[g].red = false, false, true
				x = g
				continue
			}
			if x == u.ifs[p].r {
				u.rotateLeft(p)
				p = x
			}
			u.ifs[p].red, u.ifs[g].red = false, true
			u.rotateRight(g)
		} else {
			if y := u.ifs[g].l; u.red(y) {
				u.ifs[p].red, u.ifs[y].red, u.ifs[g].red = false, false, true
				x = g
				continue
			}
			if x == u.ifs[p].l {
				u.rotateRight(p)
				p = x
			}
			u.ifs[p].red, u.ifs[g].red = false, true
			u.rotateLeft(g)
		}
		return
	}
}

// Insert [Tree.Insert]. On the way down, a node with two red children is flipped to a
// red node with black children, and any red-red pair this creates is fixed right away.
// After the new red leaf is attached the same fix runs once more at the leaf.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Insert(v T) (rank int) {
	var p S
	for x := u.root; x != 0; {
		if l, r := u.ifs[x].l, u.ifs[x].r; u.red(l) && u.red(r) {
			u.ifs[l].red, u.ifs[r].red, u.ifs[x].red = false, false, true
			u.fixRedRed(x)
		}
		p = x
		if u.c(v, u.vs[x]) < 0 {
			x = u.ifs[x].l
		} else {
			x = u.ifs[x].r
		}
	}
	z := u.alloc(v, p)
	if p == 0 {
		u.root = z
	} else if u.c(v, u.vs[p]) < 0 {
		u.ifs[p].l = z
	} else {
		u.ifs[p].r = z
	}
	for c, a := z, p; a != 0; c, a = a, u.ifs[a].p {
		if u.ifs[a].l == c {
			u.ifs[a].lsz++
		}
	}
	u.n++
	u.fixRedRed(z)
	u.ifs[u.root].red = false

	rank = int(u.ifs[z].lsz)
	for c, a := z, u.ifs[z].p; a != 0; c, a = a, u.ifs[a].p {
		if u.ifs[a].r == c {
			rank += int(u.ifs[a].lsz) + 1
		}
	}
	return
}

// fixDoubleBlack runs before x, a black node that is not the root, loses one black
// from its paths. x stays in place; only its ancestors and their other subtrees change.
func (u *RBTree[T, S]) fixDoubleBlack(x S) {
	for x != u.root {
		p := u.ifs[x].p
		if x == u.ifs[p].l {
			s := u.ifs[p].r
			if u.red(s) {
				u.ifs[s].red, u.ifs[p].red = false, true
				u.rotateLeft(p)
				s = u.ifs[p].r
			}
			if o := u.ifs[s].r; u.red(o) {
				u.ifs[s].red, u.ifs[p].red, u.ifs[o].red = u.ifs[p].red, false, false
				u.rotateLeft(p)
				return
			}
			if i := u.ifs[s].l; u.red(i) {
				u.ifs[i].red, u.ifs[s].red = false, true
				u.rotateRight(s)
				continue
			}
		} else {
			s := u.ifs[p].l
			if u.red(s) {
				u.ifs[s].red, u.ifs[p].red = false, true
				u.rotateRight(p)
				s = u.ifs[p].l
			}
			if o := u.ifs[s].l; u.red(o) {
				u.ifs[s].red, u.ifs[p].red, u.ifs[o].red = u.ifs[p].red, false, false
				u.rotateRight(p)
				return
			}
			if i := u.ifs[s].r; u.red(i) {
				u.ifs[i].red, u.ifs[s].red = false, true
				u.rotateLeft(s)
				continue
			}
		}
		u.ifs[u.sibling(x)].red = true
		if u.ifs[p].red {
			u.ifs[p].red = false
			return
		}
		x = p
	}
}

func (u *RBTree[T, S]) sibling(x S) S {
	if p := u.ifs[x].p; u.ifs[p].l == x {
		return u.ifs[p].r
	} else {
		return u.ifs[p].l
	}
}

// unlink z, which has at most one child, and free its index.
func (u *RBTree[T, S]) unlink(z S) {
	ch := u.ifs[z].l
	if ch == 0 {
		ch = u.ifs[z].r
	}
	if ch == 0 && !u.ifs[z].red && z != u.root {
		u.fixDoubleBlack(z)
	}
	u.replace(z, ch)
	if ch != 0 {
		u.ifs[ch].red = false
	}
	u.addFree(z)
}

// Remove [Tree.Remove]. The left sizes along the search path are decremented on the way
// down and restored if v isn't found. A node with two children takes the value of its
// successor, and the successor is unlinked instead.
// Time: O(D); Space: O(D)
func (u *RBTree[T, S]) Remove(v T) bool {
	st := u.st[:0]
	defer func() { u.st = st[:0] }()
	z := u.root
	for z != 0 {
		if c := u.c(v, u.vs[z]); c < 0 {
			u.ifs[z].lsz--
			st = append(st, z)
			z = u.ifs[z].l
		} else if c > 0 {
			z = u.ifs[z].r
		} else {
			break
		}
	}
	if z == 0 {
		for _, i := range st {
			u.ifs[i].lsz++
		}
		return false
	}
	if u.ifs[z].l != 0 && u.ifs[z].r != 0 {
		y := u.ifs[z].r
		for u.ifs[y].l != 0 {
			u.ifs[y].lsz--
			y = u.ifs[y].l
		}
		u.vs[z] = u.vs[y]
		z = y
	}
	u.unlink(z)
	u.n--
	if u.root != 0 {
		u.ifs[u.root].red = false
	}
	return true
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Min() (T, error) {
	return minimum(u.view())
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Max() (T, error) {
	return maximum(u.view())
}

// Index [Tree.Index]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Index(i int) (T, error) {
	return index(u.view(), i)
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Find(v T) bool {
	return find(u.view(), v)
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) RankOf(v T) (int, bool) {
	return rankOf(u.view(), v)
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Predecessor(v T) (T, bool) {
	return predecessor(u.view(), v)
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Successor(v T) (T, bool) {
	return successor(u.view(), v)
}

func (u *RBTree[T, S]) InOrder() func() (T, bool)      { return inOrder(u.view()) }
func (u *RBTree[T, S]) PreOrder() func() (T, bool)     { return preOrder(u.view()) }
func (u *RBTree[T, S]) PostOrder() func() (T, bool)    { return postOrder(u.view()) }
func (u *RBTree[T, S]) BreadthFirst() func() (T, bool) { return breadthFirst(u.view()) }

// Height of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *RBTree[T, S]) Height() int {
	return height(u.view(), u.root)
}

// Audit [Tree.Audit]. Besides the common checks, the colors must satisfy the red-black
// rules and every parent index must point back at the node's actual parent. Recursive.
func (u *RBTree[T, S]) Audit() error {
	if err := auditShape(u.view()); err != nil {
		return err
	}
	if z := u.getIf(0); *z != (info[S]{}) {
		return corrupt("sentinel was written to: %+v", *z)
	}
	if u.root != 0 {
		if u.red(u.root) {
			return corrupt("root %v is red", u.vs[u.root])
		}
		if p := u.ifs[u.root].p; p != 0 {
			return corrupt("root %v has parent %d", u.vs[u.root], p)
		}
	}
	var blackHeight func(S) (int, error)
	blackHeight = func(i S) (int, error) {
		if i == 0 {
			return 1, nil
		}
		n := u.getIf(i)
		for _, c := range [2]S{n.l, n.r} {
			if c == 0 {
				continue
			}
			if u.ifs[c].p != i {
				return 0, corrupt("node %v has parent %d, want %d", u.vs[c], u.ifs[c].p, i)
			}
			if n.red && u.red(c) {
				return 0, corrupt("red node %v has red child %v", u.vs[i], u.vs[c])
			}
		}
		l, err := blackHeight(n.l)
		if err != nil {
			return 0, err
		}
		r, err := blackHeight(n.r)
		if err != nil {
			return 0, err
		}
		if l != r {
			return 0, corrupt("node %v has black heights %d and %d", u.vs[i], l, r)
		}
		if !n.red {
			l++
		}
		return l, nil
	}
	_, err := blackHeight(u.root)
	return err
}
