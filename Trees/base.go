package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node record in the arena. The zero value is meaningful: index 0 of the arena
// is a zero record and stands for the absent node, which is black and has no children.
// Index 0 is never written to.
type info[S constraints.Unsigned] struct {
	l, r, p, lsz S
	red          bool
}

// base is an arena of nodes addressed by indexes of type S. Freed indexes are kept in
// a linked list and reused before the arrays grow.
type base[T any, S constraints.Unsigned] struct {
	root, free, n S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs           []info[S] // ifs[0] is the sentinel. len(ifs)=len(vs)
	vs            []T       // vs[i] is the value of ifs[i]. vs[0] is unused.
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 1, int(hint)+1)}
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a red node holding v with parent p. Holes are filled first before appending
// to the underlying arrays.
func (u *base[T, S]) alloc(v T, p S) S {
	i := u.popFree()
	if i == 0 {
		if i = S(len(u.ifs)); int(i) != len(u.ifs) {
			panic("Trees: node index overflows the index type")
		}
		u.ifs = append(u.ifs, info[S]{p: p, red: true})
		u.vs = append(u.vs, v)
	} else {
		u.ifs[i] = info[S]{p: p, red: true}
		u.vs[i] = v
	}
	return i
}

// replace x by y under the parent of x. y may be 0.
func (u *base[T, S]) replace(x, y S) {
	p := u.ifs[x].p
	if p == 0 {
		u.root = y
	} else if u.ifs[p].l == x {
		u.ifs[p].l = y
	} else {
		u.ifs[p].r = y
	}
	if y != 0 {
		u.ifs[y].p = p
	}
}

// rotateLeft around x. The right child of x takes its place.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) {
	y := u.ifs[x].r
	b := u.ifs[y].l
	u.ifs[x].r = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replace(x, y)
	u.ifs[y].l, u.ifs[x].p = x, y
	u.ifs[y].lsz += u.ifs[x].lsz + 1
}

// rotateRight around x. The left child of x takes its place.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(x S) {
	y := u.ifs[x].l
	b := u.ifs[y].r
	u.ifs[x].l = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replace(x, y)
	u.ifs[y].r, u.ifs[x].p = x, y
	u.ifs[x].lsz -= u.ifs[y].lsz + 1
}

func (u *base[T, S]) top() S      { return u.root }
func (u *base[T, S]) left(i S) S  { return u.ifs[i].l }
func (u *base[T, S]) right(i S) S { return u.ifs[i].r }
func (u *base[T, S]) val(i S) T   { return u.vs[i] }
func (u *base[T, S]) lsz(i S) int { return int(u.ifs[i].lsz) }
func (u *base[T, S]) size() int   { return int(u.n) }

// Clear the tree. O(size): the stored values are zeroed so they can be collected.
// Doesn't allocate new arrays.
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.root, u.free, u.n = 0, 0, 0
}

// Count of values in the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Count() int {
	return int(u.n)
}
