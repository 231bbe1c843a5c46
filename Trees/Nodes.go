package Trees

// A node in AVLTree and BSTree.
// lsz is the size of the left subtree. h is the height of the subtree
// rooting at the node, where a nil node has height 0. BSTree doesn't
// maintain h.
type node[T any] struct {
	v    T
	l, r *node[T]
	lsz  int
	h    int8
}

func (n *node[T]) height() int8 {
	if n == nil {
		return 0
	}
	return n.h
}

// update the height of n from its children.
func (n *node[T]) update() {
	n.h = 1 + max(n.l.height(), n.r.height())
}

// balance factor of n, h(r)-h(l).
func (n *node[T]) balance() int8 {
	return n.r.height() - n.l.height()
}

// rotateLeft performs a left rotation on node n. n is passed by reference in order
// to modify its content. The right child of n takes its place and gains n and its
// left subtree as its new left subtree.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.lsz += r.lsz + 1
	r.update()
	rc.update()
	*n = rc
}

// rotateRight performs a right rotation on node n. n is passed by reference in order
// to modify its content. n loses its left child and that child's left subtree.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.lsz -= lc.lsz + 1
	r.update()
	lc.update()
	*n = lc
}

// rebalance the AVL subtree rooting at n after one of its subtrees changed height by at most 1.
// Time: O(1)
func rebalance[T any](n **node[T]) {
	cur := *n
	cur.update()
	if b := cur.balance(); b > 1 {
		if cur.r.balance() < 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(n)
	} else if b < -1 {
		if cur.l.balance() > 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(n)
	}
}

// ptrBase holds what AVLTree and BSTree share: the root, the number of nodes, and the order.
type ptrBase[T any] struct {
	root *node[T]
	n    int
	c    func(a, b T) int
}

func (u *ptrBase[T]) top() *node[T]             { return u.root }
func (u *ptrBase[T]) left(n *node[T]) *node[T]  { return n.l }
func (u *ptrBase[T]) right(n *node[T]) *node[T] { return n.r }
func (u *ptrBase[T]) val(n *node[T]) T          { return n.v }
func (u *ptrBase[T]) lsz(n *node[T]) int        { return n.lsz }
func (u *ptrBase[T]) size() int                 { return u.n }
func (u *ptrBase[T]) order(a, b T) int          { return u.c(a, b) }

func (u *ptrBase[T]) view() view[T, *node[T]] {
	return u
}

// Clear the tree. O(1); the nodes are left to the garbage collector.
func (u *ptrBase[T]) Clear() {
	u.root, u.n = nil, 0
}

// Count of values in the tree.
// Time: O(1); Space: O(1)
func (u *ptrBase[T]) Count() int {
	return u.n
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) Min() (T, error) {
	return minimum(u.view())
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) Max() (T, error) {
	return maximum(u.view())
}

// Index [Tree.Index]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) Index(i int) (T, error) {
	return index(u.view(), i)
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) Find(v T) bool {
	return find(u.view(), v)
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) RankOf(v T) (int, bool) {
	return rankOf(u.view(), v)
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) Predecessor(v T) (T, bool) {
	return predecessor(u.view(), v)
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *ptrBase[T]) Successor(v T) (T, bool) {
	return successor(u.view(), v)
}

func (u *ptrBase[T]) InOrder() func() (T, bool)      { return inOrder(u.view()) }
func (u *ptrBase[T]) PreOrder() func() (T, bool)     { return preOrder(u.view()) }
func (u *ptrBase[T]) PostOrder() func() (T, bool)    { return postOrder(u.view()) }
func (u *ptrBase[T]) BreadthFirst() func() (T, bool) { return breadthFirst(u.view()) }

// Height of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *ptrBase[T]) Height() int {
	return height(u.view(), u.root)
}
