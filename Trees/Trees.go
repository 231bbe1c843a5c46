package Trees

// Tree is an ordered multiset that also answers rank queries.
// Values that compare equal are all kept; a new value is placed after every value
// equal to it. Methods that return an error leave the tree unchanged when they fail.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
// A Tree is not safe for concurrent use; callers must synchronize.
type Tree[T any] interface {
	//Count of values in the tree.
	Count() int
	//Min returns the smallest value, or *dstruct.EmptyError.
	Min() (T, error)
	//Max returns the largest value, or *dstruct.EmptyError.
	Max() (T, error)
	//Index returns the i-th smallest value, starting from 0.
	//Returns *dstruct.IndexOutOfRangeError unless 0<=i<Count().
	Index(i int) (T, error)
	//Insert v and return its rank, the number of values before it in in-order.
	Insert(v T) int
	//Find whether some value equal to v is in the tree.
	Find(v T) bool
	//Remove one value equal to v. Returns false, and leaves the tree exactly
	//as it was, if there's no such value.
	Remove(v T) bool
	//RankOf returns the number of values less than v, and whether v is in the tree.
	//If v is found, Index(RankOf(v)) is equal to v.
	RankOf(v T) (int, bool)
	//Predecessor returns the greatest value less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest value greater than v.
	Successor(v T) (T, bool)
	//InOrder returns A closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree, which is sorted.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f; the result
	//is undefined if it is.
	InOrder() func() (T, bool)
	//PreOrder is like InOrder, but gives a node before its left and right subtrees.
	PreOrder() func() (T, bool)
	//PostOrder is like InOrder, but gives a node after its left and right subtrees.
	PostOrder() func() (T, bool)
	//BreadthFirst is like InOrder, but gives the nodes level by level, left to right.
	BreadthFirst() func() (T, bool)
	//Height of the tree, 0 when empty.
	Height() int
	//Clear removes all values.
	Clear()
	//Audit checks every structural property of the tree, returning a *CorruptTreeError
	//describing the first violation found. This is to be distinguished from whether the
	//values are as expected: Audit only checks the tree is well-formed.
	Audit() error
}

var (
	_ Tree[int] = (*AVLTree[int])(nil)
	_ Tree[int] = (*BSTree[int])(nil)
	_ Tree[int] = (*RBTree[int, uint32])(nil)
)

// Values returns an iterator over vs, suitable for the From constructors.
// A nil vs gives a nil iterator.
func Values[T any](vs []T) func() (T, bool) {
	if vs == nil {
		return nil
	}
	i := 0
	return func() (r T, has bool) {
		if i < len(vs) {
			r, has = vs[i], true
			i++
		}
		return
	}
}

// Collect all the values f gives into a slice.
func Collect[T any](f func() (T, bool)) (vs []T) {
	for v, ok := f(); ok; v, ok = f() {
		vs = append(vs, v)
	}
	return
}
