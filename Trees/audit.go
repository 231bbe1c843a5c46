package Trees

import (
	"fmt"
)

// CorruptTreeError is returned by [Tree.Audit].
type CorruptTreeError struct {
	Reason string
}

func (e *CorruptTreeError) Error() string {
	return "corrupt tree: " + e.Reason
}

func corrupt(format string, a ...any) *CorruptTreeError {
	return &CorruptTreeError{fmt.Sprintf(format, a...)}
}

// auditShape checks the in-order sequence is sorted, every left subtree size is right,
// and the count matches the number of reachable nodes. Recursive.
func auditShape[T any, N comparable](u view[T, N]) error {
	var z N
	var size func(N) (int, error)
	size = func(n N) (int, error) {
		if n == z {
			return 0, nil
		}
		l, err := size(u.left(n))
		if err != nil {
			return 0, err
		}
		if l != u.lsz(n) {
			return 0, corrupt("node %v has left size %d, want %d", u.val(n), u.lsz(n), l)
		}
		r, err := size(u.right(n))
		return l + r + 1, err
	}
	n, err := size(u.top())
	if err != nil {
		return err
	}
	if n != u.size() {
		return corrupt("count is %d, but %d nodes are reachable", u.size(), n)
	}
	next := inOrder(u)
	prev, ok := next()
	for cur, has := next(); ok && has; cur, has = next() {
		if u.order(prev, cur) > 0 {
			return corrupt("%v comes before %v", prev, cur)
		}
		prev = cur
	}
	return nil
}
