package Queues

import "github.com/sephirothx/dstruct"

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop returns *dstruct.EmptyError when the Queue is empty.
	Pop() (T, error)
	//Peek returns *dstruct.EmptyError when the Queue is empty.
	Peek() (T, error)
	Empty() bool
	Len() int
}

var (
	_ Queue[int] = (*ArrayQueue[int])(nil)
	_ Queue[int] = (*Deque[int])(nil)
)

func emptyErr(what string) error {
	return &dstruct.EmptyError{What: what}
}
