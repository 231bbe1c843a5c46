package Queues

// ArrayQueue is a Queue backed by a circular array that grows as needed.
type ArrayQueue[T any] struct {
	d Deque[T]
}

func NewArrayQueue[T any](initCap int) *ArrayQueue[T] {
	return &ArrayQueue[T]{Deque[T]{content: make([]T, max(initCap, 0))}}
}

func (this *ArrayQueue[T]) Empty() bool {
	return this.d.sz == 0
}

// Shrink the underlying array to fit the items.
func (this *ArrayQueue[T]) Shrink() {
	this.d.Shrink()
}

func (this *ArrayQueue[T]) Clear() {
	this.d.Clear()
}

func (this *ArrayQueue[T]) Len() int {
	return this.d.sz
}

func (this *ArrayQueue[T]) Push(item T) {
	this.d.PushBack(item)
}

func (this *ArrayQueue[T]) Pop() (item T, e error) {
	if this.Empty() {
		return item, emptyErr("queue")
	}
	return this.d.PopFront()
}

func (this *ArrayQueue[T]) Peek() (item T, e error) {
	if this.Empty() {
		return item, emptyErr("queue")
	}
	return this.d.Front()
}
