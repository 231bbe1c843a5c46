package Queues

import (
	"github.com/sephirothx/dstruct/Heaps"
)

// Order of a PriorityQueue.
type Order byte

const (
	// Ascending pops the item with the highest priority first.
	Ascending Order = iota
	// Descending pops the item with the lowest priority first.
	Descending
)

// Item is a value with its priority.
type Item[T any] struct {
	Value    T
	Priority int
}

// PriorityQueue is a queue that pops items by priority, backed by a binary heap. Items
// with equal priorities are popped in no particular order.
type PriorityQueue[T any] struct {
	h *Heaps.Heap[Item[T]]
}

func NewPriorityQueue[T any](order Order, initCap int) *PriorityQueue[T] {
	less := func(a, b Item[T]) bool { return a.Priority > b.Priority }
	if order == Descending {
		less = func(a, b Item[T]) bool { return a.Priority < b.Priority }
	}
	h, _ := Heaps.NewFunc(less, max(initCap, 0))
	return &PriorityQueue[T]{h}
}

func (this *PriorityQueue[T]) Push(v T, priority int) {
	this.h.Push(Item[T]{v, priority})
}

// Pop returns *dstruct.EmptyError when there's nothing to pop.
func (this *PriorityQueue[T]) Pop() (Item[T], error) {
	return this.h.Pop()
}

// Peek returns *dstruct.EmptyError when the queue is empty.
func (this *PriorityQueue[T]) Peek() (Item[T], error) {
	return this.h.Peek()
}

func (this *PriorityQueue[T]) Len() int {
	return this.h.Len()
}

func (this *PriorityQueue[T]) Empty() bool {
	return this.h.Empty()
}

// Drain returns a closure that pops the values one by one until the queue is empty.
func (this *PriorityQueue[T]) Drain() func() (T, bool) {
	return func() (v T, has bool) {
		if it, e := this.h.Pop(); e == nil {
			v, has = it.Value, true
		}
		return
	}
}
