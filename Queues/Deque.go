package Queues

import (
	"github.com/sephirothx/dstruct"
)

const defaultCap = 8

// Deque is a double ended queue backed by a circular array. It also supports O(1)
// indexing. The zero value is an empty Deque ready to use.
type Deque[T any] struct {
	head, sz int
	content  []T
}

// NewDeque returns an empty Deque with room for initCap items.
func NewDeque[T any](initCap int) *Deque[T] {
	return &Deque[T]{content: make([]T, max(initCap, 0))}
}

// DequeFrom returns a Deque holding vs, in order. The slice is handed to the Deque and
// mustn't be used by the caller later.
func DequeFrom[T any](vs []T) (*Deque[T], error) {
	if vs == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "vs", Reason: "nil slice"}
	}
	return &Deque[T]{sz: len(vs), content: vs}, nil
}

func (this *Deque[T]) pos(i int) int {
	if i += this.head; i >= len(this.content) {
		i -= len(this.content)
	}
	return i
}

func (this *Deque[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if this.head+this.sz <= len(this.content) {
		copy(nc, this.content[this.head:this.head+this.sz])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.sz-n])
	}
	this.content, this.head = nc, 0
}

func (this *Deque[T]) grow() {
	if this.sz == len(this.content) {
		this.resize(max(this.sz*2, defaultCap))
	}
}

// Shrink the underlying array to fit the items.
func (this *Deque[T]) Shrink() {
	this.resize(this.sz)
}

// Clear the Deque, keeping its capacity.
func (this *Deque[T]) Clear() {
	clear(this.content)
	this.head, this.sz = 0, 0
}

func (this *Deque[T]) Len() int {
	return this.sz
}

func (this *Deque[T]) Cap() int {
	return len(this.content)
}

func (this *Deque[T]) Empty() bool {
	return this.sz == 0
}

func (this *Deque[T]) PushBack(item T) {
	this.grow()
	this.content[this.pos(this.sz)] = item
	this.sz++
}

func (this *Deque[T]) PushFront(item T) {
	this.grow()
	if this.head--; this.head < 0 {
		this.head += len(this.content)
	}
	this.content[this.head] = item
	this.sz++
}

func (this *Deque[T]) PopBack() (item T, e error) {
	if this.sz == 0 {
		return item, emptyErr("deque")
	}
	this.sz--
	i := this.pos(this.sz)
	item, this.content[i] = this.content[i], item
	return
}

func (this *Deque[T]) PopFront() (item T, e error) {
	if this.sz == 0 {
		return item, emptyErr("deque")
	}
	item, this.content[this.head] = this.content[this.head], item
	this.head = this.pos(1)
	this.sz--
	return
}

func (this *Deque[T]) Front() (item T, e error) {
	if this.sz == 0 {
		return item, emptyErr("deque")
	}
	return this.content[this.head], nil
}

func (this *Deque[T]) Back() (item T, e error) {
	if this.sz == 0 {
		return item, emptyErr("deque")
	}
	return this.content[this.pos(this.sz-1)], nil
}

// Push is PushBack, so a Deque can be used as a Queue.
func (this *Deque[T]) Push(item T) {
	this.PushBack(item)
}

// Pop is PopFront.
func (this *Deque[T]) Pop() (T, error) {
	return this.PopFront()
}

// Peek is Front.
func (this *Deque[T]) Peek() (T, error) {
	return this.Front()
}

func (this *Deque[T]) check(i, n int) error {
	if i < 0 || i >= n {
		return &dstruct.IndexOutOfRangeError{Index: i, Len: n}
	}
	return nil
}

// At returns the i-th item from the front.
func (this *Deque[T]) At(i int) (item T, e error) {
	if e = this.check(i, this.sz); e == nil {
		item = this.content[this.pos(i)]
	}
	return
}

// Set the i-th item from the front.
func (this *Deque[T]) Set(i int, item T) error {
	if e := this.check(i, this.sz); e != nil {
		return e
	}
	this.content[this.pos(i)] = item
	return nil
}

// Insert item so it becomes the i-th item. 0<=i<=Len(). The shorter side is shifted.
// Time: O(min(i, Len()-i))
func (this *Deque[T]) Insert(i int, item T) error {
	if e := this.check(i, this.sz+1); e != nil {
		return e
	}
	if i < this.sz/2 {
		this.PushFront(item)
		for j := 0; j < i; j++ {
			this.content[this.pos(j)] = this.content[this.pos(j+1)]
		}
	} else {
		this.PushBack(item)
		for j := this.sz - 1; j > i; j-- {
			this.content[this.pos(j)] = this.content[this.pos(j-1)]
		}
	}
	this.content[this.pos(i)] = item
	return nil
}

// RemoveAt removes and returns the i-th item. The shorter side is shifted.
// Time: O(min(i, Len()-i))
func (this *Deque[T]) RemoveAt(i int) (item T, e error) {
	if e = this.check(i, this.sz); e != nil {
		return
	}
	item = this.content[this.pos(i)]
	if i < this.sz/2 {
		for j := i; j > 0; j-- {
			this.content[this.pos(j)] = this.content[this.pos(j-1)]
		}
		this.PopFront()
	} else {
		for j := i; j < this.sz-1; j++ {
			this.content[this.pos(j)] = this.content[this.pos(j+1)]
		}
		this.PopBack()
	}
	return
}

// IndexFunc returns the index of the first item satisfying f, or -1.
func (this *Deque[T]) IndexFunc(f func(T) bool) int {
	for i := 0; i < this.sz; i++ {
		if f(this.content[this.pos(i)]) {
			return i
		}
	}
	return -1
}

// All returns a closure iterating the items from front to back. The Deque mustn't be
// modified during the iteration.
func (this *Deque[T]) All() func() (T, bool) {
	i := 0
	return func() (item T, has bool) {
		if i < this.sz {
			item, has = this.content[this.pos(i)], true
			i++
		}
		return
	}
}
