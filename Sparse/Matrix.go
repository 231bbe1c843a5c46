package Sparse

import (
	"github.com/alphadose/haxmap"
)

// Bounds is the smallest rectangle holding every stored cell, inclusive.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int32
}

// Matrix is a two dimensional sparse array over the whole int32 plane. Only the cells
// that were set are stored.
type Matrix[T any] struct {
	m   *haxmap.Map[uint64, T]
	def T
	b   Bounds
}

func NewMatrix[T any](def T) *Matrix[T] {
	return &Matrix[T]{m: haxmap.New[uint64, T](), def: def}
}

func key(x, y int32) uint64 {
	return uint64(uint32(x))<<32 | uint64(uint32(y))
}

func coords(k uint64) (x, y int32) {
	return int32(uint32(k >> 32)), int32(uint32(k))
}

// Get the cell at (x, y).
func (u *Matrix[T]) Get(x, y int32) T {
	if v, ok := u.m.Get(key(x, y)); ok {
		return v
	}
	return u.def
}

// Set the cell at (x, y).
func (u *Matrix[T]) Set(x, y int32, v T) {
	if u.m.Len() == 0 {
		u.b = Bounds{x, y, x, y}
	} else {
		u.b = Bounds{min(u.b.MinX, x), min(u.b.MinY, y), max(u.b.MaxX, x), max(u.b.MaxY, y)}
	}
	u.m.Set(key(x, y), v)
}

// Count of the stored cells.
func (u *Matrix[T]) Count() int {
	return int(u.m.Len())
}

// Bounds of the stored cells. ok is false when nothing is stored.
func (u *Matrix[T]) Bounds() (b Bounds, ok bool) {
	return u.b, u.m.Len() > 0
}

// Range calls f for every stored cell in no particular order, until f returns false.
func (u *Matrix[T]) Range(f func(x, y int32, v T) bool) {
	u.m.ForEach(func(k uint64, v T) bool {
		x, y := coords(k)
		return f(x, y, v)
	})
}
