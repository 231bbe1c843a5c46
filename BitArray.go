package dstruct

import (
	"math/bits"
)

// NewBitArray with at least size bits, all cleared.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize), n: size}
}

// BitArray is a fixed size array of bits. The zero value has length 0.
type BitArray struct {
	bits []uint
	n    int
}

// Len is the number of addressable bits.
func (u BitArray) Len() int {
	return u.n
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of set bits.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Reset all bits to 0.
func (u BitArray) Reset() {
	clear(u.bits)
}
