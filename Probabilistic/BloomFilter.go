package Probabilistic

import (
	"math"

	"github.com/sephirothx/dstruct"
)

// BloomFilter is a set that can tell for sure that a value was never added, but may be
// wrong when it says a value was added. A value is hashed to k of m bits.
type BloomFilter struct {
	bits dstruct.BitArray
	k    int
}

// NewBloomFilter returns a BloomFilter sized so that after n values are added the
// chance of a false positive is about p.
func NewBloomFilter(n int, p float64) (*BloomFilter, error) {
	if n <= 0 {
		return nil, &dstruct.InvalidArgumentError{Name: "n", Reason: "must be positive"}
	}
	if !(p > 0 && p < 1) {
		return nil, &dstruct.InvalidArgumentError{Name: "p", Reason: "must be within (0, 1)"}
	}
	m := int(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	k := max(1, int(math.Round(float64(m)/float64(n)*math.Ln2)))
	return NewBloomFilterSized(m, k)
}

// NewBloomFilterSized returns a BloomFilter of m bits using k hashes per value.
func NewBloomFilterSized(m, k int) (*BloomFilter, error) {
	if m <= 0 {
		return nil, &dstruct.InvalidArgumentError{Name: "m", Reason: "must be positive"}
	}
	if k <= 0 {
		return nil, &dstruct.InvalidArgumentError{Name: "k", Reason: "must be positive"}
	}
	return &BloomFilter{dstruct.NewBitArray(m), k}, nil
}

// M is the number of bits.
func (u *BloomFilter) M() int {
	return u.bits.Len()
}

// K is the number of hashes per value.
func (u *BloomFilter) K() int {
	return u.k
}

func (u *BloomFilter) Add(data []byte) {
	h1, h2 := hashes(data)
	for i := range u.k {
		u.bits.Up(nth(h1, h2, i, u.bits.Len()))
	}
}

func (u *BloomFilter) AddString(s string) {
	u.Add([]byte(s))
}

// Contains tells whether data may have been added.
func (u *BloomFilter) Contains(data []byte) bool {
	h1, h2 := hashes(data)
	for i := range u.k {
		if !u.bits.Get(nth(h1, h2, i, u.bits.Len())) {
			return false
		}
	}
	return true
}

func (u *BloomFilter) ContainsString(s string) bool {
	return u.Contains([]byte(s))
}

// Clear every bit.
func (u *BloomFilter) Clear() {
	u.bits.Reset()
}
