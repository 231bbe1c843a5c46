package Probabilistic

import (
	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// murmurSeed seeds the second hash of the double hashing scheme.
const murmurSeed = 144

// Murmur3 is the 32 bit x86 variant of MurmurHash3.
func Murmur3(data []byte, seed uint32) uint32 {
	return murmur3.Sum32WithSeed(data, seed)
}

// hashes of data for double hashing: the i-th of k indexes is (h1+(i+1)*h2) mod m.
func hashes(data []byte) (h1, h2 uint64) {
	return xxhash.Sum64(data), uint64(Murmur3(data, murmurSeed))
}

func nth(h1, h2 uint64, i, m int) int {
	return int((h1 + uint64(i+1)*h2) % uint64(m))
}
