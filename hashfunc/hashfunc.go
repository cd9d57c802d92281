package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"hash/crc32"
)

// HashFunction - Interface that permits a user of the hash map to supply a custom hash function suited for its
// particular distribution of keys. The table reduces the returned value modulo its capacity, so the function
// does not need to know anything about the table size.
type HashFunction interface {
	// Hash - Given key it returns a non-negative hash value. It must be a pure function of the key.
	Hash(key string) uint64
}

// HashFunc - Adapter to allow the use of an ordinary function as a HashFunction
type HashFunc func(key string) uint64

// Hash - Calls f(key)
func (f HashFunc) Hash(key string) uint64 {
	return f(key)
}

// SumHash - Sums the code points of the key. Anagrams collide, which makes it handy for exercising
// collision resolution in tests.
var SumHash HashFunction = HashFunc(func(key string) (h uint64) {
	for _, r := range key {
		h += uint64(r)
	}
	return
})

// WeightedSumHash - Sums the code points of the key, each weighted by its 1-based position.
var WeightedSumHash HashFunction = HashFunc(func(key string) (h uint64) {
	var i uint64
	for _, r := range key {
		i++
		h += i * uint64(r)
	}
	return
})

// CRC32Hash - Uses crc32.ChecksumIEEE over the key bytes
var CRC32Hash HashFunction = HashFunc(func(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
})

// XXHash - Uses the 64-bit xxhash digest of the key shifted down to 63 bits
var XXHash HashFunction = HashFunc(func(key string) uint64 {
	return xxhash.Sum64String(key) >> 1
})

// ByName - Returns one of the provided hash functions by its configuration name
// (sum, weighted, crc32 or xxhash). The second return value is false for unknown names.
func ByName(name string) (HashFunction, bool) {
	switch name {
	case "", "sum":
		return SumHash, true
	case "weighted":
		return WeightedSumHash, true
	case "crc32":
		return CRC32Hash, true
	case "xxhash":
		return XXHash, true
	}
	return nil, false
}
