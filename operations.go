package primehashmap

import (
	"github.com/gostonefire/primehashmap/kv"
)

// Put - Updates an existing record with a new value or adds it if no existing is found with same key.
// The hash map grows before the insert if the load factor has reached the threshold of the technique in use,
// 0.5 for quadratic probing and 1.0 for separate chaining.
func (H *HashMap[V]) Put(key string, value V) {
	H.storage.Put(key, value)
}

// Get - Gets the value that corresponds to the given key.
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - ok is true if the key was found, an absent key is a normal result and not an error
func (H *HashMap[V]) Get(key string) (value V, ok bool) {
	return H.storage.Get(key)
}

// ContainsKey - Returns true if the key is in the hash map
func (H *HashMap[V]) ContainsKey(key string) bool {
	return H.storage.ContainsKey(key)
}

// Remove - Removes the record with the given key. Does nothing if the key is not in the hash map.
func (H *HashMap[V]) Remove(key string) {
	H.storage.Remove(key)
}

// Resize - Rehashes all records into newCapacity buckets, rounded up to a prime.
// Quadratic probing silently ignores a newCapacity lower than Size, separate chaining one lower than 1.
func (H *HashMap[V]) Resize(newCapacity int) {
	H.storage.Resize(newCapacity)
}

// Clear - Removes all records, the capacity stays the same
func (H *HashMap[V]) Clear() {
	H.storage.Clear()
}

// Size - Returns the number of records
func (H *HashMap[V]) Size() int {
	return H.storage.Size()
}

// Capacity - Returns the number of buckets, always a prime
func (H *HashMap[V]) Capacity() int {
	return H.storage.Capacity()
}

// LoadFactor - Returns Size divided by Capacity
func (H *HashMap[V]) LoadFactor() float64 {
	return H.storage.LoadFactor()
}

// EmptyBuckets - Returns the number of buckets available for new records.
// For quadratic probing tombstones count as empty.
func (H *HashMap[V]) EmptyBuckets() int {
	return H.storage.EmptyBuckets()
}

// KeysAndValues - Returns all records as key/value pairs in bucket order
func (H *HashMap[V]) KeysAndValues() []kv.Pair[V] {
	return H.storage.KeysAndValues()
}

// Iterator - Returns a restartable iterator over all records in bucket order.
// The hash map must not be changed while iterating.
func (H *HashMap[V]) Iterator() kv.Iterator[V] {
	return H.storage.Iterator()
}

// String - Returns a human-readable dump with one line per bucket
func (H *HashMap[V]) String() string {
	return H.storage.String()
}

// Stat - Returns statistics on the overall usage and distribution over buckets.
//   - includeDistribution set to true will include a slice of length Capacity with the number of records per bucket
//
// It returns:
//   - hashMapStat is a pointer to a HashMapStat struct
func (H *HashMap[V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	sp := H.storage.GetStorageParameters(includeDistribution)

	hashMapStat = &HashMapStat{
		Records:            sp.Size,
		EmptyBuckets:       sp.NumberOfEmptySlots,
		OccupiedBuckets:    sp.NumberOfOccupiedSlots,
		Tombstones:         sp.NumberOfTombstones,
		LongestRun:         sp.LongestRun,
		BucketDistribution: sp.BucketDistribution,
	}

	return
}
