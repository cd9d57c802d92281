package separatechaining

import (
	"fmt"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/logger"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/overflow"
	"github.com/gostonefire/primehashmap/internal/utils"
	"github.com/gostonefire/primehashmap/kv"
	"log/slog"
	"strings"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket is a singly linked chain of the records whose keys hash to that bucket, chains have no upper
// bound on their length. The table doubles its capacity before an insert whenever the load factor has reached 1.0.
type SCTable[V any] struct {
	buckets      []overflow.Chain[V]
	capacity     int
	size         int
	hashFunction hashfunc.HashFunction
	logger       *slog.Logger
}

// NewSCTable - Returns a pointer to a new instance of a Separate Chaining table.
//   - crtConf is a model.CRTConf struct providing configuration parameters, Capacity is rounded up to the
//     next odd prime and a nil HashFunction defaults to hashfunc.SumHash
//
// It returns:
//   - scTable which is a pointer to the created instance
func NewSCTable[V any](crtConf model.CRTConf) (scTable *SCTable[V]) {
	if crtConf.HashFunction == nil {
		crtConf.HashFunction = hashfunc.SumHash
	}
	if crtConf.Logger == nil {
		crtConf.Logger = logger.VoidLogger()
	}

	capacity := utils.NextPrime(crtConf.Capacity)

	scTable = &SCTable[V]{
		buckets:      make([]overflow.Chain[V], capacity),
		capacity:     capacity,
		hashFunction: crtConf.HashFunction,
		logger:       crtConf.Logger,
	}

	return
}

// Put - Updates an existing record with new value or appends it to its bucket chain if no existing is found.
// If the load factor is 1.0 or higher the table first doubles its capacity.
func (S *SCTable[V]) Put(key string, value V) {
	if S.LoadFactor() >= crt.MaxLoad(crt.SeparateChaining) {
		S.Resize(S.capacity * 2)
	}

	chain := S.bucket(key)
	if record := chain.Find(key); record != nil {
		record.Value = value
		return
	}

	chain.Append(key, value)
	S.size++
}

// Get - Gets the value that corresponds to the given key.
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - ok is true if the key was found
func (S *SCTable[V]) Get(key string) (value V, ok bool) {
	record := S.bucket(key).Find(key)
	if record == nil {
		return
	}

	return record.Value, true
}

// ContainsKey - Returns true if the key is in the table
func (S *SCTable[V]) ContainsKey(key string) bool {
	return S.bucket(key).Find(key) != nil
}

// Remove - Unlinks the record with the given key from its chain. Does nothing if the key is not in the table.
func (S *SCTable[V]) Remove(key string) {
	if S.bucket(key).Remove(key) {
		S.size--
	}
}

// Resize - Changes the capacity of the table and rehashes all records into new buckets.
// A newCapacity lower than 1 is ignored, note that a capacity below the number of records is accepted
// and will be followed by growth on the next insert. A newCapacity that is not a prime is rounded up to
// the next prime. The new buckets replace the old ones only after all records are in.
func (S *SCTable[V]) Resize(newCapacity int) {
	if newCapacity < 1 {
		return
	}

	newCapacity = utils.NormalizeCapacity(newCapacity)

	S.logger.Debug("resizing table",
		"technique", crt.Name(crt.SeparateChaining),
		"from", S.capacity,
		"to", newCapacity,
		"size", S.size,
	)

	rehashed := &SCTable[V]{
		buckets:      make([]overflow.Chain[V], newCapacity),
		capacity:     newCapacity,
		hashFunction: S.hashFunction,
		logger:       S.logger,
	}

	for i := range S.buckets {
		iter := S.buckets[i].Records()
		for iter.HasNext() {
			record, _ := iter.Next()
			rehashed.Put(record.Key, record.Value)
		}
	}

	S.buckets, S.capacity, S.size = rehashed.buckets, rehashed.capacity, rehashed.size
}

// Clear - Removes all records without changing the capacity
func (S *SCTable[V]) Clear() {
	S.buckets = make([]overflow.Chain[V], S.capacity)
	S.size = 0
}

// Size - Returns the number of records
func (S *SCTable[V]) Size() int {
	return S.size
}

// Capacity - Returns the number of buckets
func (S *SCTable[V]) Capacity() int {
	return S.capacity
}

// LoadFactor - Returns the number of records divided by the number of buckets
func (S *SCTable[V]) LoadFactor() float64 {
	return float64(S.size) / float64(S.capacity)
}

// EmptyBuckets - Returns the number of buckets with an empty chain
func (S *SCTable[V]) EmptyBuckets() (n int) {
	for i := range S.buckets {
		if S.buckets[i].Length() == 0 {
			n++
		}
	}

	return
}

// KeysAndValues - Returns all records as key/value pairs, bucket by bucket in ascending order
// and within a bucket in chain order
func (S *SCTable[V]) KeysAndValues() (pairs []kv.Pair[V]) {
	pairs = make([]kv.Pair[V], 0, S.size)
	for i := range S.buckets {
		iter := S.buckets[i].Records()
		for iter.HasNext() {
			record, _ := iter.Next()
			pairs = append(pairs, kv.Pair[V]{Key: record.Key, Value: record.Value})
		}
	}

	return
}

// Iterator - Returns a new iterator positioned before the first record of the first non-empty bucket
func (S *SCTable[V]) Iterator() kv.Iterator[V] {
	return newBucketIterator(S)
}

// GetStorageParameters - Walks through all buckets and returns a struct with storage parameters and utilization.
// Empty and occupied refer to buckets, LongestRun is the length of the longest chain.
//   - includeDistribution set to true will include a slice of length Capacity with the chain length of every bucket
func (S *SCTable[V]) GetStorageParameters(includeDistribution bool) (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		Capacity:                     S.capacity,
		Size:                         S.size,
	}

	if includeDistribution {
		params.BucketDistribution = make([]int, S.capacity)
	}

	for i := range S.buckets {
		n := S.buckets[i].Length()
		if n == 0 {
			params.NumberOfEmptySlots++
		} else {
			params.NumberOfOccupiedSlots++
		}
		if n > params.LongestRun {
			params.LongestRun = n
		}
		if includeDistribution {
			params.BucketDistribution[i] = n
		}
	}

	return
}

// String - Returns a human-readable dump with one "index: chain" line per bucket
func (S *SCTable[V]) String() string {
	var sb strings.Builder
	for i := range S.buckets {
		_, _ = fmt.Fprintf(&sb, "%d: %s\n", i, S.buckets[i].String())
	}

	return sb.String()
}

// bucket - Returns the chain that key hashes to
func (S *SCTable[V]) bucket(key string) *overflow.Chain[V] {
	return &S.buckets[S.hashFunction.Hash(key)%uint64(S.capacity)]
}
