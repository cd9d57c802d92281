package openaddressing

import (
	"fmt"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/logger"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/utils"
	"github.com/gostonefire/primehashmap/kv"
	"log/slog"
	"strings"
)

// QPTable - Represents an implementation of the Quadratic Probing Collision Resolution Technique.
// It uses one slice of slots where each slot holds at most one record. In case of a collision, it probes through
// the table at home + j*j (mod capacity) looking for a free slot. Removed records leave tombstones behind that
// are reused by later inserts but never turn back into empty slots.
// The table doubles its capacity before an insert whenever the load factor has reached 0.5.
type QPTable[V any] struct {
	slots        []model.Slot[V]
	capacity     int
	size         int
	hashFunction hashfunc.HashFunction
	logger       *slog.Logger
}

// NewQPTable - Returns a pointer to a new instance of a Quadratic Probing table.
//   - crtConf is a model.CRTConf struct providing configuration parameters, Capacity is rounded up to the
//     next odd prime and a nil HashFunction defaults to hashfunc.SumHash
//
// It returns:
//   - qpTable which is a pointer to the created instance
func NewQPTable[V any](crtConf model.CRTConf) (qpTable *QPTable[V]) {
	if crtConf.HashFunction == nil {
		crtConf.HashFunction = hashfunc.SumHash
	}
	if crtConf.Logger == nil {
		crtConf.Logger = logger.VoidLogger()
	}

	capacity := utils.NextPrime(crtConf.Capacity)

	qpTable = &QPTable[V]{
		slots:        make([]model.Slot[V], capacity),
		capacity:     capacity,
		size:         0,
		hashFunction: crtConf.HashFunction,
		logger:       crtConf.Logger,
	}

	return
}

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// If the load factor is 0.5 or higher the table first doubles its capacity.
func (Q *QPTable[V]) Put(key string, value V) {
	if Q.LoadFactor() >= crt.MaxLoad(crt.QuadraticProbing) {
		Q.Resize(Q.capacity * 2)
	}

	for {
		index, ok := Q.probingForSet(key)
		if ok {
			Q.setSlot(index, key, value)
			return
		}

		// Unreachable while the load factor bound holds, grow and probe again should it ever happen
		Q.Resize(Q.capacity * 2)
	}
}

// Get - Gets the value that corresponds to the given key.
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - ok is true if the key was found
func (Q *QPTable[V]) Get(key string) (value V, ok bool) {
	index, ok := Q.probingForGet(key)
	if !ok {
		return
	}

	value = Q.slots[index].Record.Value

	return
}

// ContainsKey - Returns true if the key is in the table
func (Q *QPTable[V]) ContainsKey(key string) bool {
	_, ok := Q.probingForGet(key)
	return ok
}

// Remove - Removes the record with the given key by turning its slot into a tombstone.
// Does nothing if the key is not in the table.
func (Q *QPTable[V]) Remove(key string) {
	index, ok := Q.probingForGet(key)
	if !ok {
		return
	}

	Q.slots[index].State = model.SlotTombstone
	Q.size--
}

// Resize - Changes the capacity of the table and rehashes all live records into a new slot slice.
// A newCapacity lower than the current number of records is ignored. A newCapacity that is not a prime
// is rounded up to the next prime. The new slots replace the old ones only after all records are in.
func (Q *QPTable[V]) Resize(newCapacity int) {
	if newCapacity < Q.size {
		return
	}

	newCapacity = utils.NormalizeCapacity(newCapacity)

	Q.logger.Debug("resizing table",
		"technique", crt.Name(crt.QuadraticProbing),
		"from", Q.capacity,
		"to", newCapacity,
		"size", Q.size,
	)

	rehashed := &QPTable[V]{
		slots:        make([]model.Slot[V], newCapacity),
		capacity:     newCapacity,
		hashFunction: Q.hashFunction,
		logger:       Q.logger,
	}

	for _, slot := range Q.slots {
		if slot.State == model.SlotOccupied {
			rehashed.Put(slot.Record.Key, slot.Record.Value)
		}
	}

	Q.slots, Q.capacity, Q.size = rehashed.slots, rehashed.capacity, rehashed.size
}

// Clear - Removes all records without changing the capacity
func (Q *QPTable[V]) Clear() {
	Q.slots = make([]model.Slot[V], Q.capacity)
	Q.size = 0
}

// Size - Returns the number of live records
func (Q *QPTable[V]) Size() int {
	return Q.size
}

// Capacity - Returns the number of slots
func (Q *QPTable[V]) Capacity() int {
	return Q.capacity
}

// LoadFactor - Returns the number of live records divided by the number of slots
func (Q *QPTable[V]) LoadFactor() float64 {
	return float64(Q.size) / float64(Q.capacity)
}

// EmptyBuckets - Returns the number of slots available for new records, that is empty slots and tombstones
func (Q *QPTable[V]) EmptyBuckets() (n int) {
	for _, slot := range Q.slots {
		if slot.State != model.SlotOccupied {
			n++
		}
	}

	return
}

// KeysAndValues - Returns all live records as key/value pairs in ascending slot order
func (Q *QPTable[V]) KeysAndValues() (pairs []kv.Pair[V]) {
	pairs = make([]kv.Pair[V], 0, Q.size)
	for _, slot := range Q.slots {
		if slot.State == model.SlotOccupied {
			pairs = append(pairs, kv.Pair[V]{Key: slot.Record.Key, Value: slot.Record.Value})
		}
	}

	return
}

// Iterator - Returns a new iterator positioned before the first occupied slot
func (Q *QPTable[V]) Iterator() kv.Iterator[V] {
	return newSlotIterator(Q)
}

// GetStorageParameters - Walks through all slots and returns a struct with storage parameters and utilization.
// LongestRun is the longest stretch of consecutive non-empty slots (occupied or tombstone), which bounds
// how far a failing lookup may have to probe before it hits an empty slot.
//   - includeDistribution set to true will include a slice of length Capacity with 1 for every occupied slot
func (Q *QPTable[V]) GetStorageParameters(includeDistribution bool) (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.QuadraticProbing,
		Capacity:                     Q.capacity,
		Size:                         Q.size,
	}

	if includeDistribution {
		params.BucketDistribution = make([]int, Q.capacity)
	}

	var run int
	for i, slot := range Q.slots {
		switch slot.State {
		case model.SlotEmpty:
			params.NumberOfEmptySlots++
			run = 0
			continue
		case model.SlotOccupied:
			params.NumberOfOccupiedSlots++
			if includeDistribution {
				params.BucketDistribution[i] = 1
			}
		case model.SlotTombstone:
			params.NumberOfTombstones++
		}

		run++
		if run > params.LongestRun {
			params.LongestRun = run
		}
	}

	return
}

// String - Returns a human-readable dump with one "index: contents" line per slot
func (Q *QPTable[V]) String() string {
	var sb strings.Builder
	for i, slot := range Q.slots {
		switch slot.State {
		case model.SlotEmpty:
			_, _ = fmt.Fprintf(&sb, "%d: None\n", i)
		case model.SlotOccupied:
			_, _ = fmt.Fprintf(&sb, "%d: K: %s V: %v TS: false\n", i, slot.Record.Key, slot.Record.Value)
		case model.SlotTombstone:
			_, _ = fmt.Fprintf(&sb, "%d: K: %s V: %v TS: true\n", i, slot.Record.Key, slot.Record.Value)
		}
	}

	return sb.String()
}
