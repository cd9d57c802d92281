package model

import (
	"github.com/gostonefire/primehashmap/hashfunc"
	"log/slog"
)

// SlotState - State of a slot in an open addressing table
type SlotState uint8

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but was removed.
// A tombstone never goes back to SlotEmpty, only to SlotOccupied when reused by an insert.
const SlotTombstone SlotState = 2

// Record - Represents one key/value entry. Overwriting a key updates the Record in place.
type Record[V any] struct {
	Key   string
	Value V
}

// Slot - Represents one slot in an open addressing table. Record is nil while the slot is SlotEmpty
// and keeps the former entry while it is a SlotTombstone.
type Slot[V any] struct {
	State  SlotState
	Record *Record[V]
}

// StorageParameters - Represents parameters and utilization of any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	Capacity                     int
	Size                         int
	NumberOfEmptySlots           int
	NumberOfOccupiedSlots        int
	NumberOfTombstones           int
	LongestRun                   int
	BucketDistribution           []int
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table processing.
//   - Capacity is the requested initial capacity, it will be normalized to a prime
//   - HashFunction is the hash function to use
//   - Logger receives debug events such as resizes, nil discards them
type CRTConf struct {
	Capacity     int
	HashFunction hashfunc.HashFunction
	Logger       *slog.Logger
}
