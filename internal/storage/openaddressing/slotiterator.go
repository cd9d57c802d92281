package openaddressing

import (
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/kv"
)

// SlotIterator - Is used to iterate over the occupied slots of a QPTable in ascending slot order.
// It reads the slots the table has at the time of each call.
type SlotIterator[V any] struct {
	table *QPTable[V]
	index int
}

// newSlotIterator - Returns a pointer to a new SlotIterator struct
func newSlotIterator[V any](table *QPTable[V]) *SlotIterator[V] {
	return &SlotIterator[V]{table: table}
}

// HasNext - Returns true if there is an occupied slot at or after the cursor
func (S *SlotIterator[V]) HasNext() bool {
	return S.nextOccupied() >= 0
}

// Next - Returns the record of the next occupied slot and moves the cursor past it.
// It returns an error of type crt.NoRecordFound if there are no more occupied slots.
func (S *SlotIterator[V]) Next() (pair kv.Pair[V], err error) {
	i := S.nextOccupied()
	if i < 0 {
		S.index = len(S.table.slots)
		err = crt.NoRecordFound{}
		return
	}

	record := S.table.slots[i].Record
	pair = kv.Pair[V]{Key: record.Key, Value: record.Value}
	S.index = i + 1

	return
}

// Reset - Moves the cursor back to the first slot
func (S *SlotIterator[V]) Reset() {
	S.index = 0
}

// nextOccupied - Returns the index of the first occupied slot at or after the cursor, -1 if none
func (S *SlotIterator[V]) nextOccupied() int {
	for i := S.index; i < len(S.table.slots); i++ {
		if S.table.slots[i].State == model.SlotOccupied {
			return i
		}
	}

	return -1
}
