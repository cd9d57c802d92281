package openaddressing

import (
	"github.com/gostonefire/primehashmap/internal/model"
)

// homeIndex - Returns the first slot in the probe sequence of key
func (Q *QPTable[V]) homeIndex(key string) uint64 {
	return Q.hashFunction.Hash(key) % uint64(Q.capacity)
}

// probeIteration - Implements Quadratic Probing, iteration j visits home + j*j (mod capacity)
func (Q *QPTable[V]) probeIteration(home uint64, j int) int {
	c := uint64(Q.capacity)
	jj := uint64(j) % c
	return int((home + jj*jj%c) % c)
}

// probingForGet - Is the Quadratic Probing Collision Resolution Technique algorithm for getting a record.
// The search stops at the first empty slot, tombstones are passed since the key may still be further along.
func (Q *QPTable[V]) probingForGet(key string) (index int, ok bool) {
	home := Q.homeIndex(key)

	for j := 0; j < Q.capacity; j++ {
		index = Q.probeIteration(home, j)
		slot := Q.slots[index]

		switch slot.State {
		case model.SlotEmpty:
			return -1, false

		case model.SlotOccupied:
			if slot.Record.Key == key {
				return index, true
			}
		}
	}

	return -1, false
}

// probingForSet - Is the Quadratic Probing Collision Resolution Technique algorithm for getting a slot for set.
// It returns the slot holding key if present. Otherwise the first tombstone passed is returned, or the empty
// slot that ended the search if no tombstone was passed. The key is only known to be absent once an empty slot
// is reached or the sequence is exhausted, so a tombstone is never reused before that.
// ok is false only when the probe sequence holds neither key, tombstone nor empty slot.
func (Q *QPTable[V]) probingForSet(key string) (index int, ok bool) {
	home := Q.homeIndex(key)
	tombstone := -1

	for j := 0; j < Q.capacity; j++ {
		index = Q.probeIteration(home, j)
		slot := Q.slots[index]

		switch slot.State {
		case model.SlotEmpty:
			if tombstone >= 0 {
				return tombstone, true
			}
			return index, true

		case model.SlotOccupied:
			if slot.Record.Key == key {
				return index, true
			}

		case model.SlotTombstone:
			if tombstone < 0 {
				tombstone = index
			}
		}
	}

	if tombstone >= 0 {
		return tombstone, true
	}

	return -1, false
}

// setSlot - Writes key and value to the slot at index following the slot state machine:
// empty becomes occupied with a new record, a tombstone is revived by overwriting its record,
// and an occupied slot (which must hold key) gets its value overwritten.
func (Q *QPTable[V]) setSlot(index int, key string, value V) {
	slot := &Q.slots[index]

	switch slot.State {
	case model.SlotEmpty:
		slot.Record = &model.Record[V]{Key: key, Value: value}
		slot.State = model.SlotOccupied
		Q.size++

	case model.SlotTombstone:
		slot.Record.Key = key
		slot.Record.Value = value
		slot.State = model.SlotOccupied
		Q.size++

	case model.SlotOccupied:
		slot.Record.Value = value
	}
}
