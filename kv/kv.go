package kv

// Pair - One key and its value as returned by bulk extraction and iteration
type Pair[V any] struct {
	Key   string
	Value V
}

// Iterator - Is used to iterate over the records of a hash map one by one.
// Reset rewinds the cursor so the same iterator can be used for another pass. Mutating the hash map
// during an iteration is not supported, the cursor may then skip or repeat records.
type Iterator[V any] interface {
	// HasNext - Returns true if there are more records to be fetched from a call to Next.
	HasNext() bool
	// Next - Returns the next record, or an error of type crt.NoRecordFound if the iterator is exhausted.
	Next() (pair Pair[V], err error)
	// Reset - Rewinds the iterator to the first record.
	Reset()
}
