package overflow

import (
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/internal/model"
)

// Records - Is used to iterate over the records of a Chain one by one.
type Records[V any] struct {
	first *node[V]
	next  *node[V]
}

// NewRecords - Returns a pointer to a new Records struct positioned at the head of the chain
func NewRecords[V any](chain *Chain[V]) *Records[V] {
	return &Records[V]{
		first: chain.head,
		next:  chain.head,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *Records[V]) HasNext() bool {
	return O.next != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (O *Records[V]) Next() (record *model.Record[V], err error) {
	if O.next == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = O.next.record
	O.next = O.next.next

	return
}

// Reset - Rewinds to the head the chain had when the iterator was created
func (O *Records[V]) Reset() {
	O.next = O.first
}
