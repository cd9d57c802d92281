package separatechaining

import (
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/internal/overflow"
	"github.com/gostonefire/primehashmap/kv"
)

// BucketIterator - Is used to iterate over all records of a SCTable, bucket by bucket and within
// a bucket in chain order.
type BucketIterator[V any] struct {
	table  *SCTable[V]
	bucket int
	chain  *overflow.Records[V]
}

// newBucketIterator - Returns a pointer to a new BucketIterator struct
func newBucketIterator[V any](table *SCTable[V]) *BucketIterator[V] {
	return &BucketIterator[V]{table: table}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (B *BucketIterator[V]) HasNext() bool {
	return B.advance()
}

// Next - Returns the next record.
// It returns an error of type crt.NoRecordFound if there are no more records.
func (B *BucketIterator[V]) Next() (pair kv.Pair[V], err error) {
	if !B.advance() {
		err = crt.NoRecordFound{}
		return
	}

	record, err := B.chain.Next()
	if err != nil {
		return
	}

	pair = kv.Pair[V]{Key: record.Key, Value: record.Value}

	return
}

// Reset - Moves the cursor back to the first bucket
func (B *BucketIterator[V]) Reset() {
	B.bucket = 0
	B.chain = nil
}

// advance - Positions the chain iterator on a chain with a pending record, moving over buckets as needed.
// Returns false when all buckets are exhausted.
func (B *BucketIterator[V]) advance() bool {
	for {
		if B.chain != nil && B.chain.HasNext() {
			return true
		}
		if B.bucket >= len(B.table.buckets) {
			return false
		}
		B.chain = B.table.buckets[B.bucket].Records()
		B.bucket++
	}
}
