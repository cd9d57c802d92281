package overflow

import (
	"fmt"
	"github.com/gostonefire/primehashmap/internal/model"
	"strings"
)

type node[V any] struct {
	record *model.Record[V]
	next   *node[V]
}

// Chain - A singly linked list of records, used as the bucket of a separate chaining table.
// The zero value is an empty chain ready to use.
type Chain[V any] struct {
	head   *node[V]
	tail   *node[V]
	length int
}

// Append - Adds a new record with key and value at the end of the chain. It does not check for duplicates.
func (C *Chain[V]) Append(key string, value V) {
	n := &node[V]{record: &model.Record[V]{Key: key, Value: value}}
	if C.tail == nil {
		C.head = n
	} else {
		C.tail.next = n
	}
	C.tail = n
	C.length++
}

// Find - Returns the record with matching key, or nil if there is none
func (C *Chain[V]) Find(key string) *model.Record[V] {
	for n := C.head; n != nil; n = n.next {
		if n.record.Key == key {
			return n.record
		}
	}

	return nil
}

// Remove - Unlinks the first record with matching key. Returns true if a record was removed.
func (C *Chain[V]) Remove(key string) bool {
	var prev *node[V]
	for n := C.head; n != nil; n = n.next {
		if n.record.Key == key {
			if prev == nil {
				C.head = n.next
			} else {
				prev.next = n.next
			}
			if C.tail == n {
				C.tail = prev
			}
			C.length--
			return true
		}
		prev = n
	}

	return false
}

// Length - Returns the number of records in the chain
func (C *Chain[V]) Length() int {
	return C.length
}

// Records - Returns an iterator over the records in chain order
func (C *Chain[V]) Records() *Records[V] {
	return NewRecords(C)
}

// String - Returns the chain as "SLL [key: value -> key: value]"
func (C *Chain[V]) String() string {
	var sb strings.Builder
	sb.WriteString("SLL [")
	for n := C.head; n != nil; n = n.next {
		if n != C.head {
			sb.WriteString(" -> ")
		}
		_, _ = fmt.Fprintf(&sb, "%s: %v", n.record.Key, n.record.Value)
	}
	sb.WriteString("]")

	return sb.String()
}
