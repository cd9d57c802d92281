package separatechaining

import (
	"errors"
	"fmt"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/utils"
	"github.com/gostonefire/primehashmap/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
	"strings"
	"testing"
)

func newTestTable(capacity int, hf hashfunc.HashFunction) *SCTable[int] {
	return NewSCTable[int](model.CRTConf{Capacity: capacity, HashFunction: hf})
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a new SCTable instance", func(t *testing.T) {
		// Execute
		scTable := newTestTable(20, nil)

		// Check
		assert.Equal(t, 23, scTable.Capacity(), "capacity rounded up to prime")
		assert.Len(t, scTable.buckets, 23, "buckets allocated")
		assert.Zero(t, scTable.Size(), "no records")
		assert.NotNil(t, scTable.hashFunction, "hash function is assigned")
		assert.NotNil(t, scTable.logger, "logger is assigned")
		assert.Equal(t, 23, scTable.EmptyBuckets(), "all buckets empty")
	})

	t.Run("non positive capacity is clamped to 3", func(t *testing.T) {
		assert.Equal(t, 3, newTestTable(0, nil).Capacity())
		assert.Equal(t, 3, newTestTable(-7, nil).Capacity())
	})
}

func TestSCTable_Put(t *testing.T) {
	t.Run("puts a record and reports introspection", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(20, hashfunc.SumHash)

		// Execute
		scTable.Put("key1", 10)

		// Check
		value, ok := scTable.Get("key1")
		assert.True(t, ok, "key1 found")
		assert.Equal(t, 10, value, "correct value")
		assert.Equal(t, 1, scTable.Size(), "one record")
		assert.Equal(t, 22, scTable.EmptyBuckets(), "one bucket in use")
		assert.True(t, scTable.ContainsKey("key1"), "contains key1")
	})

	t.Run("colliding keys share one chain in insertion order", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)

		// Execute
		scTable.Put("abc", 1)
		scTable.Put("bca", 2)
		scTable.Put("cab", 3)

		// Check
		bucket := scTable.buckets[hashfunc.SumHash.Hash("abc")%11]
		assert.Equal(t, 3, bucket.Length(), "one chain holds all three")
		assert.Equal(t, "SLL [abc: 1 -> bca: 2 -> cab: 3]", bucket.String(), "insertion order")
		assert.Equal(t, 10, scTable.EmptyBuckets(), "only one bucket in use")
	})

	t.Run("overwrites an existing record in place", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)
		scTable.Put("abc", 1)
		scTable.Put("bca", 2)
		record := scTable.bucket("bca").Find("bca")

		// Execute
		scTable.Put("bca", 20)

		// Check
		value, _ := scTable.Get("bca")
		assert.Equal(t, 20, value, "value overwritten")
		assert.Equal(t, 2, scTable.Size(), "size unchanged")
		assert.Same(t, record, scTable.bucket("bca").Find("bca"), "same record mutated")
	})

	t.Run("doubles capacity when load factor reaches 1.0", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(3, hashfunc.SumHash)
		scTable.Put("a", 1)
		scTable.Put("b", 2)
		scTable.Put("c", 3)
		assert.Equal(t, 3, scTable.Capacity(), "no growth below threshold")

		// Execute
		scTable.Put("d", 4)

		// Check
		assert.Equal(t, 7, scTable.Capacity(), "grown to next prime of 6")
		assert.Equal(t, 4, scTable.Size(), "all records present")
		for i, k := range []string{"a", "b", "c", "d"} {
			value, ok := scTable.Get(k)
			assert.Truef(t, ok, "%s found", k)
			assert.Equalf(t, i+1, value, "%s has correct value", k)
		}
	})

	t.Run("keeps capacity prime and load at most 1.0 for random keys", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(5, hashfunc.XXHash)
		keys := make(map[string]int)

		// Execute and Check
		for i := 0; i < 2000; i++ {
			key := fmt.Sprintf("%x", frand.Bytes(8))
			keys[key] = i
			scTable.Put(key, i)

			c := scTable.Capacity()
			assert.Truef(t, utils.IsPrime(c), "capacity %d is prime", c)
			assert.LessOrEqualf(t, scTable.LoadFactor(), 1.0, "load bounded at capacity %d", c)
		}

		assert.Equal(t, len(keys), scTable.Size(), "size matches distinct keys")
		for k, v := range keys {
			value, ok := scTable.Get(k)
			assert.Truef(t, ok, "key %s found", k)
			assert.Equalf(t, v, value, "key %s has last value", k)
		}
	})
}

func TestSCTable_Get(t *testing.T) {
	t.Run("absent key is a normal negative result", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(53, hashfunc.SumHash)
		scTable.Put("key1", 10)

		// Execute
		value, ok := scTable.Get("key2")

		// Check
		assert.False(t, ok, "key2 not found")
		assert.Zero(t, value, "zero value returned")
		assert.False(t, scTable.ContainsKey("key2"), "does not contain key2")
	})
}

func TestSCTable_Remove(t *testing.T) {
	t.Run("unlinks the middle of a chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)
		scTable.Put("abc", 1)
		scTable.Put("bca", 2)
		scTable.Put("cab", 3)

		// Execute
		scTable.Remove("bca")

		// Check
		assert.False(t, scTable.ContainsKey("bca"), "bca removed")
		assert.True(t, scTable.ContainsKey("abc"), "abc remains")
		assert.True(t, scTable.ContainsKey("cab"), "cab remains")
		assert.Equal(t, 2, scTable.Size(), "size decremented")
		assert.Equal(t, "SLL [abc: 1 -> cab: 3]", scTable.bucket("abc").String(), "chain relinked")
	})

	t.Run("removing the last record empties the bucket", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)
		scTable.Put("key1", 10)

		// Execute
		scTable.Remove("key1")

		// Check
		assert.Zero(t, scTable.Size(), "no records")
		assert.Equal(t, 11, scTable.EmptyBuckets(), "all buckets empty")
	})

	t.Run("removing an absent key does nothing", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(53, hashfunc.SumHash)
		scTable.Put("key1", 10)

		// Execute
		scTable.Remove("key4")

		// Check
		assert.Equal(t, 1, scTable.Size(), "size unchanged")
	})
}

func TestSCTable_Resize(t *testing.T) {
	t.Run("resizes to next prime and keeps records", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(20, hashfunc.SumHash)
		scTable.Put("key1", 10)

		// Execute
		scTable.Resize(30)

		// Check
		assert.Equal(t, 31, scTable.Capacity(), "capacity 31")
		assert.Equal(t, 1, scTable.Size(), "size preserved")
		value, ok := scTable.Get("key1")
		assert.True(t, ok, "key1 found")
		assert.Equal(t, 10, value, "value preserved")
	})

	t.Run("ignores a capacity lower than 1", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)
		scTable.Put("key1", 10)

		// Execute
		scTable.Resize(0)
		scTable.Resize(-5)

		// Check
		assert.Equal(t, 11, scTable.Capacity(), "capacity unchanged")
		assert.Equal(t, 1, scTable.Size(), "size unchanged")
	})

	t.Run("accepts a capacity below the number of records", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.WeightedSumHash)
		for i := 1; i <= 8; i++ {
			scTable.Put(fmt.Sprint(i), i)
		}

		// Execute
		scTable.Resize(2)

		// Check
		assert.Equal(t, 8, scTable.Size(), "all records kept")
		assert.True(t, utils.IsPrime(scTable.Capacity()), "capacity is prime")
		for i := 1; i <= 8; i++ {
			value, ok := scTable.Get(fmt.Sprint(i))
			assert.True(t, ok)
			assert.Equal(t, i, value)
		}
	})

	t.Run("keeps live records over many capacities", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(79, hashfunc.WeightedSumHash)
		for i := 1; i < 1000; i += 20 {
			scTable.Put(fmt.Sprint(i), i*42)
		}

		for capacity := 111; capacity < 1000; capacity += 117 {
			// Execute
			scTable.Resize(capacity)

			// Check
			assert.Truef(t, utils.IsPrime(scTable.Capacity()), "capacity %d is prime", scTable.Capacity())
			assert.GreaterOrEqual(t, scTable.Capacity(), capacity, "capacity at least requested")
			assert.Equal(t, 50, scTable.Size(), "size preserved")
			for i := 1; i < 1000; i += 20 {
				value, ok := scTable.Get(fmt.Sprint(i))
				assert.Truef(t, ok, "key %d found", i)
				assert.Equalf(t, i*42, value, "key %d has value", i)
			}
		}
	})
}

func TestSCTable_Clear(t *testing.T) {
	t.Run("clears records and keeps capacity", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(53, hashfunc.SumHash)
		scTable.Put("key1", 10)
		scTable.Put("key2", 20)
		scTable.Resize(100)

		// Execute
		scTable.Clear()

		// Check
		assert.Zero(t, scTable.Size(), "no records")
		assert.Equal(t, 101, scTable.Capacity(), "capacity unchanged")
		assert.Equal(t, 101, scTable.EmptyBuckets(), "all buckets empty")
		assert.False(t, scTable.ContainsKey("key1"), "key1 gone")
	})
}

func TestSCTable_KeysAndValues(t *testing.T) {
	t.Run("returns records in bucket order then chain order", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(7, hashfunc.SumHash)
		scTable.Put("a", 1)   // 97 % 7 = 6
		scTable.Put("b", 2)   // 98 % 7 = 0
		scTable.Put("abc", 3) // 294 % 7 = 0
		scTable.Put("c", 4)   // 99 % 7 = 1

		// Execute
		pairs := scTable.KeysAndValues()

		// Check
		expected := []kv.Pair[int]{
			{Key: "b", Value: 2},
			{Key: "abc", Value: 3},
			{Key: "c", Value: 4},
			{Key: "a", Value: 1},
		}
		assert.Equal(t, expected, pairs, "pairs in bucket and chain order")
	})

	t.Run("empty table returns an empty slice", func(t *testing.T) {
		pairs := newTestTable(7, nil).KeysAndValues()
		assert.NotNil(t, pairs)
		assert.Empty(t, pairs)
	})
}

func TestSCTable_Iterator(t *testing.T) {
	t.Run("iterates across buckets and chains", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(7, hashfunc.SumHash)
		scTable.Put("a", 1)
		scTable.Put("b", 2)
		scTable.Put("abc", 3)
		scTable.Put("c", 4)
		iter := scTable.Iterator()

		// Execute
		var pairs []kv.Pair[int]
		for iter.HasNext() {
			pair, err := iter.Next()
			require.NoError(t, err, "gets next pair")
			pairs = append(pairs, pair)
		}

		// Check
		assert.Equal(t, scTable.KeysAndValues(), pairs, "same order as KeysAndValues")

		_, err := iter.Next()
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "exhausted iterator returns NoRecordFound")
	})

	t.Run("reset rewinds to the first record", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)
		scTable.Put("abc", 1)
		scTable.Put("bca", 2)
		iter := scTable.Iterator()
		for iter.HasNext() {
			_, _ = iter.Next()
		}

		// Execute
		iter.Reset()

		// Check
		require.True(t, iter.HasNext(), "records available again")
		pair, err := iter.Next()
		require.NoError(t, err)
		assert.Equal(t, kv.Pair[int]{Key: "abc", Value: 1}, pair, "first record again")
	})

	t.Run("empty table has nothing to iterate", func(t *testing.T) {
		iter := newTestTable(11, nil).Iterator()
		assert.False(t, iter.HasNext())
		_, err := iter.Next()
		assert.Error(t, err)
	})
}

func TestSCTable_GetStorageParameters(t *testing.T) {
	t.Run("reports chain lengths", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(11, hashfunc.SumHash)
		scTable.Put("abc", 1)
		scTable.Put("bca", 2)
		scTable.Put("cab", 3)
		scTable.Put("a", 4) // 97 % 11 = 9

		// Execute
		params := scTable.GetStorageParameters(true)

		// Check
		assert.Equal(t, crt.SeparateChaining, params.CollisionResolutionTechnique)
		assert.Equal(t, 11, params.Capacity)
		assert.Equal(t, 4, params.Size)
		assert.Equal(t, 9, params.NumberOfEmptySlots)
		assert.Equal(t, 2, params.NumberOfOccupiedSlots)
		assert.Equal(t, 3, params.LongestRun)
		assert.Zero(t, params.NumberOfTombstones)
		require.Len(t, params.BucketDistribution, 11)
		assert.Equal(t, 3, params.BucketDistribution[8])
		assert.Equal(t, 1, params.BucketDistribution[9])
	})

	t.Run("distribution is left out unless asked for", func(t *testing.T) {
		assert.Nil(t, newTestTable(11, nil).GetStorageParameters(false).BucketDistribution)
	})
}

func TestSCTable_String(t *testing.T) {
	t.Run("dumps one line per bucket", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(3, hashfunc.SumHash)
		scTable.Put("a", 1) // 97 % 3 = 1
		scTable.Put("d", 2) // 100 % 3 = 1

		// Execute
		dump := scTable.String()

		// Check
		lines := strings.Split(strings.TrimSuffix(dump, "\n"), "\n")
		assert.Equal(t, []string{
			"0: SLL []",
			"1: SLL [a: 1 -> d: 2]",
			"2: SLL []",
		}, lines)
	})
}
