package primehashmap

import (
	"fmt"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/logger"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/storage/openaddressing"
	"github.com/gostonefire/primehashmap/internal/storage/separatechaining"
	"github.com/gostonefire/primehashmap/kv"
	"log/slog"
)

// Storage - Interface for any collision resolution technique implementation
type Storage[V any] interface {
	Put(key string, value V)
	Get(key string) (value V, ok bool)
	ContainsKey(key string) bool
	Remove(key string)
	Resize(newCapacity int)
	Clear()
	Size() int
	Capacity() int
	LoadFactor() float64
	EmptyBuckets() int
	KeysAndValues() []kv.Pair[V]
	Iterator() kv.Iterator[V]
	GetStorageParameters(includeDistribution bool) (params model.StorageParameters)
	String() string
}

// Conf - Configuration to pass to NewHashMap
//   - CollisionResolutionTechnique is one of crt.QuadraticProbing or crt.SeparateChaining
//   - Capacity is the requested initial capacity, it must be at least 1 and is rounded up to the next odd prime
//   - HashFunction is an optional hash function, hashfunc.SumHash is used if nil
//   - Logger is an optional logger receiving resize events at debug level, nothing is logged if nil
type Conf struct {
	CollisionResolutionTechnique int
	Capacity                     int
	HashFunction                 hashfunc.HashFunction
	Logger                       *slog.Logger
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of live records stored
//   - EmptyBuckets is the number of buckets (or slots) without a live record and without a tombstone
//   - OccupiedBuckets is the number of buckets (or slots) holding at least one live record
//   - Tombstones is the number of slots holding a removed record, always 0 for separate chaining
//   - LongestRun is the longest chain for separate chaining and the longest stretch of consecutive
//     non-empty slots for quadratic probing
//   - BucketDistribution is the number of records stored in each bucket, only set if asked for
type HashMapStat struct {
	Records            int
	EmptyBuckets       int
	OccupiedBuckets    int
	Tombstones         int
	LongestRun         int
	BucketDistribution []int
}

// HashMap - The main implementation struct
type HashMap[V any] struct {
	storage   Storage[V]
	technique int
}

// NewHashMap - Returns a new hash map using the collision resolution technique given in conf.
//   - conf is a Conf struct with the configuration, see Conf for details
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is of type crt.UnknownTechnique or crt.InvalidCapacity if conf is not valid
func NewHashMap[V any](conf Conf) (hashMap *HashMap[V], err error) {
	// Check if capacity is valid
	if conf.Capacity < 1 {
		err = fmt.Errorf("error creating hash map: %w", crt.InvalidCapacity{Capacity: conf.Capacity})
		return
	}

	if conf.Logger == nil {
		conf.Logger = logger.VoidLogger()
	}

	crtConf := model.CRTConf{
		Capacity:     conf.Capacity,
		HashFunction: conf.HashFunction,
		Logger:       conf.Logger,
	}

	var storage Storage[V]
	switch conf.CollisionResolutionTechnique {
	case crt.QuadraticProbing:
		storage = openaddressing.NewQPTable[V](crtConf)
	case crt.SeparateChaining:
		storage = separatechaining.NewSCTable[V](crtConf)
	default:
		err = fmt.Errorf("error creating hash map: %w", crt.UnknownTechnique{Technique: conf.CollisionResolutionTechnique})
		return
	}

	hashMap = &HashMap[V]{
		storage:   storage,
		technique: conf.CollisionResolutionTechnique,
	}

	return
}

// Technique - Returns the collision resolution technique in use, one of crt.QuadraticProbing or crt.SeparateChaining
func (H *HashMap[V]) Technique() int {
	return H.technique
}
