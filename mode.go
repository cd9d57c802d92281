package primehashmap

import (
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/storage/separatechaining"
)

// FindMode - Returns the most frequent strings in values together with their number of occurrences.
// All values sharing the highest count are returned, in no particular order. An empty input gives an
// empty mode and a frequency of 0.
func FindMode(values []string) (mode []string, frequency int) {
	mode = []string{}

	counts := separatechaining.NewSCTable[int](model.CRTConf{Capacity: len(values)})

	for _, value := range values {
		n, _ := counts.Get(value)
		counts.Put(value, n+1)
	}

	pairs := counts.KeysAndValues()
	for _, pair := range pairs {
		frequency = max(frequency, pair.Value)
	}

	for _, pair := range pairs {
		if pair.Value == frequency {
			mode = append(mode, pair.Key)
		}
	}

	return
}
