package crt

// QuadraticProbing - Open addressing where slot home+j*j (mod capacity) is probed for j = 0, 1, 2...
// Removed records are kept as tombstones so that probe sequences of other keys stay intact.
const QuadraticProbing int = 1

// SeparateChaining - Every bucket holds a singly linked chain of records hashing to the same index.
const SeparateChaining int = 2

// QuadraticProbingMaxLoad - Load factor at (or above) which a quadratic probing table doubles before insert
const QuadraticProbingMaxLoad float64 = 0.5

// SeparateChainingMaxLoad - Load factor at (or above) which a separate chaining table doubles before insert
const SeparateChainingMaxLoad float64 = 1.0

// Name - Returns a human readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case QuadraticProbing:
		return "QuadraticProbing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}

// MaxLoad - Returns the load factor threshold that triggers growth for the given technique
func MaxLoad(technique int) float64 {
	if technique == SeparateChaining {
		return SeparateChainingMaxLoad
	}
	return QuadraticProbingMaxLoad
}
