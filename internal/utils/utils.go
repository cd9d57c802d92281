package utils

// IsPrime - Returns true if n is a prime number, trial division by odd factors up to the square root
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest odd prime that is equal to or bigger than n.
// An even n is first incremented by one, hence 2 results in 3. Anything below 3 results in 3.
func NextPrime(n int) int {
	if n < 3 {
		return 3
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// NormalizeCapacity - Returns n if it already is a prime, otherwise the result of NextPrime(n).
// Used when resizing, where an explicitly requested prime (including 2) is kept as is.
func NormalizeCapacity(n int) int {
	if IsPrime(n) {
		return n
	}

	return NextPrime(n)
}
