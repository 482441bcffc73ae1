package iz

// primeIter yields successive odd primes starting at 5 via trial division.
// Used to build wheel constants (VX5, VX6) and compute_max_vx/compute_l2_vx
// bounds without needing a pre-sized lookup table.
type primeIter struct {
	last uint64
}

func newPrimeIter() *primeIter {
	return &primeIter{last: 3}
}

func (it *primeIter) next() uint64 {
	candidate := it.last + 2
	for !trialIsPrime(candidate) {
		candidate += 2
	}
	it.last = candidate
	return candidate
}

// trialIsPrime reports primality by trial division up to sqrt(n). n is
// assumed odd and > 1.
func trialIsPrime(n uint64) bool {
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// SmallPrimes returns the first count primes starting at 5.
func SmallPrimes(count int) []uint64 {
	it := newPrimeIter()
	out := make([]uint64, count)
	for i := range out {
		out[i] = it.next()
	}
	return out
}
