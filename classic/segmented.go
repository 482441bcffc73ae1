package classic

import (
	"github.com/izprime/izsieve/bitmap"
	"github.com/izprime/izsieve/intarray"
)

// SSoE returns every prime <= n via the Segmented Sieve of Eratosthenes:
// root primes up to sqrt(n) are collected from a first pass, then each
// subsequent segment of width sqrt(n) is sieved against them.
func SSoE(n uint64) (*intarray.Array[uint64], error) {
	if err := checkLimit(n); err != nil {
		return nil, err
	}
	primes := intarray.New[uint64](estimateCapacity(n))

	segmentSize := isqrt(n)
	sieve := bitmap.New(segmentSize+8, true)
	processOddBitmap(primes, sieve, segmentSize)

	low := segmentSize + 1
	high := low + segmentSize - 1

	for low <= n {
		sieve.SetAll()
		rootLimit := isqrt(high)

		for i := 1; i < primes.Count; i++ { // skip 2
			p := primes.Data[i]
			if p > rootLimit {
				break
			}
			start := (low / p) * p
			if start < low {
				start += p
			}
			if start%2 == 0 {
				start += p
			}
			if start < p*p {
				start = p * p
			}
			sieve.ClearSteps(2*p, start-low, high-low)
		}

		i := low
		if i%2 == 0 {
			i++
		}
		for ; i <= high; i += 2 {
			if sieve.Get(i - low) {
				primes.Push(i)
			}
		}

		low += segmentSize
		high += segmentSize
		if high > n {
			high = n
		}
	}

	primes.ResizeToFit()
	return primes, nil
}
