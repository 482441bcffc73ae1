package classic

import (
	"github.com/izprime/izsieve/bitmap"
	"github.com/izprime/izsieve/intarray"
	"github.com/izprime/izsieve/iz"
)

// SiZ returns every prime <= n via the non-segmented Sieve-iZ: candidates
// of the form 6x-1 and 6x+1 are tracked in two bitmaps and sieved against
// each other directly, without any wheel base or segmentation.
func SiZ(n uint64) (*intarray.Array[uint64], error) {
	if err := checkLimit(n); err != nil {
		return nil, err
	}
	primes := intarray.New[uint64](estimateCapacity(n))
	primes.Push(2)
	primes.Push(3)

	xN := n/6 + 1
	x5 := bitmap.New(xN+1, true)
	x7 := bitmap.New(xN+1, true)
	x5.Clear(0)
	x7.Clear(0)

	processIZBitmaps(primes, x5, x7, xN, n)

	for primes.Count > 0 && primes.Data[primes.Count-1] > n {
		primes.Pop()
	}
	primes.ResizeToFit()
	return primes, nil
}

// processIZBitmaps collects every candidate still set on either line up
// to xLimit as prime, self-sieving composites as it goes (there is no
// pre-existing root-prime list to seed from yet).
func processIZBitmaps(primes *intarray.Array[uint64], x5, x7 *bitmap.Bitmap, xLimit, n uint64) {
	maxN := iz.IZ(xLimit, 1)
	for x := uint64(1); x <= xLimit; x++ {
		if x5.Get(x) {
			v := iz.IZ(x, -1)
			primes.Push(v)
			if v <= maxN/v {
				iz.MarkComposites(x5, x7, v, maxN)
			}
		}
		if x7.Get(x) {
			v := iz.IZ(x, 1)
			primes.Push(v)
			if v <= maxN/v {
				iz.MarkComposites(x5, x7, v, maxN)
			}
		}
	}
}
