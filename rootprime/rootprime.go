// Package rootprime generates the ordered list of primes up to a bound
// via a direct sieve of Eratosthenes over iZ index space (spec §4.5).
// It exists to bootstrap the root-prime lists the segment engine needs
// before any wheel or segment marking can happen — there is no
// pre-existing prime list to seed it with, so it sieves candidates
// against themselves.
package rootprime

import (
	"github.com/izprime/izsieve/bitmap"
	"github.com/izprime/izsieve/iz"
)

// Primes returns every prime p <= limit, ascending, including 2 and 3.
func Primes(limit uint64) []uint64 {
	var results []uint64
	if limit >= 2 {
		results = append(results, 2)
	}
	if limit >= 3 {
		results = append(results, 3)
	}
	if limit < 5 {
		return results
	}

	maxX := limit/6 + 1
	x5 := bitmap.New(maxX+1, true)
	x7 := bitmap.New(maxX+1, true)
	x5.Clear(0)
	x7.Clear(0)

	for x := uint64(1); x <= maxX; x++ {
		if x5.Get(x) {
			n := iz.IZ(x, -1)
			if n <= limit {
				results = append(results, n)
				if n <= limit/n {
					iz.MarkComposites(x5, x7, n, limit)
				}
			}
		}
		if x7.Get(x) {
			n := iz.IZ(x, 1)
			if n <= limit {
				results = append(results, n)
				if n <= limit/n {
					iz.MarkComposites(x5, x7, n, limit)
				}
			}
		}
	}
	return results
}
