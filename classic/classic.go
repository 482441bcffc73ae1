// Package classic implements the textbook sieve algorithms the range
// driver sits alongside for comparison and small-n use: Sieve of
// Eratosthenes (plain and segmented), Sieve of Euler, Sieve of Sundaram,
// Sieve of Atkin, and the non-segmented Sieve-iZ. These share the bitmap
// primitive with the production segmented engine in segment/ but are
// intentionally simple, single-threaded, and un-cached — spec treats them
// as "straightforward, not the hard engineering."
package classic

import (
	"fmt"
	"math"

	"github.com/izprime/izsieve/bitmap"
	"github.com/izprime/izsieve/intarray"
)

// MaxLimit is the largest n any entry point in this package accepts.
const MaxLimit = 1_000_000_000_000

// ErrInvalidLimit is returned when n is outside (10, MaxLimit].
var ErrInvalidLimit = fmt.Errorf("classic: n must satisfy 10 < n <= %d", MaxLimit)

func checkLimit(n uint64) error {
	if n <= 10 || n > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

// estimateCapacity over-provisions the output array by 40% over the
// prime-counting-function approximation n/ln(n), to avoid reallocations
// during collection.
func estimateCapacity(n uint64) int {
	est := float64(n) / math.Log(float64(n))
	return int(est*1.4) + 16
}

// SoE returns every prime <= n via the classic odd-only Sieve of
// Eratosthenes.
func SoE(n uint64) (*intarray.Array[uint64], error) {
	if err := checkLimit(n); err != nil {
		return nil, err
	}
	primes := intarray.New[uint64](estimateCapacity(n))
	sieve := bitmap.New(n+1, true)
	processOddBitmap(primes, sieve, n)
	primes.ResizeToFit()
	return primes, nil
}

// processOddBitmap collects 2, then every odd i <= n still set in sieve,
// clearing composites of i starting at i*i whenever i <= sqrt(n).
func processOddBitmap(primes *intarray.Array[uint64], sieve *bitmap.Bitmap, n uint64) {
	primes.Push(2)
	nSqrt := isqrt(n)
	for i := uint64(3); i <= n; i += 2 {
		if sieve.Get(i) {
			primes.Push(i)
			if i <= nSqrt {
				sieve.ClearSteps(2*i, i*i, n)
			}
		}
	}
}

// SoEu returns every prime <= n via the Sieve of Euler, which marks each
// composite exactly once.
func SoEu(n uint64) (*intarray.Array[uint64], error) {
	if err := checkLimit(n); err != nil {
		return nil, err
	}
	primes := intarray.New[uint64](estimateCapacity(n))
	sieve := bitmap.New(n+1, true)
	primes.Push(2)

	for i := uint64(3); i <= n; i += 2 {
		if sieve.Get(i) {
			primes.Push(i)
		}
		for j := 1; j < primes.Count; j++ {
			p := primes.Data[j]
			if p*i > n {
				break
			}
			sieve.Clear(p * i)
			if i%p == 0 {
				break
			}
		}
	}

	primes.ResizeToFit()
	return primes, nil
}

// SoS returns every prime <= n via the Sieve of Sundaram.
func SoS(n uint64) (*intarray.Array[uint64], error) {
	if err := checkLimit(n); err != nil {
		return nil, err
	}
	k := (n-1)/2 + 1
	primes := intarray.New[uint64](estimateCapacity(n))
	primes.Push(2)

	sieve := bitmap.New(k+8, true)
	nSqrt := isqrt(n) + 1

	for i := uint64(1); i < k; i++ {
		if sieve.Get(i) {
			p := 2*i + 1
			primes.Push(p)
			if p < nSqrt {
				// first composite mark: xp = p*i + i, corresponding to p^2
				// in the odd-numbered set.
				xp := p*i + i
				sieve.ClearSteps(p, xp, k)
			}
		}
	}

	primes.ResizeToFit()
	return primes, nil
}

// SoA returns every prime <= n via the Sieve of Atkin.
func SoA(n uint64) (*intarray.Array[uint64], error) {
	if err := checkLimit(n); err != nil {
		return nil, err
	}
	primes := intarray.New[uint64](estimateCapacity(n))
	sieve := bitmap.New(n+1, false)
	primes.Push(2)
	primes.Push(3)

	for x := uint64(1); 4*x*x < n; x++ {
		a := 4 * x * x
		for y := uint64(1); a+y*y <= n; y++ {
			b := a + y*y
			if b%12 == 1 || b%12 == 5 {
				sieve.Flip(b)
			}
		}
	}

	for x := uint64(1); 3*x*x < n; x++ {
		a := 3 * x * x
		for y := uint64(1); a+y*y <= n; y++ {
			b := a + y*y
			if b%12 == 7 {
				sieve.Flip(b)
			}
		}
	}

	for x := uint64(1); 2*x*x < n; x++ {
		a := 3 * x * x
		for y := x - 1; y > 0; y-- {
			b := a - y*y
			if b > n {
				break
			}
			if b%12 == 11 {
				sieve.Flip(b)
			}
		}
	}

	nSqrt := isqrt(n)
	for p := uint64(5); p <= nSqrt; p += 2 {
		if sieve.Get(p) {
			sieve.ClearSteps(2*p*p, p*p, n)
		}
	}

	for p := uint64(5); p <= n; p += 2 {
		if sieve.Get(p) {
			primes.Push(p)
		}
	}

	primes.ResizeToFit()
	return primes, nil
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
