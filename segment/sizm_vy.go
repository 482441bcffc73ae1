package segment

import (
	"github.com/izprime/izsieve/bitmap"
	"github.com/izprime/izsieve/classic"
	"github.com/izprime/izsieve/hitsolve"
	"github.com/izprime/izsieve/intarray"
	"github.com/izprime/izsieve/iz"
	"github.com/izprime/izsieve/oracle"
	"github.com/izprime/izsieve/rootprime"
)

// SiZmVY returns every prime <= n via the vertical segmented Sieve-iZm:
// each local x in [2, vx] coprime to vx becomes a column of height
// vy=floor(x_n/vx), swept top-to-bottom with solve_y0 instead of
// solve_x0. Output is unordered (spec §4.6) — the returned array's
// Ordered flag is left false.
func SiZmVY(n uint64, tester oracle.Tester, mrRounds int) (*intarray.Array[uint64], error) {
	if n <= 10 || n > classic.MaxLimit {
		return nil, classic.ErrInvalidLimit
	}
	if n < 10000 {
		return classic.SiZ(n)
	}
	if mrRounds < 5 {
		mrRounds = 5
	} else if mrRounds > 50 {
		mrRounds = 50
	}
	if tester == nil {
		tester = oracle.NewBigIntTester()
	}

	rootLimit := isqrt(n) + 1
	rootPrimes := rootprime.Primes(rootLimit)

	// k indexes the first root prime not folded into vx; vx starts at
	// 35=5*7 and is scaled up for very large n, matching the original's
	// fixed-constant choice for this traversal order (distinct from the
	// L2-cache-aware vx the horizontal variant uses).
	k := 4
	vx := uint64(35)
	if n >= 1_000_000_000 {
		vx *= 11
		k++
	}
	if n >= 100_000_000_000 {
		vx *= 13
		k++
	}

	xN := n/6 + 1
	vy := xN / vx
	isLarge := rootLimit > vy

	primes := intarray.New[uint64](estimateCapacity(n))
	primes.Push(2)
	primes.Push(3)
	for _, p := range rootPrimes[2:k] {
		primes.Push(p)
	}

	sieve := bitmap.New(vy+8, true)

	for x := uint64(2); x <= vx; x++ {
		if gcdU64(iz.IZ(x, -1), vx) == 1 {
			sweepColumn(sieve, rootPrimes[k:], -1, x, vx, vy, n, isLarge, mrRounds, tester, primes)
		}
		if gcdU64(iz.IZ(x, 1), vx) == 1 {
			sweepColumn(sieve, rootPrimes[k:], 1, x, vx, vy, n, isLarge, mrRounds, tester, primes)
		}
	}

	primes.ResizeToFit()
	primes.Ordered = false
	return primes, nil
}

// sweepColumn resets sieve, marks composites of each root prime via
// solve_y0, then emits every surviving y as a candidate (probabilistically
// tested when isLarge), including the partial last row y=vy if its value
// doesn't exceed n.
func sweepColumn(sieve *bitmap.Bitmap, rootPrimes []uint64, line int8, x, vx, vy, n uint64, isLarge bool, mrRounds int, tester oracle.Tester, primes *intarray.Array[uint64]) {
	sieve.SetAll()
	for _, p := range rootPrimes {
		y0, err := hitsolve.SolveY0(p, line, x, vx)
		if err != nil {
			continue
		}
		if iz.IZ(y0*vx+x, line) == p {
			y0 += p
		}
		sieve.ClearSteps(p, y0, vy)
	}

	emit := func(y uint64) {
		v := iz.IZ(y*vx+x, line)
		if v > n {
			return
		}
		if isLarge {
			if tester.IsProbablePrime(v, mrRounds) {
				primes.Push(v)
			}
			return
		}
		primes.Push(v)
	}

	for y := uint64(0); y < vy; y++ {
		if sieve.Get(y) {
			emit(y)
		}
	}
	if sieve.Get(vy) {
		emit(vy)
	}
}

func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
