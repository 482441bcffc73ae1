package segment

import (
	"math"

	"github.com/izprime/izsieve/classic"
	"github.com/izprime/izsieve/intarray"
	"github.com/izprime/izsieve/iz"
	"github.com/izprime/izsieve/oracle"
	"github.com/izprime/izsieve/rootprime"
)

// DefaultMRRounds is the Miller-Rabin round count used when probabilistic
// cleanup is needed and the caller hasn't overridden it, clamped to
// [5,50] per spec §4.7.
const DefaultMRRounds = 25

// SiZm returns every prime <= n via the horizontal segmented Sieve-iZm:
// VX-sized segments cloned from a shared wheel base, marked against root
// primes, with Miller-Rabin cleanup where deterministic marking alone is
// insufficient (spec §4.6). Sub-10^4 inputs delegate to the full iZ
// sieve, which isn't worth segmenting.
func SiZm(n uint64, tester oracle.Tester, mrRounds int) (*intarray.Array[uint64], error) {
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

	vx := iz.ComputeL2VX(n, iz.DefaultL2CacheBits)
	m := iz.New(vx)

	rootLimit := isqrt(n) + 1
	rootPrimes := rootprime.Primes(rootLimit)

	primes := intarray.New[uint64](estimateCapacity(n))
	primes.Push(2)
	primes.Push(3)
	for _, p := range iz.SmallPrimes(m.KVX) {
		primes.Push(p)
	}
	skipRootPrimes := 2 + m.KVX

	xN := n/6 + 1
	for y := uint64(0); y*vx < xN; y++ {
		startX := uint64(1)
		endX := vx
		if (y+1)*vx > xN {
			endX = xN - y*vx
		}
		if endX < startX {
			break
		}

		seg := NewVXSegment(m, y, startX, endX, mrRounds)
		seg.Mark(rootPrimes, skipRootPrimes)
		seg.Collect(tester, func(p uint64) { primes.Push(p) })
		seg.Free()
	}

	for primes.Count > 0 && primes.Data[primes.Count-1] > n {
		primes.Pop()
	}
	primes.ResizeToFit()
	return primes, nil
}

func estimateCapacity(n uint64) int {
	est := float64(n) / math.Log(float64(n))
	return int(est*1.4) + 16
}
