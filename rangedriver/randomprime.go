package rangedriver

import (
	"context"
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/izprime/izsieve/iz"
	"github.com/izprime/izsieve/oracle"
)

const randomSearchMRRounds = 25

// VXRandomPrime searches for a random probable prime of the given bit
// size on the x5 line (n ≡ -1 mod 6) by racing `cores` independent
// candidate generators and returning the first hit, cancelling the rest —
// the Go analogue of the original's multi-process race-then-terminate
// search (supplement C.3).
func VXRandomPrime(ctx context.Context, bitSize, cores int) (*big.Int, bool) {
	return raceRandomPrime(ctx, bitSize, cores, -1)
}

// VYRandomPrime is VXRandomPrime's x7-line (n ≡ +1 mod 6) counterpart.
func VYRandomPrime(ctx context.Context, bitSize, cores int) (*big.Int, bool) {
	return raceRandomPrime(ctx, bitSize, cores, 1)
}

func raceRandomPrime(ctx context.Context, bitSize, cores int, line int8) (*big.Int, bool) {
	if bitSize < 4 || cores < 1 {
		return nil, false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan *big.Int, cores)
	tester := oracle.NewBigIntTester()

	var wg sync.WaitGroup
	for i := 0; i < cores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				n, err := randomCandidate(bitSize, line)
				if err != nil {
					return
				}
				if !tester.IsProbablePrimeBig(n, randomSearchMRRounds) {
					continue
				}
				select {
				case results <- n:
					cancel()
				case <-ctx.Done():
				}
				return
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	n, ok := <-results
	return n, ok
}

// randomCandidate draws a uniform random bitSize-bit integer and shifts
// it onto the requested iZ line by adjusting its residue mod 6.
func randomCandidate(bitSize int, line int8) (*big.Int, error) {
	lo := new(big.Int).Lsh(big.NewInt(1), uint(bitSize-1))
	hi := new(big.Int).Lsh(big.NewInt(1), uint(bitSize))
	span := new(big.Int).Sub(hi, lo)

	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).Add(lo, r)

	target := int64(1)
	if line < 0 {
		target = 5
	}
	mod := new(big.Int).Mod(n, big.NewInt(6)).Int64()
	delta := target - mod
	if delta < 0 {
		delta += 6
	}
	n.Add(n, big.NewInt(delta))
	if n.BitLen() > bitSize {
		n.Sub(n, big.NewInt(6))
	}
	return n, nil
}

// maxNextPrimeSteps bounds iZNextPrime's linear walk so a pathological
// input can't hang the caller forever.
const maxNextPrimeSteps = 1_000_000

// IZNextPrime returns the next (forward=true) or previous (forward=false)
// probable prime relative to base, preserving the original's edge-case
// fast path (supplement C.1): when base sits on the line the requested
// direction would search next, base±2 is tried directly before falling
// back to the general walk across both iZ lines.
func IZNextPrime(base uint64, forward bool) (uint64, bool) {
	tester := oracle.NewBigIntTester()
	line := iz.LineOf(base)

	if forward && line == -1 {
		if c := base + 2; tester.IsProbablePrime(c, 25) {
			return c, true
		}
	}
	if !forward && line == 1 && base >= 2 {
		if c := base - 2; tester.IsProbablePrime(c, 25) {
			return c, true
		}
	}

	n := base
	for i := 0; i < maxNextPrimeSteps; i++ {
		if forward {
			n++
		} else {
			if n == 0 {
				return 0, false
			}
			n--
		}
		if n < 5 || iz.LineOf(n) == 0 {
			continue
		}
		if tester.IsProbablePrime(n, 25) {
			return n, true
		}
	}
	return 0, false
}
