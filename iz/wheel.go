package iz

import (
	"math/big"

	"github.com/izprime/izsieve/bitmap"
)

// VX5 and VX6 are the two fixed wheel widths the range driver selects
// between for random-prime search (spec §4.3, §4.9): the primorial-style
// product of the first 5 and first 6 small primes starting at 5.
const (
	VX5 = 5 * 7 * 11 * 13 * 17         // 85085
	VX6 = 5 * 7 * 11 * 13 * 17 * 19    // 1616615
)

// DefaultL2CacheBits is the bit-length budget compute_l2_vx targets when
// the caller has no platform-specific L2 cache size available. Go's
// standard library and golang.org/x/sys/cpu expose no portable cache-size
// query, so this is a conservative default (256 KiB) rather than a probed
// value; callers that know their platform's L2 size should pass it
// explicitly.
const DefaultL2CacheBits = 256 * 1024 * 8

// ComputeVXK returns the product of the first k small primes starting at
// 5 (e.g. ComputeVXK(5) == VX5).
func ComputeVXK(k int) *big.Int {
	it := newPrimeIter()
	vx := big.NewInt(1)
	for i := 0; i < k; i++ {
		vx.Mul(vx, new(big.Int).SetUint64(it.next()))
	}
	return vx
}

// ComputeL2VX returns the largest primorial-style wheel width whose
// bit-length is <= min(l2CacheBits, bitlen(n/6)). It starts at 35 (5*7)
// and multiplies in successive small primes while the product stays
// within bound; the result is never smaller than 35.
func ComputeL2VX(n uint64, l2CacheBits int) uint64 {
	nBound := bitLen64(n / 6)
	bound := l2CacheBits
	if nBound < bound {
		bound = nBound
	}

	vx := uint64(35)
	if bitLen64(vx) > bound {
		return 35
	}

	it := newPrimeIter()
	it.last = 7 // next() will yield 11
	for {
		next := it.next()
		candidate := vx * next
		if bitLen64(candidate) > bound {
			return vx
		}
		vx = candidate
	}
}

// ComputeMaxVX returns the largest primorial-style wheel width whose
// bit-length is strictly less than bitSize, by repeatedly multiplying in
// small primes starting at 5 until the product would overshoot bitSize,
// then stepping back one prime (spec's "overshoot then divide back one
// step" construction, supplemented from the original's compute_max_vx).
func ComputeMaxVX(bitSize int) *big.Int {
	if bitSize <= 3 {
		return big.NewInt(1)
	}
	it := newPrimeIter()
	vx := big.NewInt(1)
	for {
		p := it.next()
		candidate := new(big.Int).Mul(vx, new(big.Int).SetUint64(p))
		if candidate.BitLen() >= bitSize {
			return vx
		}
		vx = candidate
	}
}

func bitLen64(n uint64) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}
	return bits
}

// BuildVXBase constructs the pair of pre-sieved wheel bitmaps for wheel
// width vx (spec §4.3): x5 (line 6x-1) and x7 (line 6x+1), each of length
// vx+1, with bit 0 always cleared (x=0 is not a candidate) and every bit
// at an x whose iZ(x, ±1) shares a factor with 6*vx also cleared. kvx is
// the count of small primes dividing vx.
func BuildVXBase(vx uint64) (x5, x7 *bitmap.Bitmap, kvx int) {
	x5 = bitmap.New(vx+1, true)
	x7 = bitmap.New(vx+1, true)
	x5.Clear(0)
	x7.Clear(0)

	it := newPrimeIter()
	mod := 6 * vx
	for p := it.next(); p <= vx; p = it.next() {
		if vx%p == 0 {
			kvx++
		}
	}

	for x := uint64(1); x <= vx; x++ {
		n5 := IZ(x, -1)
		n7 := IZ(x, 1)
		if gcdU64(n5, mod) != 1 {
			x5.Clear(x)
		}
		if gcdU64(n7, mod) != 1 {
			x7.Clear(x)
		}
	}
	return x5, x7, kvx
}

func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
