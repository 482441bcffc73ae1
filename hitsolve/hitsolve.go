// Package hitsolve computes the first composite index a root prime marks
// within a segment, by solving 6x+i ≡ 0 (mod p) for the unknown (spec
// §4.4). Two traversal orders need two unknowns solved for: horizontal
// (SolveX0, scanning x within a fixed segment) and vertical (SolveY0,
// scanning segments for a fixed local x).
package hitsolve

import (
	"errors"
	"math/big"
)

// ErrNoSolution is returned when the modular equation has no solution,
// i.e. the modulus shares a factor with the coefficient being inverted.
// For a root prime p (always >= 5) this only happens for SolveY0 when p
// divides the wheel width vx — a case the wheel construction already
// excludes those composites from, so the caller should simply skip p for
// that segment rather than treat this as an error.
var ErrNoSolution = errors.New("hitsolve: no modular solution (moduli not coprime)")

// SolveX0 returns the local x-index (0 <= x0 < p, clamp to the segment by
// the caller) of the first multiple of p on line i within segment segY of
// width vx: the least x with 6*(segY*vx+x)+i ≡ 0 (mod p).
func SolveX0(p uint64, i int8, segY, vx uint64) (uint64, error) {
	inv6, ok := modInverse(6%p, p)
	if !ok {
		return 0, ErrNoSolution
	}
	target := solveTarget(p, i, inv6)
	base := mulMod(segY%p, vx%p, p)
	return subMod(target, base, p), nil
}

// SolveY0 returns the segment index y0 (0 <= y0 < p) of the first segment
// of width vx whose local index localX is hit by a multiple of p on line
// i: the least y with 6*(y*vx+localX)+i ≡ 0 (mod p). Returns ErrNoSolution
// when gcd(vx, p) != 1.
func SolveY0(p uint64, i int8, localX, vx uint64) (uint64, error) {
	inv6, ok := modInverse(6%p, p)
	if !ok {
		return 0, ErrNoSolution
	}
	invVx, ok := modInverse(vx%p, p)
	if !ok {
		return 0, ErrNoSolution
	}
	target := solveTarget(p, i, inv6)
	remainder := subMod(target, localX%p, p)
	return mulMod(remainder, invVx, p), nil
}

// solveTarget returns the x (mod p) solving 6x+i ≡ 0 (mod p), given inv6 =
// 6^-1 (mod p).
func solveTarget(p uint64, i int8, inv6 uint64) uint64 {
	if i < 0 {
		return inv6 % p
	}
	return (p - inv6%p) % p
}

func mulMod(a, b, m uint64) uint64 {
	// m is always a prime well within uint64 range for the root-prime
	// case (otherwise SolveX0Big is used), so a*b cannot overflow for any
	// p this package is actually called with; guard via big.Int only if
	// that assumption is ever violated.
	hi, lo := bitsMulU64(a, b)
	if hi == 0 {
		return lo % m
	}
	return new(big.Int).Mod(
		new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)),
		new(big.Int).SetUint64(m),
	).Uint64()
}

func bitsMulU64(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32
	t := aLo * bLo
	w0 := t & mask32
	k := t >> 32
	t = aHi*bLo + k
	w1 := t & mask32
	w2 := t >> 32
	t = aLo*bHi + w1
	k = t >> 32
	lo = (t << 32) | w0
	hi = aHi*bHi + w2 + k
	return hi, lo
}

func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return (a - b) % m
	}
	return m - (b-a)%m
}

// modInverse returns a^-1 (mod m) via the extended Euclidean algorithm.
// ok is false when gcd(a, m) != 1.
func modInverse(a, m uint64) (inv uint64, ok bool) {
	if m == 0 {
		return 0, false
	}
	g, x, _ := extendedGCD(int64(a%m), int64(m))
	if g != 1 {
		return 0, false
	}
	r := x % int64(m)
	if r < 0 {
		r += int64(m)
	}
	return uint64(r), true
}

func extendedGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extendedGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}
