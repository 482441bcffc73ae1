// Package iz implements the iZ index-space coordinate mapping and wheel
// ("VX base") construction (spec §4.3): integers of the form n=6x±1,
// represented by an index x and a line i ∈ {-1,+1}.
package iz

import "math/big"

// IZ returns n = 6x + i for i ∈ {-1, +1}.
func IZ(x uint64, i int8) uint64 {
	return 6*x + uint64(int64(i))
}

// IZBig is the arbitrary-precision variant of IZ, used when x may exceed
// 64 bits (spec §4.3's GMP-backed variant).
func IZBig(x *big.Int, i int8) *big.Int {
	n := new(big.Int).Mul(x, big.NewInt(6))
	return n.Add(n, big.NewInt(int64(i)))
}

// LineOf returns the line (-1 or +1) n belongs to under the iZ mapping.
// n must be coprime to 6 (n mod 6 ∈ {1, 5}).
func LineOf(n uint64) int8 {
	switch n % 6 {
	case 5:
		return -1
	case 1:
		return 1
	default:
		return 0
	}
}

// XForLine returns the x-index such that IZ(x, i) == n, given n already
// lies on line i (n%6 == 5 for i=-1, n%6 == 1 for i=+1).
func XForLine(n uint64, i int8) uint64 {
	if i < 0 {
		return (n + 1) / 6
	}
	return (n - 1) / 6
}
