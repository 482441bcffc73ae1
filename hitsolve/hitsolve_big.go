package hitsolve

import "math/big"

// SolveX0Big is the arbitrary-precision analogue of SolveX0, used when the
// root prime p exceeds uint64 range — the case for random-prime search
// over large bit sizes, where root primes are checked up to sqrt(N) and N
// itself may be thousands of bits wide.
func SolveX0Big(p *big.Int, i int8, segY, vx *big.Int) (*big.Int, error) {
	six := big.NewInt(6)
	inv6 := new(big.Int).ModInverse(six, p)
	if inv6 == nil {
		return nil, ErrNoSolution
	}

	target := new(big.Int).Set(inv6)
	if i > 0 {
		target.Sub(p, inv6)
		target.Mod(target, p)
	}

	base := new(big.Int).Mul(segY, vx)
	base.Mod(base, p)

	x0 := new(big.Int).Sub(target, base)
	x0.Mod(x0, p)
	return x0, nil
}

// SolveY0Big is the arbitrary-precision analogue of SolveY0.
func SolveY0Big(p *big.Int, i int8, localX, vx *big.Int) (*big.Int, error) {
	six := big.NewInt(6)
	inv6 := new(big.Int).ModInverse(six, p)
	if inv6 == nil {
		return nil, ErrNoSolution
	}
	invVx := new(big.Int).ModInverse(vx, p)
	if invVx == nil {
		return nil, ErrNoSolution
	}

	target := new(big.Int).Set(inv6)
	if i > 0 {
		target.Sub(p, inv6)
		target.Mod(target, p)
	}

	remainder := new(big.Int).Sub(target, localX)
	remainder.Mod(remainder, p)

	y0 := new(big.Int).Mul(remainder, invVx)
	y0.Mod(y0, p)
	return y0, nil
}
