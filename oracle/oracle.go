// Package oracle provides the arbitrary-precision probable-primality
// collaborator the segmented sieve engine calls into once deterministic
// root-prime marking is no longer sufficient (spec §4.7, §7
// OracleFailure). The core sieve never implements big-integer primality
// itself — it depends on this narrow interface instead.
package oracle

import "math/big"

// Tester answers "is n probably prime" using rounds of Miller-Rabin,
// matching spec's mr_rounds knob (clamped to [5,50] upstream).
type Tester interface {
	IsProbablePrime(n uint64, rounds int) bool
	IsProbablePrimeBig(n *big.Int, rounds int) bool
}

// BigIntTester is the default Tester, backed by math/big's
// Miller-Rabin/Baillie-PSW probable-prime test.
type BigIntTester struct{}

// NewBigIntTester returns the standard-library-backed Tester.
func NewBigIntTester() *BigIntTester { return &BigIntTester{} }

func (BigIntTester) IsProbablePrime(n uint64, rounds int) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(rounds)
}

func (BigIntTester) IsProbablePrimeBig(n *big.Int, rounds int) bool {
	return n.ProbablyPrime(rounds)
}
