package rangedriver

import (
	"github.com/izprime/izsieve/iz"
	"github.com/izprime/izsieve/oracle"
)

// boundaryCorrection applies spec §4.7's two-endpoint reconciliation: the
// segment grid's x-windows don't align exactly with the closed numeric
// interval [Zs, Ze] at the low and high ends, so up to two candidates just
// outside the interval need an explicit check-and-subtract.
func boundaryCorrection(zs, ze uint64, g rangeGeometry, tester oracle.Tester, mrRounds int) int64 {
	var delta int64
	if g.ys > 0 && zs%6 <= 1 {
		n := iz.IZ(g.xs, -1)
		if n < zs && tester.IsProbablePrime(n, mrRounds) {
			delta--
		}
	}
	if g.ye > 0 && ze%6 <= 1 {
		n := iz.IZ(g.xe, 1)
		if n > ze && tester.IsProbablePrime(n, mrRounds) {
			delta--
		}
	}
	return delta
}
