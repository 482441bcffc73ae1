package rangedriver

import (
	"github.com/izprime/izsieve/classic"
	"github.com/izprime/izsieve/intarray"
	"github.com/izprime/izsieve/oracle"
	"github.com/izprime/izsieve/segment"
)

// SiZm returns every prime <= n via the horizontal segmented engine, using
// default Miller-Rabin strength — the plain single-argument public surface
// spec §6 names (SiZm(n)); the tester and round-count knobs segment.SiZm
// exposes are defaulted here rather than surfaced to this entrypoint.
func SiZm(n uint64) (*intarray.Array[uint64], bool) {
	return wrap(segment.SiZm(n, oracle.NewBigIntTester(), segment.DefaultMRRounds))
}

// SiZmVY is SiZm's vertical-traversal counterpart; its output is
// unordered (spec §6).
func SiZmVY(n uint64) (*intarray.Array[uint64], bool) {
	return wrap(segment.SiZmVY(n, oracle.NewBigIntTester(), segment.DefaultMRRounds))
}

// SoE, SSoE, SoEu, SoS, SoA, and SiZ mirror classic/'s functions under the
// same "absent on failure" surface as SiZm/SiZmVY, so every name spec §6
// lists is reachable from one package.
func SoE(n uint64) (*intarray.Array[uint64], bool)  { return wrap(classic.SoE(n)) }
func SSoE(n uint64) (*intarray.Array[uint64], bool) { return wrap(classic.SSoE(n)) }
func SoEu(n uint64) (*intarray.Array[uint64], bool) { return wrap(classic.SoEu(n)) }
func SoS(n uint64) (*intarray.Array[uint64], bool)  { return wrap(classic.SoS(n)) }
func SoA(n uint64) (*intarray.Array[uint64], bool)  { return wrap(classic.SoA(n)) }
func SiZ(n uint64) (*intarray.Array[uint64], bool)  { return wrap(classic.SiZ(n)) }

func wrap(a *intarray.Array[uint64], err error) (*intarray.Array[uint64], bool) {
	if err != nil {
		return nil, false
	}
	return a, true
}
