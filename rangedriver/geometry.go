package rangedriver

import (
	"math"

	"github.com/izprime/izsieve/iz"
)

// rangeGeometry is the decomposition of an input interval [Zs, Ze] onto
// the iZ segment grid at wheel width vx (spec §4.7): Xs/Xe bound the
// interval in x-index space, Ys/Ye are the segment rows those x-indices
// fall in.
type rangeGeometry struct {
	vx     uint64
	m      *iz.IZM
	xs, xe uint64
	ys, ye uint64
}

func decompose(zs, ze uint64) rangeGeometry {
	vx := iz.ComputeL2VX(ze, iz.DefaultL2CacheBits)
	m := iz.New(vx)
	xs := zs / 6
	xe := ze/6 + 1
	return rangeGeometry{
		vx: vx,
		m:  m,
		xs: xs,
		xe: xe,
		ys: xs / vx,
		ye: xe / vx,
	}
}

// rowBounds gives row y's local x window. The general case is the full
// segment, [1, vx]; the first row is narrowed to Xs mod vx only when Ys>0
// (row 0 always starts the range at x=1, so it needs no narrowing — this
// is spec §4.7's "full segmented sieve for the first segment" case falling
// out of the same rule rather than a separate branch). The last row is
// narrowed to Xe mod vx.
func rowBounds(g rangeGeometry, y uint64) (startX, endX uint64) {
	startX, endX = 1, g.vx
	if y == g.ys && g.ys > 0 {
		startX = g.xs % g.vx
		if startX == 0 {
			startX = 1
		}
	}
	if y == g.ye {
		endX = g.xe % g.vx
		if endX == 0 {
			endX = g.vx
		}
	}
	return startX, endX
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
