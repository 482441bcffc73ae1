package simd

// ==============================================================================
// ClearSteps: the sieve's hot bit-clearing loop.
// ==============================================================================
//
// ClearSteps clears bit j = start + k*step (k = 0, 1, ...) for every j <=
// limit. The original C implementation computes four (AVX2) or two
// (SSE2/NEON) successive indices per loop iteration before scattering the
// scalar byte-clears; this is the same strategy expressed in portable Go
// — each "lane" is index arithmetic unrolled ahead of the byte write, not
// an actual vector instruction, since this module carries no hand-written
// assembly. Every path must clear exactly the same bits as the generic
// (lanes=1) reference; only throughput differs.

// kernelClearSteps is the active dispatch target. Platform-specific
// init() functions in capability_*.go select an ISA; the lane width used
// here is derived from it at call time rather than by reassigning this
// variable, since the unrolled loop is itself portable Go.
var kernelClearSteps = clearStepsDispatch

// ClearSteps clears bit j = start + k*step in data (LSB-first byte
// packing) for every k >= 0 with j <= limit. Callers (bitmap.ClearSteps)
// have already validated step > 0 and limit < 8*len(data).
func ClearSteps(data []byte, step, start, limit uint64) {
	kernelClearSteps(data, step, start, limit)
}

func clearStepsDispatch(data []byte, step, start, limit uint64) {
	switch activeISA {
	case AVX2:
		clearStepsLanes(data, step, start, limit, 4)
	case SSE2, NEON:
		clearStepsLanes(data, step, start, limit, 2)
	default:
		clearStepsLanes(data, step, start, limit, 1)
	}
}

// clearStepsLanes clears bit j=start+k*step for j<=limit, computing
// `lanes` successive indices per outer iteration before writing them. The
// lane grouping only changes how many indices are computed ahead of
// time; the set of bits cleared never depends on it.
func clearStepsLanes(data []byte, step, start, limit uint64, lanes int) {
	if start > limit {
		return
	}
	var idx [4]uint64
	j := start
	for j <= limit {
		n := 0
		for n < lanes && j <= limit {
			idx[n] = j
			j += step
			n++
		}
		for i := 0; i < n; i++ {
			clearBit(data, idx[i])
		}
	}
}

func clearBit(data []byte, i uint64) {
	data[i/8] &^= 1 << (i % 8)
}
