package rangedriver

import (
	"runtime"

	"github.com/dustin/go-humanize"

	"github.com/izprime/izsieve/internal/simd"
)

// ClampCores applies spec §5's worker-count rule: N = min(requested,
// detected CPU count, number of segments), floored at 1.
func ClampCores(requested, segments int) int {
	if requested < 1 {
		requested = 1
	}
	n := requested
	if cpu := runtime.NumCPU(); cpu < n {
		n = cpu
	}
	if segments > 0 && segments < n {
		n = segments
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Throughput formats a segments-per-second rate for operator-facing log
// lines (Logger.LogChildExit).
func Throughput(segmentsPerSec float64) string {
	return humanize.SIWithDigits(segmentsPerSec, 2, "seg/s")
}

// ActiveISA reports which SIMD dispatch lane this process's bitmap
// clear_steps selected, for inclusion alongside worker-spawn log lines.
func ActiveISA() string {
	return simd.ActiveISA().String()
}
