package bitmap

import "github.com/izprime/izsieve/internal/simd"

// clearSteps dispatches to the capability-gated kernel. Kept as a thin
// indirection so bitmap.go never imports internal/simd directly in more
// than one place.
func clearSteps(data []byte, step, start, limit uint64) {
	simd.ClearSteps(data, step, start, limit)
}
