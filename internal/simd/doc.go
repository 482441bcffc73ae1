// Package simd provides the capability-gated dispatch for the sieve's
// bit-clearing hot loop (ClearSteps).
//
// # Supported platforms
//
//   - x86-64: AVX2, SSE2
//   - ARM64: NEON
//
// Runtime CPU feature detection selects the widest available lane width.
// Set IZSIEVE_SIMD=generic|sse2|avx2|neon to force a specific path (for
// benchmarking or to rule out a platform-specific bug).
package simd
