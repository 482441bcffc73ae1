// Package izsieve provides a high-performance prime sieving and
// prime-counting engine built around the iZ index space: integers of the
// form 6x±1, represented as two packed bit-arrays and sieved segment by
// segment.
//
// # Quick Start
//
// Full-range sieve up to ~10^12:
//
//	primes, ok := rangedriver.SiZm(1_000_000)
//	// primes.Slice() == ascending primes <= 1,000,000
//
// Counting an interval (both endpoints must be <= 10^12; a larger Zs is
// rejected and the count is 0):
//
//	total := rangedriver.SiZCount(ctx, izsieve.InputRange{
//	    Start: "999000000000",
//	    Range: 1_000_000,
//	}, 8)
//
// Streaming primes in a range to a file:
//
//	total, ok := rangedriver.SiZStream(ctx, izsieve.InputRange{
//	    Start:    "0",
//	    Range:    1_000_000,
//	    Filepath: "/tmp/primes.txt",
//	})
//
// # Architecture
//
//   - bitmap: fixed-size packed bit-array with checksummed I/O.
//   - intarray: growable typed integer vectors with checksummed I/O.
//   - iz: coordinate mapping (x <-> n=6x±1) and wheel ("VX base") construction.
//   - hitsolve: modular hit solvers used by the marking identity.
//   - rootprime: root-prime generator (primes <= sqrt(N)) via the full iZ sieve.
//   - segment: the segmented sieve engine (VX_SEG), horizontal and vertical.
//   - rangedriver: maps [Zs, Ze] onto iZ segments and drives multi-process counting/streaming.
//   - oracle: the arbitrary-precision, probable-primality collaborator.
//
// # Concurrency
//
// Parallelism in rangedriver is achieved by process fan-out (self-reexec
// workers communicating over pipes). Inside a count worker, segments are
// also marked concurrently by goroutines (segment.MarkPipeline), each
// segment owning its own bitmaps, so no mutable state is shared.
package izsieve
