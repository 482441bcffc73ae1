// Package rangedriver maps an arbitrary input interval [Zs, Ze] onto the
// iZ segment grid and drives the segmented engine across it, either
// streaming primes to a sink (SiZStream) or summing a count (SiZCount),
// the latter optionally fanned out across worker processes (spec §4.7).
package rangedriver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/izprime/izsieve"
	"github.com/izprime/izsieve/classic"
	"github.com/izprime/izsieve/internal/procpool"
	"github.com/izprime/izsieve/iz"
	"github.com/izprime/izsieve/oracle"
	"github.com/izprime/izsieve/rootprime"
	"github.com/izprime/izsieve/segment"
)

const countWorkerName = "sizcount"

func init() {
	procpool.Register(countWorkerName, countWorker)
}

// packageLogger receives a density log line for every is_large_limit
// segment once its survivors have been encoded as a primeset.Set; nil by
// default, set via SetLogger.
var packageLogger *izsieve.Logger

// SetLogger installs the structured logger used for is_large_limit
// segment density reporting. Pass nil to disable.
func SetLogger(l *izsieve.Logger) {
	packageLogger = l
}

func logSegmentDensity(seg *segment.VXSegment) {
	if packageLogger == nil || !seg.IsLargeLimit {
		return
	}
	ps := seg.Roaring()
	if ps == nil {
		return
	}
	width := seg.EndX - seg.StartX + 1
	packageLogger.Debug("segment survivor density",
		"y", seg.Y,
		"cardinality", ps.Cardinality(),
		"density", ps.Density(width),
		"roaring_bytes", ps.SizeInBytes(),
	)
}

// SiZStream writes every prime in [Zs, Ze] to the input's output sink (a
// file, or stdout if Filepath is empty or "/dev/stdout"), space-separated
// ascending decimals, and returns the count written. ctx is accepted for
// API symmetry with SiZCount; the single-process streaming path has no
// cancellation point of its own.
func SiZStream(ctx context.Context, in izsieve.InputRange) (uint64, bool) {
	zs, ze, ok := parseRange(in)
	if !ok {
		return 0, false
	}

	sink, closeSink, err := openSink(in.Filepath)
	if err != nil {
		return 0, false
	}
	defer closeSink()

	mrRounds := resolveMRRounds(in.MRRounds)
	tester := oracle.NewBigIntTester()
	g := decompose(zs, ze)
	rootPrimes := rootprime.Primes(isqrt(ze) + 1)

	var total uint64
	first := true
	emit := func(n uint64) {
		if n < zs || n > ze {
			return
		}
		total++
		if !first {
			fmt.Fprint(sink, " ")
		}
		fmt.Fprintf(sink, "%d", n)
		first = false
	}

	// 2, 3 and vx's own prime factors are cleared by the wheel base, so
	// row 0 never emits them.
	if g.ys == 0 {
		emit(2)
		emit(3)
		for _, p := range iz.SmallPrimes(g.m.KVX) {
			emit(p)
		}
	}

	for y := g.ys; y <= g.ye; y++ {
		startX, endX := rowBounds(g, y)
		if endX < startX {
			continue
		}
		seg := segment.NewVXSegment(g.m, y, startX, endX, mrRounds)
		seg.Mark(rootPrimes, g.m.KVX)
		seg.Collect(tester, emit)
		logSegmentDensity(seg)
		seg.Free()
	}

	delta := boundaryCorrection(zs, ze, g, tester, mrRounds)
	return uint64(int64(total) + delta), true
}

// SiZCount returns the count of primes in [Zs, Ze], identically
// decomposed to SiZStream but without streaming or gap collection. When
// cores>1 and the host supports self-reexec forking, the row range is
// partitioned into up to `cores` contiguous worker processes; otherwise
// every row is processed in this process. Precondition: in.Range > 100.
func SiZCount(ctx context.Context, in izsieve.InputRange, cores int) uint64 {
	if in.Range <= 100 {
		return 0
	}
	zs, ze, ok := parseRange(in)
	if !ok {
		return 0
	}

	mrRounds := resolveMRRounds(in.MRRounds)
	tester := oracle.NewBigIntTester()
	g := decompose(zs, ze)
	rootLimit := isqrt(ze) + 1
	rootPrimes := rootprime.Primes(rootLimit)

	rowCount := int(g.ye - g.ys + 1)
	n := ClampCores(cores, rowCount)

	var total uint64
	if n <= 1 || !procpool.CanFork() {
		for y := g.ys; y <= g.ye; y++ {
			total += countRow(g, y, rootPrimes, tester, mrRounds, zs, ze)
		}
	} else {
		blocks := partitionRows(g.ys, g.ye, n)
		jobs := make([][]byte, len(blocks))
		for i, blk := range blocks {
			job := countJob{
				RootLimit: rootLimit,
				YStart:    blk[0],
				YEnd:      blk[1],
				Zs:        zs,
				Ze:        ze,
				MRRounds:  mrRounds,
			}
			payload, err := json.Marshal(job)
			if err != nil {
				return 0
			}
			jobs[i] = payload
		}
		results := procpool.Run(ctx, countWorkerName, jobs)
		for _, r := range results {
			if r.Err != nil {
				return 0
			}
			total += r.Value
		}
	}

	// Row 0 never emits 2, 3 or vx's own prime factors (see SiZStream).
	if g.ys == 0 {
		for _, p := range append([]uint64{2, 3}, iz.SmallPrimes(g.m.KVX)...) {
			if p >= zs && p <= ze {
				total++
			}
		}
	}

	delta := boundaryCorrection(zs, ze, g, tester, mrRounds)
	return uint64(int64(total) + delta)
}

func countRow(g rangeGeometry, y uint64, rootPrimes []uint64, tester oracle.Tester, mrRounds int, zs, ze uint64) uint64 {
	startX, endX := rowBounds(g, y)
	if endX < startX {
		return 0
	}
	seg := segment.NewVXSegment(g.m, y, startX, endX, mrRounds)
	seg.Mark(rootPrimes, g.m.KVX)
	var count uint64
	seg.Collect(tester, func(n uint64) {
		if n >= zs && n <= ze {
			count++
		}
	})
	logSegmentDensity(seg)
	seg.Free()
	return count
}

func partitionRows(ys, ye uint64, n int) [][2]uint64 {
	total := ye - ys + 1
	blocks := make([][2]uint64, 0, n)
	base := total / uint64(n)
	rem := total % uint64(n)
	cur := ys
	for i := 0; i < n; i++ {
		size := base
		if uint64(i) < rem {
			size++
		}
		if size == 0 {
			continue
		}
		blocks = append(blocks, [2]uint64{cur, cur + size - 1})
		cur += size
	}
	return blocks
}

// countJob is a count worker's payload, serialized to JSON over the
// child's stdin (spec §5: "each receives an independently-allocated IZM
// clone" — here, the means to reconstruct one rather than a literal
// memory copy, since processes share nothing). Only the worker's own row
// block and the global interval travel across the pipe; vx/Xs/Xe/Ys/Ye
// are pure functions of Zs/Ze, so the worker rederives them instead of
// trusting a second copy that could drift from the parent's.
type countJob struct {
	RootLimit uint64
	YStart    uint64
	YEnd      uint64
	Zs        uint64
	Ze        uint64
	MRRounds  int
}

func countWorker(ctx context.Context, payload []byte) (uint64, error) {
	var job countJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return 0, err
	}
	g := decompose(job.Zs, job.Ze)

	rootPrimes := rootprime.Primes(job.RootLimit)
	tester := oracle.NewBigIntTester()

	return countRowsPipelined(ctx, g, job.YStart, job.YEnd, rootPrimes, tester, job.MRRounds, job.Zs, job.Ze)
}

// countRowsPipelined marks every row in [ys,ye]'s segment concurrently
// via segment.MarkPipeline, then collects each sequentially. This is the
// goroutine-level fan-out within a single count worker process, on top
// of the process-level fan-out SiZCount already performs across workers.
func countRowsPipelined(ctx context.Context, g rangeGeometry, ys, ye uint64, rootPrimes []uint64, tester oracle.Tester, mrRounds int, zs, ze uint64) (uint64, error) {
	segs := make([]*segment.VXSegment, 0, ye-ys+1)
	for y := ys; y <= ye; y++ {
		startX, endX := rowBounds(g, y)
		if endX < startX {
			continue
		}
		segs = append(segs, segment.NewVXSegment(g.m, y, startX, endX, mrRounds))
	}
	if len(segs) == 0 {
		return 0, nil
	}

	if err := segment.MarkPipeline(ctx, segs, rootPrimes, g.m.KVX, markPipelineLimit); err != nil {
		return 0, err
	}

	var total uint64
	for _, seg := range segs {
		var rowCount uint64
		seg.Collect(tester, func(n uint64) {
			if n >= zs && n <= ze {
				rowCount++
			}
		})
		logSegmentDensity(seg)
		seg.Free()
		total += rowCount
	}
	return total, nil
}

// markPipelineLimit bounds concurrent segment marking within one count
// worker; 0 would mean unbounded, which risks spawning as many goroutines
// as rows in a large block.
const markPipelineLimit = 8

// resolveMRRounds applies spec §6's configuration surface: mr_rounds
// defaults to 25 when unset, otherwise clamps to [5,50].
func resolveMRRounds(requested int) int {
	if requested == 0 {
		return segment.DefaultMRRounds
	}
	if requested < 5 {
		return 5
	}
	if requested > 50 {
		return 50
	}
	return requested
}

// parseRange validates and extracts [Zs, Ze] from an InputRange. Start is
// a decimal string per spec §6's numeric grammar, but this engine's
// n<=10^12 ceiling (classic.MaxLimit) means every valid endpoint fits in
// a uint64; larger values are rejected rather than silently truncated.
func parseRange(in izsieve.InputRange) (zs, ze uint64, ok bool) {
	start := in.Start
	if start == "" {
		start = "0"
	}
	parsed, success := new(big.Int).SetString(start, 10)
	if !success || parsed.Sign() < 0 || !parsed.IsUint64() {
		return 0, 0, false
	}
	zs = parsed.Uint64()
	if in.Range == 0 {
		return 0, 0, false
	}
	ze = zs + in.Range - 1
	if ze < zs || ze > classic.MaxLimit {
		return 0, 0, false
	}
	return zs, ze, true
}

func openSink(path string) (io.Writer, func(), error) {
	if path == "" || path == "/dev/stdout" {
		w := bufio.NewWriter(os.Stdout)
		return w, func() { w.Flush() }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, func() {}, err
	}
	w := bufio.NewWriter(f)
	return w, func() { w.Flush(); f.Close() }, nil
}
