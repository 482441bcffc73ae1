// Package segment implements the segmented sieve engine (spec §4.6): a
// VX-sized segment state machine, and the two traversal variants built
// on it, SiZm (horizontal) and SiZmVY (vertical).
package segment

import (
	"math"

	"github.com/izprime/izsieve/bitmap"
	"github.com/izprime/izsieve/hitsolve"
	"github.com/izprime/izsieve/iz"
	"github.com/izprime/izsieve/oracle"
	"github.com/izprime/izsieve/primeset"
)

// State is a VXSegment's position in its Init -> Marked -> Collected ->
// Freed lifecycle.
type State int

const (
	StateInit State = iota
	StateMarked
	StateCollected
	StateFreed
)

// VXSegment is one y-indexed segment of a segmented sieve, owned by
// exactly one worker for its lifetime.
type VXSegment struct {
	VX           uint64
	Y            uint64
	YVX          uint64
	RootLimit    uint64
	IsLargeLimit bool
	MRRounds     int
	StartX       uint64
	EndX         uint64
	X5           *bitmap.Bitmap
	X7           *bitmap.Bitmap
	State        State
	BitOps       uint64
	PTestOps     uint64
}

// NewVXSegment initializes a segment cloned from m's base bitmaps,
// covering local x in [startX, endX] of absolute row y.
func NewVXSegment(m *iz.IZM, y, startX, endX uint64, mrRounds int) *VXSegment {
	yvx := y * m.VX
	rootLimit := isqrt(6*(yvx+endX)+1)
	x5, x7 := m.CloneSegment()
	return &VXSegment{
		VX:           m.VX,
		Y:            y,
		YVX:          yvx,
		RootLimit:    rootLimit,
		IsLargeLimit: rootLimit > m.VX,
		MRRounds:     mrRounds,
		StartX:       startX,
		EndX:         endX,
		X5:           x5,
		X7:           x7,
		State:        StateInit,
	}
}

// Mark clears composites of every root prime in rootPrimes[kvx:] up to
// RootLimit, transitioning Init -> Marked. kvx is the number of leading
// entries to skip; primes dividing vx that are not skipped only clear
// positions the wheel base has already cleared. A root prime's own
// position is never cleared.
func (s *VXSegment) Mark(rootPrimes []uint64, kvx int) {
	if s.State != StateInit {
		return
	}
	for _, p := range rootPrimes[kvx:] {
		if p > s.RootLimit {
			break
		}
		if x0, err := hitsolve.SolveX0(p, -1, s.Y, s.VX); err == nil {
			if iz.IZ(s.YVX+x0, -1) == p {
				x0 += p
			}
			s.clearFrom(s.X5, p, x0)
		}
		if x0, err := hitsolve.SolveX0(p, 1, s.Y, s.VX); err == nil {
			if iz.IZ(s.YVX+x0, 1) == p {
				x0 += p
			}
			s.clearFrom(s.X7, p, x0)
		}
	}
	s.State = StateMarked
}

// clearFrom advances the residue x0 (mod p) to the first value >=
// StartX, then clears every step of p up to EndX.
func (s *VXSegment) clearFrom(line *bitmap.Bitmap, p, x0 uint64) {
	if x0 < s.StartX {
		diff := s.StartX - x0
		x0 += ((diff + p - 1) / p) * p
	}
	if x0 > s.EndX {
		return
	}
	line.ClearSteps(p, x0, s.EndX)
	s.BitOps += (s.EndX-x0)/p + 1
}

// Collect walks x in [StartX, EndX], emitting x5-line then x7-line
// survivors at each x (spec's ordering guarantee). When IsLargeLimit,
// tester must be non-nil: each survivor is Miller-Rabin tested and
// composites are cleared instead of emitted. Transitions Marked ->
// Collected.
func (s *VXSegment) Collect(tester oracle.Tester, emit func(n uint64)) {
	if s.State != StateMarked {
		return
	}
	for x := s.StartX; x <= s.EndX; x++ {
		if s.X5.Get(x) {
			n := iz.IZ(s.YVX+x, -1)
			s.emitOrClean(tester, s.X5, x, n, emit)
		}
		if s.X7.Get(x) {
			n := iz.IZ(s.YVX+x, 1)
			s.emitOrClean(tester, s.X7, x, n, emit)
		}
	}
	s.State = StateCollected
}

func (s *VXSegment) emitOrClean(tester oracle.Tester, line *bitmap.Bitmap, x, n uint64, emit func(uint64)) {
	if !s.IsLargeLimit {
		emit(n)
		return
	}
	s.PTestOps++
	if tester.IsProbablePrime(n, s.MRRounds) {
		emit(n)
	} else {
		line.Clear(x)
	}
}

// Roaring encodes the segment's post-Collect survivor lines as a compact
// roaring bitmap set, cheaper to carry or compare than the dense lines
// when IsLargeLimit probabilistic cleanup has left them sparse. Must be
// called in StateCollected, before Free.
func (s *VXSegment) Roaring() *primeset.Set {
	if s.State != StateCollected {
		return nil
	}
	return primeset.FromBitmaps(s.X5, s.X7, s.StartX, s.EndX)
}

// Free releases the segment's bitmaps, transitioning Collected -> Freed.
// In practice the range driver clones fresh bitmaps from the base for
// the next segment rather than reusing these, so Free is a bookkeeping
// step, not a pool return.
func (s *VXSegment) Free() {
	s.X5 = nil
	s.X7 = nil
	s.State = StateFreed
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
