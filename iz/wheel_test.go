package iz

import "testing"

func TestComputeVXKMatchesFixedConstants(t *testing.T) {
	if got := ComputeVXK(5).Uint64(); got != VX5 {
		t.Errorf("ComputeVXK(5) = %d, want VX5 = %d", got, VX5)
	}
	if got := ComputeVXK(6).Uint64(); got != VX6 {
		t.Errorf("ComputeVXK(6) = %d, want VX6 = %d", got, VX6)
	}
}

func TestComputeL2VXNeverBelow35(t *testing.T) {
	if got := ComputeL2VX(1, 4); got != 35 {
		t.Errorf("ComputeL2VX with a tiny bound = %d, want 35", got)
	}
}

func TestComputeL2VXRespectsBound(t *testing.T) {
	vx := ComputeL2VX(1<<40, 20)
	if bitLen64(vx) > 20 {
		t.Errorf("ComputeL2VX(_, 20) = %d has bit length %d > 20", vx, bitLen64(vx))
	}
}

func TestComputeMaxVXBelowBitSize(t *testing.T) {
	vx := ComputeMaxVX(64)
	if vx.BitLen() >= 64 {
		t.Errorf("ComputeMaxVX(64) has bit length %d, want < 64", vx.BitLen())
	}
}

func TestBuildVXBaseClearsZeroAndSharedFactors(t *testing.T) {
	x5, x7, kvx := BuildVXBase(VX5)
	if kvx != 5 {
		t.Errorf("expected kvx=5 for VX5, got %d", kvx)
	}
	if x5.Get(0) || x7.Get(0) {
		t.Errorf("expected bit 0 cleared on both lines")
	}

	// x=5 gives iZ(5,-1)=29 (prime, coprime to 6*VX5) and iZ(5,1)=31 (also
	// prime): both bits should remain set.
	if !x5.Get(5) || !x7.Get(5) {
		t.Errorf("expected bit 5 set on both lines (29 and 31 are prime)")
	}

	// x corresponding to n=35=5*7 must be cleared on whichever line it
	// falls on, since 5 | VX5.
	line := LineOf(35)
	x35 := XForLine(35, line)
	if line == -1 {
		if x5.Get(x35) {
			t.Errorf("expected bit for n=35 cleared on x5 line")
		}
	} else {
		if x7.Get(x35) {
			t.Errorf("expected bit for n=35 cleared on x7 line")
		}
	}
}

func TestIZMCloneSegmentIsIndependentCopy(t *testing.T) {
	m := New(35)
	a5, a7 := m.CloneSegment()
	// x=2 is iZ(2,-1)=11, coprime to 6*35, so the bit is set in the base.
	a5.Clear(2)
	if !m.BaseX5.Get(2) {
		t.Errorf("expected clearing the clone to leave the base bitmap untouched")
	}
	_ = a7
}
