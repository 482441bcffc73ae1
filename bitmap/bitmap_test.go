package bitmap

import "testing"

func TestBitmapSetGetClear(t *testing.T) {
	b := New(100, false)

	if b.Get(10) {
		t.Errorf("expected bit 10 unset")
	}
	b.Set(10)
	if !b.Get(10) {
		t.Errorf("expected bit 10 set")
	}
	b.Clear(10)
	if b.Get(10) {
		t.Errorf("expected bit 10 unset after clear")
	}
	b.Flip(20)
	if !b.Get(20) {
		t.Errorf("expected bit 20 set after flip")
	}
	b.Flip(20)
	if b.Get(20) {
		t.Errorf("expected bit 20 unset after second flip")
	}
}

func TestBitmapSetAllClearAll(t *testing.T) {
	b := New(64, false)
	b.SetAll()
	if b.Count() != 64 {
		t.Errorf("expected count 64 after SetAll, got %d", b.Count())
	}
	b.ClearAll()
	if b.Count() != 0 {
		t.Errorf("expected count 0 after ClearAll, got %d", b.Count())
	}
}

func TestBitmapClearSteps(t *testing.T) {
	b := New(100, true)
	b.ClearSteps(3, 5, 50)

	for i := uint64(5); i <= 50; i += 3 {
		if b.Get(i) {
			t.Errorf("expected bit %d cleared", i)
		}
	}
	if !b.Get(4) {
		t.Errorf("expected bit 4 (below start) to remain set")
	}
	if !b.Get(53) {
		t.Errorf("expected bit 53 (past limit) to remain set")
	}
}

func TestBitmapClearStepsPreconditionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on step=0")
		}
	}()
	b := New(10, false)
	b.ClearSteps(0, 0, 9)
}

func TestBitmapClone(t *testing.T) {
	b := New(100, false)
	b.Set(1)
	b.ComputeChecksum()

	c := b.Clone()
	c.Set(2)

	if b.Get(2) {
		t.Errorf("expected clone to be independent of original")
	}
	if c.Checksum != b.Checksum {
		t.Errorf("expected clone to carry forward checksum field")
	}
}

func TestBitmapChecksumRoundTrip(t *testing.T) {
	b := New(1000, false)
	for i := uint64(0); i < 1000; i += 2 {
		b.Set(i)
	}
	b.ComputeChecksum()
	if !b.VerifyChecksum() {
		t.Fatalf("expected checksum to verify immediately after computing")
	}
	b.Set(1) // mutate without recompute
	if b.VerifyChecksum() {
		t.Fatalf("expected checksum to fail to verify after mutation")
	}
}
