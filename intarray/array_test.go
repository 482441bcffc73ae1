package intarray

import (
	"bytes"
	"testing"
)

func TestPushGrowsCapacity(t *testing.T) {
	a := New[uint64](1)
	for i := uint64(0); i < 10; i++ {
		a.Push(i)
	}
	if a.Count != 10 {
		t.Fatalf("expected count 10, got %d", a.Count)
	}
	if a.Capacity < 10 {
		t.Fatalf("expected capacity to have grown to >= 10, got %d", a.Capacity)
	}
}

func TestPopAndResizeToFit(t *testing.T) {
	a := New[uint32](4)
	for i := uint32(1); i <= 100; i++ {
		a.Push(i)
	}
	a.ResizeToFit()
	if a.Capacity != a.Count || a.Count != 100 {
		t.Fatalf("expected capacity=count=100, got capacity=%d count=%d", a.Capacity, a.Count)
	}
	a.ResizeToFit() // idempotent
	if a.Capacity != 100 {
		t.Fatalf("expected resize_to_fit to be idempotent")
	}
	a.Pop()
	if a.Count != 99 {
		t.Fatalf("expected count 99 after pop, got %d", a.Count)
	}
}

func TestSortSetsOrdered(t *testing.T) {
	a := New[uint16](4)
	for _, v := range []uint16{5, 1, 4, 2, 3} {
		a.Push(v)
	}
	a.Sort()
	if !a.Ordered {
		t.Fatalf("expected Ordered=true after Sort")
	}
	want := []uint16{1, 2, 3, 4, 5}
	for i, v := range want {
		if a.Slice()[i] != v {
			t.Fatalf("sort mismatch at %d: got %d want %d", i, a.Slice()[i], v)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	a := New[uint64](4)
	for i := uint64(1); i <= 100; i++ {
		a.Push(i)
	}
	a.ResizeToFit()

	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	b, _, err := ReadFrom[uint64](&buf)
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if b.Count != 100 {
		t.Fatalf("expected count 100, got %d", b.Count)
	}
	for i, v := range b.Slice() {
		if v != uint64(i+1) {
			t.Fatalf("round trip mismatch at %d: got %d", i, v)
		}
	}
	if !b.VerifyChecksum() {
		t.Fatalf("expected round-tripped checksum to verify")
	}
}

func TestReadFromDetectsCorruption(t *testing.T) {
	a := New[uint32](4)
	a.Push(42)

	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	corrupted := buf.Bytes()
	corrupted[4] ^= 0xFF

	_, _, err := ReadFrom[uint32](bytes.NewReader(corrupted))
	if err == nil {
		t.Fatalf("expected checksum mismatch error")
	}
}
