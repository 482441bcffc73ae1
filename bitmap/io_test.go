package bitmap

import (
	"bytes"
	"testing"
)

func TestBitmapWriteReadRoundTrip(t *testing.T) {
	b := New(1000, false)
	b.Set(1)
	b.Set(500)
	b.Set(999)

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	b2, _, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	if b2.Size != 1000 {
		t.Errorf("expected size 1000, got %d", b2.Size)
	}
	if !b2.Get(1) || !b2.Get(500) || !b2.Get(999) {
		t.Errorf("round trip lost bits")
	}
	if !b2.VerifyChecksum() {
		t.Errorf("expected round-tripped checksum to verify")
	}
}

func TestBitmapReadFromDetectsCorruption(t *testing.T) {
	b := New(100, false)
	b.Set(1)

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	corrupted := buf.Bytes()
	corrupted[8] ^= 0xFF // flip a payload byte after the size header

	_, _, err := ReadFrom(bytes.NewReader(corrupted))
	if err == nil {
		t.Fatalf("expected checksum mismatch error")
	}
	var cm *ChecksumMismatchError
	if _, ok := err.(*ChecksumMismatchError); !ok {
		t.Fatalf("expected *ChecksumMismatchError, got %T (%v)", err, cm)
	}
}

func TestWriteToIsIdempotentWithoutRecompute(t *testing.T) {
	b := New(64, false)
	b.Set(1)
	b.ComputeChecksum()
	first := b.Checksum

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if b.Checksum != first {
		t.Errorf("expected WriteTo to leave an already-computed checksum unchanged")
	}
}
