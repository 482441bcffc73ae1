package blobstore

import (
	"context"
	"testing"
)

func TestLocalStoreCreateThenOpenRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	w, err := store.Create(ctx, "runs/1/primes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Write([]byte("5 7 11 13")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	b, err := store.Open(ctx, "runs/1/primes.txt")
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer b.Close()

	if b.Size() != 9 {
		t.Fatalf("got size %d, want 9", b.Size())
	}
	buf := make([]byte, b.Size())
	if _, err := b.ReadAt(buf, 0); err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(buf) != "5 7 11 13" {
		t.Fatalf("got %q, want %q", buf, "5 7 11 13")
	}
}

func TestLocalStoreOpenMissingReturnsErrNotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "nope.txt")
	if err != ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLocalStoreDeleteThenList(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"runs/1/a.txt", "runs/1/b.txt", "runs/2/c.txt"} {
		w, err := store.Create(ctx, name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.Close()
	}

	names, err := store.List(ctx, "runs/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2: %v", len(names), names)
	}

	if err := store.Delete(ctx, "runs/1/a.txt"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := store.Open(ctx, "runs/1/a.txt"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "runs/1/a.txt"); err != nil {
		t.Fatalf("deleting an already-deleted blob should be a no-op, got %v", err)
	}
}
