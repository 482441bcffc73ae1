package procpool

import (
	"context"
	"testing"
)

func TestRegisterStoresWorker(t *testing.T) {
	Register("test-echo", func(ctx context.Context, job []byte) (uint64, error) {
		return uint64(len(job)), nil
	})

	registryMu.Lock()
	fn, ok := registry["test-echo"]
	registryMu.Unlock()
	if !ok {
		t.Fatal("expected \"test-echo\" to be registered")
	}
	v, err := fn(context.Background(), []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestCanForkReportsABool(t *testing.T) {
	// CanFork must not panic on whatever GOOS this test runs on.
	_ = CanFork()
}
