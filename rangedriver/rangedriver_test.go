package rangedriver

import (
	"bytes"
	"context"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/izprime/izsieve"
	"github.com/izprime/izsieve/classic"
)

func TestSiZmMatchesSoE(t *testing.T) {
	const n = 50000
	want, err := classic.SoE(n)
	if err != nil {
		t.Fatalf("SoE(%d): %v", n, err)
	}
	got, ok := SiZm(n)
	if !ok {
		t.Fatalf("SiZm(%d) returned not-ok", n)
	}
	if got.Count != want.Count {
		t.Fatalf("SiZm(%d) count = %d, want %d", n, got.Count, want.Count)
	}
}

func TestSiZCountMatchesSoEOverFullRangeFromZero(t *testing.T) {
	const n = 50000
	want, err := classic.SoE(n)
	if err != nil {
		t.Fatalf("SoE(%d): %v", n, err)
	}

	got := SiZCount(context.Background(), izsieve.InputRange{
		Start: "0",
		Range: n + 1,
	}, 1)
	if got != uint64(want.Count) {
		t.Fatalf("SiZCount([0,%d]) = %d, want %d", n, got, want.Count)
	}
}

func TestSiZCountSubRangeMatchesFiltering(t *testing.T) {
	const lo, hi = 10000, 20000
	reference, err := classic.SoE(hi)
	if err != nil {
		t.Fatalf("SoE(%d): %v", hi, err)
	}
	var want uint64
	for _, p := range reference.Slice() {
		if p >= lo && p <= hi {
			want++
		}
	}

	got := SiZCount(context.Background(), izsieve.InputRange{
		Start: "10000",
		Range: hi - lo + 1,
	}, 1)
	if got != want {
		t.Fatalf("SiZCount([%d,%d]) = %d, want %d", lo, hi, got, want)
	}
}

func TestSiZCountRejectsNarrowRange(t *testing.T) {
	got := SiZCount(context.Background(), izsieve.InputRange{Start: "0", Range: 50}, 1)
	if got != 0 {
		t.Fatalf("SiZCount with range<=100 = %d, want 0", got)
	}
}

func TestIZNextPrimeForwardAndBackward(t *testing.T) {
	next, ok := IZNextPrime(7, true)
	if !ok || next != 11 {
		t.Fatalf("IZNextPrime(7, forward) = %d, %v; want 11, true", next, ok)
	}
	prev, ok := IZNextPrime(11, false)
	if !ok || prev != 7 {
		t.Fatalf("IZNextPrime(11, backward) = %d, %v; want 7, true", prev, ok)
	}
}

func TestSetLoggerReportsIsLargeLimitSegmentDensity(t *testing.T) {
	var buf bytes.Buffer
	logger := izsieve.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(logger)
	defer SetLogger(nil)

	// [1001,1500] is sieved at vx=35 over rows 4..7; rows 6 and 7 have
	// root_limit 38 > vx (is_large_limit), so they log survivor density.
	got := SiZCount(context.Background(), izsieve.InputRange{Start: "1001", Range: 500}, 1)
	if got == 0 {
		t.Fatal("expected a nonzero prime count over [1001,1500]")
	}
	if !strings.Contains(buf.String(), "segment survivor density") {
		t.Fatalf("expected a density log line, got: %s", buf.String())
	}
}

func TestVXRandomPrimeProducesPrimeOfRequestedBitSize(t *testing.T) {
	n, ok := VXRandomPrime(context.Background(), 16, 2)
	if !ok {
		t.Fatal("VXRandomPrime returned not-ok")
	}
	if n.BitLen() != 16 {
		t.Fatalf("VXRandomPrime bit length = %d, want 16", n.BitLen())
	}
	mod := new(big.Int).Mod(n, big.NewInt(6)).Int64()
	if mod != 5 {
		t.Fatalf("VXRandomPrime result %s mod 6 = %d, want 5", n, mod)
	}
}
