package segment

import (
	"testing"

	"github.com/izprime/izsieve/classic"
)

func TestSiZmMatchesSoEAsSet(t *testing.T) {
	const n = 200000
	reference, err := classic.SoE(n)
	if err != nil {
		t.Fatalf("SoE(%d): %v", n, err)
	}
	got, err := SiZm(n, nil, DefaultMRRounds)
	if err != nil {
		t.Fatalf("SiZm(%d): %v", n, err)
	}

	want := toSet(reference.Slice())
	have := toSet(got.Slice())
	if len(want) != len(have) {
		t.Fatalf("SiZm(%d) produced %d primes, want %d", n, len(have), len(want))
	}
	for p := range want {
		if !have[p] {
			t.Errorf("SiZm(%d) missing prime %d", n, p)
		}
	}
}

func TestSiZmVYMatchesSoEAsMultiset(t *testing.T) {
	const n = 200000
	reference, err := classic.SoE(n)
	if err != nil {
		t.Fatalf("SoE(%d): %v", n, err)
	}
	got, err := SiZmVY(n, nil, DefaultMRRounds)
	if err != nil {
		t.Fatalf("SiZmVY(%d): %v", n, err)
	}
	if got.Ordered {
		t.Errorf("expected SiZmVY output to be marked unordered")
	}
	if got.Count != reference.Count {
		t.Errorf("SiZmVY(%d) returned %d values, want %d", n, got.Count, reference.Count)
	}

	want := toSet(reference.Slice())
	have := toSet(got.Slice())
	if len(want) != len(have) {
		t.Fatalf("SiZmVY(%d) produced %d primes, want %d", n, len(have), len(want))
	}
	for p := range want {
		if !have[p] {
			t.Errorf("SiZmVY(%d) missing prime %d", n, p)
		}
	}
}

func TestSiZmSmallDelegatesToSiZ(t *testing.T) {
	got, err := SiZm(5000, nil, DefaultMRRounds)
	if err != nil {
		t.Fatalf("SiZm(5000): %v", err)
	}
	want, err := classic.SiZ(5000)
	if err != nil {
		t.Fatalf("SiZ(5000): %v", err)
	}
	if got.Count != want.Count {
		t.Errorf("SiZm(5000) count %d, want %d", got.Count, want.Count)
	}
}

func toSet(s []uint64) map[uint64]bool {
	m := make(map[uint64]bool, len(s))
	for _, v := range s {
		m[v] = true
	}
	return m
}
