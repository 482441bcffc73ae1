package hitsolve

import (
	"math/big"
	"testing"

	"github.com/izprime/izsieve/iz"
)

func TestSolveX0ProducesAMultipleOfP(t *testing.T) {
	const vx = iz.VX5
	for _, p := range []uint64{5, 7, 11, 13, 17, 19, 23, 97} {
		for _, line := range []int8{-1, 1} {
			for segY := uint64(0); segY < 3; segY++ {
				x0, err := SolveX0(p, line, segY, vx)
				if err != nil {
					t.Fatalf("SolveX0(%d, %d, %d, %d): %v", p, line, segY, vx, err)
				}
				n := iz.IZ(segY*vx+x0, line)
				if n%p != 0 {
					t.Errorf("SolveX0(%d, %d, %d, %d) = %d: iZ=%d not divisible by %d", p, line, segY, vx, x0, n, p)
				}
			}
		}
	}
}

func TestSolveY0ProducesAMultipleOfP(t *testing.T) {
	const vx = iz.VX6 // coprime to primes below, unlike VX5 for e.g. p=17
	for _, p := range []uint64{23, 29, 31, 97} {
		for _, line := range []int8{-1, 1} {
			for localX := uint64(0); localX < 3; localX++ {
				y0, err := SolveY0(p, line, localX, vx)
				if err != nil {
					t.Fatalf("SolveY0(%d, %d, %d, %d): %v", p, line, localX, vx, err)
				}
				n := iz.IZ(y0*vx+localX, line)
				if n%p != 0 {
					t.Errorf("SolveY0(%d, %d, %d, %d) = %d: iZ=%d not divisible by %d", p, line, localX, vx, y0, n, p)
				}
			}
		}
	}
}

func TestSolveY0NoSolutionWhenPrimeDividesVX(t *testing.T) {
	_, err := SolveY0(5, -1, 0, iz.VX5)
	if err != ErrNoSolution {
		t.Fatalf("expected ErrNoSolution when p | vx, got %v", err)
	}
}

func TestSolveX0BigMatchesSolveX0(t *testing.T) {
	p := uint64(97)
	vx := uint64(iz.VX5)
	for _, line := range []int8{-1, 1} {
		for segY := uint64(0); segY < 3; segY++ {
			want, err := SolveX0(p, line, segY, vx)
			if err != nil {
				t.Fatalf("SolveX0: %v", err)
			}
			got, err := SolveX0Big(new(big.Int).SetUint64(p), line, new(big.Int).SetUint64(segY), new(big.Int).SetUint64(vx))
			if err != nil {
				t.Fatalf("SolveX0Big: %v", err)
			}
			if got.Uint64() != want {
				t.Errorf("SolveX0Big(%d,%d,%d,%d) = %s, want %d", p, line, segY, vx, got, want)
			}
		}
	}
}
