package iz

import "github.com/izprime/izsieve/bitmap"

// MarkComposites clears every multiple of prime n (starting at n*n, the
// first multiple not already handled by a smaller prime) on both iZ lines
// up to limit. Shared by rootprime's bootstrap sieve and classic's
// non-segmented SiZ, since both need to self-sieve without a
// pre-existing prime list.
func MarkComposites(x5, x7 *bitmap.Bitmap, n, limit uint64) {
	for k := n; n <= limit/k; k = NextCoprime6(k) {
		m := n * k
		line := LineOf(m)
		x := XForLine(m, line)
		if line < 0 {
			x5.Clear(x)
		} else {
			x7.Clear(x)
		}
	}
}

// NextCoprime6 returns the next integer greater than k that is coprime to
// 6, given k itself is coprime to 6.
func NextCoprime6(k uint64) uint64 {
	switch k % 6 {
	case 1:
		return k + 4
	case 5:
		return k + 2
	default:
		for {
			k++
			if k%6 == 1 || k%6 == 5 {
				return k
			}
		}
	}
}
