// Package primeset exposes a segment's surviving x-positions as a
// roaring bitmap, a compact alternative to the dense bitmap.Bitmap a
// segment is sieved into. The dense bitmap remains the sieve's working
// storage (spec's packed bit-array data model); a Set is built from it
// only after Collect, when a low-density is_large_limit segment's
// survivors are cheaper to carry or compare as a sparse set.
package primeset

import (
	"io"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set holds a VX segment's surviving x-positions on each of its two
// lines (iZ-minus and iZ-plus), encoded as roaring bitmaps.
type Set struct {
	X5 *roaring.Bitmap
	X7 *roaring.Bitmap
}

// New returns an empty Set.
func New() *Set {
	return &Set{X5: roaring.New(), X7: roaring.New()}
}

// FromBitmaps builds a Set from a segment's two dense survivor lines,
// scanning x in [startX, endX] inclusive and adding the local offset
// (x - startX) of every set bit.
func FromBitmaps(x5, x7 Getter, startX, endX uint64) *Set {
	s := New()
	for x := startX; x <= endX; x++ {
		off := uint32(x - startX)
		if x5.Get(x) {
			s.X5.Add(off)
		}
		if x7.Get(x) {
			s.X7.Add(off)
		}
	}
	return s
}

// Getter is the subset of bitmap.Bitmap's API FromBitmaps needs, kept
// narrow so primeset doesn't import bitmap and the two packages can
// evolve independently.
type Getter interface {
	Get(i uint64) bool
}

// Cardinality returns the total number of surviving positions across
// both lines.
func (s *Set) Cardinality() uint64 {
	return s.X5.GetCardinality() + s.X7.GetCardinality()
}

// Density returns the fraction of a segment's 2*width candidate
// positions that survived, for deciding whether the roaring encoding
// is worth carrying for a given segment.
func (s *Set) Density(width uint64) float64 {
	if width == 0 {
		return 0
	}
	return float64(s.Cardinality()) / float64(2*width)
}

// SizeInBytes returns the roaring-encoded size of both lines combined,
// for comparing against the dense bitmap's fixed ByteSize.
func (s *Set) SizeInBytes() uint64 {
	return s.X5.GetSizeInBytes() + s.X7.GetSizeInBytes()
}

// WriteTo serializes both lines, X5 then X7, in roaring's own
// self-delimiting format so ReadFrom can recover each in turn from a
// single stream.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	n1, err := s.X5.WriteTo(w)
	if err != nil {
		return n1, err
	}
	n2, err := s.X7.WriteTo(w)
	return n1 + n2, err
}

// ReadFrom deserializes a Set previously written by WriteTo.
func ReadFrom(r io.Reader) (*Set, error) {
	s := New()
	if _, err := s.X5.ReadFrom(r); err != nil {
		return nil, err
	}
	if _, err := s.X7.ReadFrom(r); err != nil {
		return nil, err
	}
	return s, nil
}
