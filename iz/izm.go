package iz

import "github.com/izprime/izsieve/bitmap"

// IZM is a constructed wheel context: the pre-sieved template bitmaps for
// wheel width VX, cloned once per segment by the segment engine rather
// than rebuilt (spec §4.3, §4.6).
type IZM struct {
	VX     uint64
	KVX    int
	BaseX5 *bitmap.Bitmap
	BaseX7 *bitmap.Bitmap
}

// New constructs the wheel context for width vx.
func New(vx uint64) *IZM {
	x5, x7, kvx := BuildVXBase(vx)
	return &IZM{VX: vx, KVX: kvx, BaseX5: x5, BaseX7: x7}
}

// CloneSegment returns fresh copies of the base bitmaps, ready to have
// root-prime composites marked into them for one VX-wide segment.
func (m *IZM) CloneSegment() (x5, x7 *bitmap.Bitmap) {
	return m.BaseX5.Clone(), m.BaseX7.Clone()
}
