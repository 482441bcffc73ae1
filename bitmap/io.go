package bitmap

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
)

var zeroDigest [32]byte

// ComputeChecksum computes the SHA-256 digest over the first ByteSize
// payload bytes and stores it in Checksum.
func (b *Bitmap) ComputeChecksum() {
	b.Checksum = sha256.Sum256(b.Data[:b.ByteSize])
}

// VerifyChecksum reports whether the stored checksum matches a freshly
// computed SHA-256 digest of the payload.
func (b *Bitmap) VerifyChecksum() bool {
	return sha256.Sum256(b.Data[:b.ByteSize]) == b.Checksum
}

// WriteTo serializes [size:u64 LE][payload:ByteSize bytes][checksum:32
// bytes] per spec §6's persisted-format layout. Mirroring the original
// C's lazy-hash-on-write behavior: the checksum is recomputed only if it
// is currently the zero digest, so re-saving an unmodified bitmap does
// not churn the digest.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	if b.Checksum == zeroDigest {
		b.ComputeChecksum()
	}

	var total int64
	var sizeBuf [8]byte
	binary.LittleEndian.PutUint64(sizeBuf[:], b.Size)
	n, err := w.Write(sizeBuf[:])
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(b.Data[:b.ByteSize])
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(b.Checksum[:])
	total += int64(n)
	return total, err
}

// ReadFrom deserializes a bitmap written by WriteTo and verifies its
// checksum. On mismatch it returns a ChecksumMismatchError and a nil
// bitmap — mirroring the original's free-and-null-on-mismatch policy,
// never a "valid but flagged" value.
func ReadFrom(r io.Reader) (*Bitmap, int64, error) {
	var sizeBuf [8]byte
	n, err := io.ReadFull(r, sizeBuf[:])
	total := int64(n)
	if err != nil {
		return nil, total, err
	}
	size := binary.LittleEndian.Uint64(sizeBuf[:])
	byteSize := (size + 7) / 8

	data := make([]byte, byteSize)
	n, err = io.ReadFull(r, data)
	total += int64(n)
	if err != nil {
		return nil, total, err
	}

	var checksum [32]byte
	n, err = io.ReadFull(r, checksum[:])
	total += int64(n)
	if err != nil {
		return nil, total, err
	}

	b := &Bitmap{Size: size, ByteSize: byteSize, Data: data, Checksum: checksum}
	if checksum != zeroDigest && !b.VerifyChecksum() {
		got := sha256.Sum256(data[:byteSize])
		return nil, total, &ChecksumMismatchError{Want: checksum, Got: got}
	}
	return b, total, nil
}

// ChecksumMismatchError indicates a deserialized bitmap's stored checksum
// does not match its recomputed SHA-256 digest.
type ChecksumMismatchError struct {
	Want, Got [32]byte
}

func (e *ChecksumMismatchError) Error() string {
	return "bitmap: checksum mismatch"
}
