package intarray

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
)

var zeroDigest [32]byte

func elemSize[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		panic(fmt.Sprintf("intarray: unsupported element type %T", zero))
	}
}

// payloadBytes encodes the active payload as little-endian bytes.
func (a *Array[T]) payloadBytes() []byte {
	width := elemSize[T]()
	buf := make([]byte, a.Count*width)
	for i, v := range a.Slice() {
		off := i * width
		switch width {
		case 2:
			binary.LittleEndian.PutUint16(buf[off:], uint16(v))
		case 4:
			binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		case 8:
			binary.LittleEndian.PutUint64(buf[off:], uint64(v))
		}
	}
	return buf
}

// ComputeChecksum computes the SHA-256 digest over the active payload.
func (a *Array[T]) ComputeChecksum() {
	a.Checksum = sha256.Sum256(a.payloadBytes())
}

// VerifyChecksum reports whether the stored checksum matches a freshly
// computed digest of the active payload.
func (a *Array[T]) VerifyChecksum() bool {
	return sha256.Sum256(a.payloadBytes()) == a.Checksum
}

// WriteTo serializes [count:i32 LE][payload:count*width bytes]
// [checksum:32 bytes], per spec §6's persisted-format layout.
func (a *Array[T]) WriteTo(w io.Writer) (int64, error) {
	if a.Checksum == zeroDigest {
		a.ComputeChecksum()
	}

	var total int64
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(a.Count))
	n, err := w.Write(countBuf[:])
	total += int64(n)
	if err != nil {
		return total, err
	}

	payload := a.payloadBytes()
	n, err = w.Write(payload)
	total += int64(n)
	if err != nil {
		return total, err
	}

	n, err = w.Write(a.Checksum[:])
	total += int64(n)
	return total, err
}

// ReadFrom deserializes an array written by WriteTo and verifies its
// checksum, returning a ChecksumMismatchError and a nil array on failure
// — never a "valid but flagged" value.
func ReadFrom[T Unsigned](r io.Reader) (*Array[T], int64, error) {
	width := elemSize[T]()

	var countBuf [4]byte
	n, err := io.ReadFull(r, countBuf[:])
	total := int64(n)
	if err != nil {
		return nil, total, err
	}
	count := int(binary.LittleEndian.Uint32(countBuf[:]))

	payload := make([]byte, count*width)
	n, err = io.ReadFull(r, payload)
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

	if checksum != zeroDigest {
		got := sha256.Sum256(payload)
		if got != checksum {
			return nil, total, &ChecksumMismatchError{Want: checksum, Got: got}
		}
	}

	a := New[T](count)
	for i := 0; i < count; i++ {
		off := i * width
		var v T
		switch width {
		case 2:
			v = T(binary.LittleEndian.Uint16(payload[off:]))
		case 4:
			v = T(binary.LittleEndian.Uint32(payload[off:]))
		case 8:
			v = T(binary.LittleEndian.Uint64(payload[off:]))
		}
		a.Push(v)
	}
	a.Checksum = checksum
	return a, total, nil
}

// ChecksumMismatchError indicates a deserialized array's stored checksum
// does not match its recomputed SHA-256 digest.
type ChecksumMismatchError struct {
	Want, Got [32]byte
}

func (e *ChecksumMismatchError) Error() string {
	return "intarray: checksum mismatch"
}
