package persistence

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionCodec selects how a snapshot's byte stream is compressed
// before it is written to a blobstore.WritableBlob.
type CompressionCodec int

const (
	// CodecNone writes the stream uncompressed.
	CodecNone CompressionCodec = iota
	// CodecZstd compresses with zstd, the default: better ratio, higher
	// CPU cost per byte.
	CodecZstd
	// CodecLZ4 compresses with lz4: lower latency, worse ratio, useful
	// when a snapshot sink is network-bound rather than storage-bound.
	CodecLZ4
)

func (c CompressionCodec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("CompressionCodec(%d)", int(c))
	}
}

// NewEncoder wraps w so writes to the returned writer are compressed
// according to c. The caller must Close the returned writer to flush
// the compressor; closing it does not close w.
func NewEncoder(c CompressionCodec, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("persistence: new zstd encoder: %w", err)
		}
		return enc, nil
	case CodecLZ4:
		zw := lz4.NewWriter(w)
		return zw, nil
	default:
		return nil, fmt.Errorf("persistence: unknown codec %v", c)
	}
}

// NewDecoder wraps r so reads from the returned reader are decompressed
// according to c.
func NewDecoder(c CompressionCodec, r io.Reader) (io.Reader, func(), error) {
	switch c {
	case CodecNone:
		return r, func() {}, nil
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("persistence: new zstd decoder: %w", err)
		}
		return dec, dec.Close, nil
	case CodecLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("persistence: unknown codec %v", c)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
