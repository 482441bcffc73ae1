// Package persistence provides checksum and compression primitives for
// exporting a prime-stream snapshot through a blobstore.WritableBlob
// (rangedriver.SiZStream itself writes only to a local file or stdout):
// ChecksumWriter/ChecksumReader guard against storage corruption, and
// NewEncoder/NewDecoder select between zstd and lz4 for the prime-stream
// byte payload.
package persistence
