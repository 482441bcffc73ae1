// Package manifest implements checkpoint records and stores for
// long-running SiZ_count and SiZ_stream jobs (spec §4.7, domain stack), so
// a killed process can resume from the last saved checkpoint instead of
// re-sieving [Zs, Ze] from the start. rangedriver does not save or load
// checkpoints itself; the caller does.
package manifest

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/izprime/izsieve/internal/fs"
)

const (
	ManifestFileName = "MANIFEST"
	CurrentFileName  = "CURRENT"
	CurrentVersion   = 1
)

// Run is a checkpoint of one SiZ_count/SiZ_stream invocation's progress:
// enough to resume the row sweep without re-deciding vx or re-marking
// completed rows.
type Run struct {
	Version           int       `json:"version"`
	RunID             uuid.UUID `json:"run_id"`
	Zs                uint64    `json:"zs"`
	Ze                uint64    `json:"ze"`
	VX                uint64    `json:"vx"`
	CompletedSegments uint64    `json:"completed_segments"` // rows completed, counted from the first row of the sweep
	PartialTotal      uint64    `json:"partial_total"`
	MRRounds          int       `json:"mr_rounds"`
}

// Matches reports whether a loaded Run is a valid resume point for the
// given run parameters (same interval and wheel width — a different vx
// changes the row grid entirely, so a checkpoint under a different vx
// can't be resumed from).
func (r *Run) Matches(zs, ze, vx uint64) bool {
	return r != nil && r.Zs == zs && r.Ze == ze && r.VX == vx
}

// Store manages the manifest file and atomic updates, the same
// write-temp-then-rename-CURRENT pattern the teacher's index manifest used
// for crash-safe segment-list updates, re-keyed to a sieve run's progress.
type Store struct {
	fs  fs.FileSystem
	dir string
	mu  sync.Mutex
}

// NewStore creates a new manifest store rooted at dir.
func NewStore(fsys fs.FileSystem, dir string) *Store {
	return &Store{fs: fsys, dir: dir}
}

// Load loads the current checkpoint, or nil if none has been saved yet.
func (s *Store) Load() (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	readFile := func(path string) ([]byte, error) {
		f, err := s.fs.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	currentPath := filepath.Join(s.dir, CurrentFileName)
	content, err := readFile(currentPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(s.dir, string(content))
	payload, err := readFile(manifestPath)
	if err != nil {
		return nil, err
	}

	return decodeRun(payload)
}

// Save atomically persists a new checkpoint, replacing the previous one.
func (s *Store) Save(r *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Version = CurrentVersion
	payload := encodeRun(r)

	filename := fmt.Sprintf("%s-%s-%06d.json", ManifestFileName, r.RunID, r.CompletedSegments)
	path := filepath.Join(s.dir, filename)

	if err := s.writeAtomic(path, payload); err != nil {
		return err
	}
	if err := s.syncDir(s.dir); err != nil {
		return err
	}

	if err := s.writeAtomic(filepath.Join(s.dir, CurrentFileName), []byte(filename)); err != nil {
		return err
	}
	return s.syncDir(s.dir)
}

func (s *Store) writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := s.fs.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fs.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		s.fs.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tmpPath)
		return err
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		s.fs.Remove(tmpPath)
		return err
	}
	return nil
}

func (s *Store) syncDir(dir string) error {
	f, err := s.fs.OpenFile(dir, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

// encodeRun serializes r to JSON and appends a SHA-256 digest of that
// payload, the same "document plus trailing checksum" shape bitmap/intarray
// use for their binary formats (spec's data model calls for SHA-256
// integrity everywhere a persisted record can be silently corrupted).
func encodeRun(r *Run) []byte {
	body, err := json.Marshal(r)
	if err != nil {
		panic(fmt.Sprintf("manifest: run record does not marshal: %v", err))
	}
	sum := sha256.Sum256(body)
	out := make([]byte, 0, len(body)+8+32)
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(body)))
	out = append(out, lenBuf[:]...)
	out = append(out, body...)
	out = append(out, sum[:]...)
	return out
}

// ChecksumMismatchError indicates a loaded checkpoint's trailing digest does
// not match its recomputed SHA-256 over the JSON payload.
type ChecksumMismatchError struct {
	Want, Got [32]byte
}

func (e *ChecksumMismatchError) Error() string {
	return "manifest: checksum mismatch"
}

func decodeRun(payload []byte) (*Run, error) {
	if len(payload) < 8+32 {
		return nil, fmt.Errorf("manifest: truncated record (%d bytes)", len(payload))
	}
	bodyLen := binary.LittleEndian.Uint64(payload[:8])
	if uint64(len(payload)) != 8+bodyLen+32 {
		return nil, fmt.Errorf("manifest: record length mismatch")
	}
	body := payload[8 : 8+bodyLen]
	var want [32]byte
	copy(want[:], payload[8+bodyLen:])
	got := sha256.Sum256(body)
	if got != want {
		return nil, &ChecksumMismatchError{Want: want, Got: got}
	}

	var r Run
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, err
	}
	if r.Version != CurrentVersion {
		return nil, fmt.Errorf("manifest: unsupported version %d (expected %d)", r.Version, CurrentVersion)
	}
	return &r, nil
}
