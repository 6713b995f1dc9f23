// Package cache implements the build cache: a local content-addressed store,
// a remote HTTP provider, and a tiered composite of the two.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

const indexFilename = "index.json"

var _ ports.BuildCache = (*Store)(nil)

// Store implements ports.BuildCache on the local filesystem. Artifacts live
// under dir/<fingerprint>/, and a flat JSON index maps fingerprints to build
// records.
type Store struct {
	dir   string
	mu    sync.RWMutex
	index map[domain.Fingerprint]domain.BuildRecord
}

// NewStore creates a Store rooted at dir, loading the existing index if any.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:   filepath.Clean(dir),
		index: make(map[domain.Fingerprint]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is derived from the configured cache dir
	data, err := os.ReadFile(filepath.Join(s.dir, indexFilename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cache index")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.index); err != nil {
		return zerr.Wrap(err, "failed to unmarshal cache index")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache index")
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	//nolint:gosec // path is derived from the configured cache dir
	if err := os.WriteFile(filepath.Join(s.dir, indexFilename), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache index")
	}

	return nil
}

// Resolve returns the stored binary for the fingerprint. A missing index
// entry or a stale entry whose artifact disappeared are both misses.
func (s *Store) Resolve(_ context.Context, fp domain.Fingerprint) (string, bool, error) {
	s.mu.RLock()
	record, ok := s.index[fp]
	s.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	if _, err := os.Stat(record.BinaryPath); err != nil {
		return "", false, nil
	}
	return record.BinaryPath, true, nil
}

// Upload copies the record's binary into the store and indexes it under the
// record's fingerprint.
func (s *Store) Upload(_ context.Context, rec domain.BuildRecord) error {
	dst := filepath.Join(s.dir, rec.Fingerprint.String(), filepath.Base(rec.BinaryPath))

	if err := os.RemoveAll(filepath.Dir(dst)); err != nil {
		return zerr.Wrap(err, "failed to clear artifact slot")
	}
	if err := copyTree(rec.BinaryPath, dst); err != nil {
		return err
	}

	rec.BinaryPath = dst
	rec.Timestamp = time.Now()
	s.mu.Lock()
	s.index[rec.Fingerprint] = rec
	s.mu.Unlock()

	return s.save()
}

// copyTree copies a file or directory tree from src to dst.
func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	if !info.IsDir() {
		return copyFile(src, dst, info.Mode())
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, fi.Mode())
	})
}

func copyFile(src, dst string, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}

	in, err := os.Open(src) //nolint:gosec // path comes from the build output
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode) //nolint:gosec // destination is inside the cache dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy file")
	}
	return out.Close()
}
