// Package fs implements filesystem-backed fingerprinting for the build cache.
package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes project fingerprints with xxhash.
type Fingerprinter struct {
	walker *Walker
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(walker *Walker) *Fingerprinter {
	return &Fingerprinter{walker: walker}
}

// Fingerprint hashes the resolved input files under root together with the
// salt values. File ordering and glob expansion order do not affect the
// result: paths are resolved, deduplicated and sorted before hashing.
func (f *Fingerprinter) Fingerprint(root string, inputs []string, salt ...string) (domain.Fingerprint, error) {
	files, err := f.resolve(root, inputs)
	if err != nil {
		return "", err
	}

	hashes, err := f.hashFiles(files)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for _, s := range salt {
		_, _ = hasher.WriteString(s)
		_, _ = hasher.Write([]byte{0})
	}
	for _, file := range files {
		rel, relErr := filepath.Rel(root, file)
		if relErr != nil {
			rel = file
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})
		if err := binary.Write(hasher, binary.LittleEndian, hashes[file]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64())), nil
}

// resolve expands globs and directories into a sorted, deduplicated file list.
func (f *Fingerprinter) resolve(root string, inputs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, input := range inputs {
		path := filepath.Join(root, input)

		info, err := os.Stat(path)
		if err != nil {
			matches, globErr := filepath.Glob(path)
			if globErr != nil || len(matches) == 0 {
				return nil, zerr.With(zerr.New("input not found"), "path", path)
			}
			for _, match := range matches {
				if err := f.addPath(match, add); err != nil {
					return nil, err
				}
			}
			continue
		}

		if info.IsDir() {
			for filePath := range f.walker.WalkFiles(path, nil) {
				add(filePath)
			}
		} else {
			add(path)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (f *Fingerprinter) addPath(path string, add func(string)) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat input"), "path", path)
	}
	if info.IsDir() {
		for filePath := range f.walker.WalkFiles(path, nil) {
			add(filePath)
		}
		return nil
	}
	add(path)
	return nil
}

// hashFiles computes per-file content hashes, fanned out across CPUs.
func (f *Fingerprinter) hashFiles(files []string) (map[string]uint64, error) {
	hashes := make(map[string]uint64, len(files))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		g.Go(func() error {
			h, err := hashFile(file)
			if err != nil {
				return err
			}
			mu.Lock()
			hashes[file] = h
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}

func hashFile(path string) (uint64, error) {
	fh, err := os.Open(path) //nolint:gosec // path resolved from configured inputs
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer fh.Close() //nolint:errcheck // best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, fh); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}
