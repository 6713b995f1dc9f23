package notify

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.trai.ch/zerr"
)

// state is the persisted notification bookkeeping for one app on one device:
// permission status, badge count, registered categories, pending and
// delivered ids. Pending ids are shared with other processes so a cancel
// invocation can reach triggers armed elsewhere.
type state struct {
	Permission domain.PermissionStatus `json:"permission"`
	Badge      int                     `json:"badge"`
	Categories []domain.Category       `json:"categories,omitempty"`
	Pending    []string                `json:"pending,omitempty"`
	Delivered  []string                `json:"delivered,omitempty"`
}

// stateStore persists state as a flat JSON file.
type stateStore struct {
	path  string
	mu    sync.Mutex
	state state
}

func newStateStore(path string) (*stateStore, error) {
	s := &stateStore{
		path:  filepath.Clean(path),
		state: state{Permission: domain.PermissionUndetermined},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load replaces the in-memory state with the file's contents. It is also
// called before pending-id lookups so writes from other processes are seen.
func (s *stateStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked()
}

func (s *stateStore) loadLocked() error {
	s.state = state{Permission: domain.PermissionUndetermined}

	//nolint:gosec // path is derived from the state directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read notification state")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		return zerr.Wrap(err, "failed to unmarshal notification state")
	}
	if s.state.Permission == "" {
		s.state.Permission = domain.PermissionUndetermined
	}
	return nil
}

// update rereads the file, applies fn under the lock and persists the
// result. Rereading first keeps concurrent liftoff processes from clobbering
// each other's writes.
func (s *stateStore) update(fn func(*state)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}
	fn(&s.state)

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal notification state")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}

	//nolint:gosec // path is derived from the state directory
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write notification state")
	}
	return nil
}

// snapshot returns a copy of the current state.
func (s *stateStore) snapshot() state {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := s.state
	cp.Pending = append([]string(nil), s.state.Pending...)
	cp.Delivered = append([]string(nil), s.state.Delivered...)
	cp.Categories = append([]domain.Category(nil), s.state.Categories...)
	return cp
}
