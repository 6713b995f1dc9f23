package cache_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/cache"
	"go.liftoff.dev/liftoff/internal/core/domain"
)

// artifactServer is an in-memory stand-in for a build cache endpoint.
type artifactServer struct {
	mu        sync.Mutex
	artifacts map[string][]byte
}

func newArtifactServer() *artifactServer {
	return &artifactServer{artifacts: make(map[string][]byte)}
}

func (s *artifactServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		data, ok := s.artifacts[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(data)
	case http.MethodPut:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.artifacts[r.URL.Path] = data
		w.WriteHeader(http.StatusCreated)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestRemote_UploadResolveRoundtrip(t *testing.T) {
	backend := newArtifactServer()
	srv := httptest.NewServer(backend)
	defer srv.Close()

	app := writeArtifact(t, t.TempDir())
	remote := cache.NewRemote(srv.URL, t.TempDir())

	fp := domain.Fingerprint("deadbeefdeadbeef")
	require.NoError(t, remote.Upload(context.Background(), buildRecord(fp, app)))
	require.Contains(t, backend.artifacts, "/artifacts/deadbeefdeadbeef")

	path, ok, err := remote.Resolve(context.Background(), fp)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "App.app", filepath.Base(path))

	content, err := os.ReadFile(filepath.Join(path, "App"))
	require.NoError(t, err)
	require.Equal(t, "binary", string(content))

	content, err = os.ReadFile(filepath.Join(path, "Frameworks", "lib.dylib"))
	require.NoError(t, err)
	require.Equal(t, "lib", string(content))
}

func TestRemote_NotFoundIsMiss(t *testing.T) {
	srv := httptest.NewServer(newArtifactServer())
	defer srv.Close()

	remote := cache.NewRemote(srv.URL, t.TempDir())

	_, ok, err := remote.Resolve(context.Background(), "deadbeefdeadbeef")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRemote_ServerErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	remote := cache.NewRemote(srv.URL, t.TempDir())

	_, _, err := remote.Resolve(context.Background(), "deadbeefdeadbeef")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected build cache response")

	err = remote.Upload(context.Background(), buildRecord("deadbeefdeadbeef", writeArtifact(t, t.TempDir())))
	require.Error(t, err)
}

func TestRemote_TrailingSlashBaseURL(t *testing.T) {
	backend := newArtifactServer()
	srv := httptest.NewServer(backend)
	defer srv.Close()

	app := writeArtifact(t, t.TempDir())
	remote := cache.NewRemote(srv.URL+"/", t.TempDir())

	require.NoError(t, remote.Upload(context.Background(), buildRecord("cafecafecafecafe", app)))
	require.Contains(t, backend.artifacts, "/artifacts/cafecafecafecafe")
}
