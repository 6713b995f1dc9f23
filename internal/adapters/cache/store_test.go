package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/cache"
	"go.liftoff.dev/liftoff/internal/core/domain"
)

func buildRecord(fp domain.Fingerprint, path string) domain.BuildRecord {
	return domain.BuildRecord{Fingerprint: fp, BinaryPath: path, Scheme: "App", Configuration: "Debug"}
}

func writeArtifact(t *testing.T, dir string) string {
	t.Helper()
	app := filepath.Join(dir, "App.app")
	require.NoError(t, os.MkdirAll(filepath.Join(app, "Frameworks"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app, "App"), []byte("binary"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app, "Info.plist"), []byte("plist"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(app, "Frameworks", "lib.dylib"), []byte("lib"), 0o644))
	return app
}

func TestStore_MissOnEmptyStore(t *testing.T) {
	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Resolve(context.Background(), "deadbeefdeadbeef")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_UploadResolveRoundtrip(t *testing.T) {
	app := writeArtifact(t, t.TempDir())
	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	fp := domain.Fingerprint("deadbeefdeadbeef")
	require.NoError(t, store.Upload(context.Background(), buildRecord(fp, app)))

	path, ok, err := store.Resolve(context.Background(), fp)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEqual(t, app, path)

	content, err := os.ReadFile(filepath.Join(path, "App"))
	require.NoError(t, err)
	require.Equal(t, "binary", string(content))

	content, err = os.ReadFile(filepath.Join(path, "Frameworks", "lib.dylib"))
	require.NoError(t, err)
	require.Equal(t, "lib", string(content))
}

func TestStore_IndexSurvivesReopen(t *testing.T) {
	app := writeArtifact(t, t.TempDir())
	dir := t.TempDir()

	store, err := cache.NewStore(dir)
	require.NoError(t, err)
	fp := domain.Fingerprint("cafecafecafecafe")
	require.NoError(t, store.Upload(context.Background(), buildRecord(fp, app)))

	reopened, err := cache.NewStore(dir)
	require.NoError(t, err)

	path, ok, err := reopened.Resolve(context.Background(), fp)
	require.NoError(t, err)
	require.True(t, ok)
	require.DirExists(t, path)
}

func TestStore_IndexCarriesSchemeAndConfiguration(t *testing.T) {
	app := writeArtifact(t, t.TempDir())
	dir := t.TempDir()

	store, err := cache.NewStore(dir)
	require.NoError(t, err)
	fp := domain.Fingerprint("deadbeefdeadbeef")
	require.NoError(t, store.Upload(context.Background(), domain.BuildRecord{
		Fingerprint:   fp,
		BinaryPath:    app,
		Scheme:        "App",
		Configuration: "Release",
	}))

	index, err := os.ReadFile(filepath.Join(dir, "index.json"))
	require.NoError(t, err)
	require.Contains(t, string(index), `"scheme": "App"`)
	require.Contains(t, string(index), `"configuration": "Release"`)
}

func TestStore_StaleEntryIsMiss(t *testing.T) {
	app := writeArtifact(t, t.TempDir())
	dir := t.TempDir()

	store, err := cache.NewStore(dir)
	require.NoError(t, err)
	fp := domain.Fingerprint("feedfeedfeedfeed")
	require.NoError(t, store.Upload(context.Background(), buildRecord(fp, app)))

	path, ok, err := store.Resolve(context.Background(), fp)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, os.RemoveAll(path))

	_, ok, err = store.Resolve(context.Background(), fp)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_UploadReplacesExistingArtifact(t *testing.T) {
	srcDir := t.TempDir()
	app := writeArtifact(t, srcDir)
	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	fp := domain.Fingerprint("0123456789abcdef")
	require.NoError(t, store.Upload(context.Background(), buildRecord(fp, app)))

	require.NoError(t, os.WriteFile(filepath.Join(app, "App"), []byte("rebuilt"), 0o755))
	require.NoError(t, store.Upload(context.Background(), buildRecord(fp, app)))

	path, ok, err := store.Resolve(context.Background(), fp)
	require.NoError(t, err)
	require.True(t, ok)

	content, err := os.ReadFile(filepath.Join(path, "App"))
	require.NoError(t, err)
	require.Equal(t, "rebuilt", string(content))
}
