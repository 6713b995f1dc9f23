package cache

import (
	"context"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

var _ ports.BuildCache = (*Tiered)(nil)

// Tiered composes a local store and a remote provider: resolve checks the
// local tier first and back-fills it on a remote hit; upload writes through
// to both.
type Tiered struct {
	local  *Store
	remote ports.BuildCache
	logger ports.Logger
}

// NewTiered creates a Tiered cache. remote may be nil, in which case only
// the local tier is consulted.
func NewTiered(local *Store, remote ports.BuildCache, logger ports.Logger) *Tiered {
	return &Tiered{local: local, remote: remote, logger: logger}
}

// Resolve checks the local tier, then the remote one.
func (t *Tiered) Resolve(ctx context.Context, fp domain.Fingerprint) (string, bool, error) {
	path, ok, err := t.local.Resolve(ctx, fp)
	if err != nil {
		return "", false, err
	}
	if ok {
		return path, true, nil
	}

	if t.remote == nil {
		return "", false, nil
	}

	path, ok, err = t.remote.Resolve(ctx, fp)
	if err != nil || !ok {
		return "", ok, err
	}

	// Back-fill the local tier. A failure here only costs the next resolve.
	if err := t.local.Upload(ctx, domain.BuildRecord{Fingerprint: fp, BinaryPath: path}); err != nil {
		t.logger.Warn("failed to back-fill local build cache: " + err.Error())
		return path, true, nil
	}

	localPath, ok, err := t.local.Resolve(ctx, fp)
	if err == nil && ok {
		return localPath, true, nil
	}
	return path, true, nil
}

// Upload writes the binary to both tiers.
func (t *Tiered) Upload(ctx context.Context, rec domain.BuildRecord) error {
	if err := t.local.Upload(ctx, rec); err != nil {
		return err
	}
	if t.remote == nil {
		return nil
	}
	return t.remote.Upload(ctx, rec)
}
