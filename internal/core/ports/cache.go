package ports

import (
	"context"

	"go.liftoff.dev/liftoff/internal/core/domain"
)

// BuildCache stores and retrieves prebuilt binaries keyed by project
// fingerprint.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BuildCache interface {
	// Resolve returns the path to a cached binary for the fingerprint. The
	// second return reports whether the cache held one; a miss is not an
	// error.
	Resolve(ctx context.Context, fp domain.Fingerprint) (string, bool, error)

	// Upload stores the binary described by the record under its
	// fingerprint.
	Upload(ctx context.Context, rec domain.BuildRecord) error
}
