package ports

import "go.liftoff.dev/liftoff/internal/core/domain"

// Fingerprinter computes the project fingerprint used as the build-cache key.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint hashes the resolved input files under root together with
	// the salt values (scheme, configuration). The result is deterministic
	// across file and glob ordering.
	Fingerprint(root string, inputs []string, salt ...string) (domain.Fingerprint, error)
}
