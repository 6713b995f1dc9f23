package domain

import "time"

// Fingerprint is a 16-hex-digit content hash identifying a buildable state of
// the project: the configured input files plus scheme and configuration. Two
// checkouts with the same fingerprint produce interchangeable binaries.
type Fingerprint string

// String returns the hex form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// BuildRecord is the local cache index entry for a stored binary.
type BuildRecord struct {
	Fingerprint   Fingerprint `json:"fingerprint"`
	BinaryPath    string      `json:"binary_path"`
	Scheme        string      `json:"scheme"`
	Configuration string      `json:"configuration"`
	Timestamp     time.Time   `json:"timestamp"`
}
