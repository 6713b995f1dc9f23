package cache

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

const remoteTimeout = 5 * time.Minute

var _ ports.BuildCache = (*Remote)(nil)

// Remote implements ports.BuildCache against an HTTP artifact store. Binaries
// travel as tar streams under GET/PUT <base>/artifacts/<fingerprint>.
type Remote struct {
	baseURL string
	dir     string
	client  *http.Client
}

// NewRemote creates a Remote provider. Downloaded artifacts are unpacked
// under dir.
func NewRemote(baseURL, dir string) *Remote {
	return &Remote{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		dir:     dir,
		client:  &http.Client{Timeout: remoteTimeout},
	}
}

func (r *Remote) artifactURL(fp domain.Fingerprint) string {
	return fmt.Sprintf("%s/artifacts/%s", r.baseURL, fp.String())
}

// Resolve downloads the artifact for the fingerprint. A 404 is a miss, not
// an error.
func (r *Remote) Resolve(ctx context.Context, fp domain.Fingerprint) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.artifactURL(fp), nil)
	if err != nil {
		return "", false, zerr.Wrap(err, "failed to build cache request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", false, zerr.Wrap(err, "build cache request failed")
	}
	defer resp.Body.Close() //nolint:errcheck // best effort close in defer

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, zerr.With(zerr.New("unexpected build cache response"), "status", resp.StatusCode)
	}

	dst := filepath.Join(r.dir, fp.String())
	if err := os.RemoveAll(dst); err != nil {
		return "", false, zerr.Wrap(err, "failed to clear artifact slot")
	}
	root, err := untar(resp.Body, dst)
	if err != nil {
		return "", false, err
	}
	return root, true, nil
}

// Upload streams the record's binary as a tar archive.
func (r *Remote) Upload(ctx context.Context, rec domain.BuildRecord) error {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(tarTree(rec.BinaryPath, pw))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.artifactURL(rec.Fingerprint), pr)
	if err != nil {
		return zerr.Wrap(err, "failed to build cache upload request")
	}
	req.Header.Set("Content-Type", "application/x-tar")

	resp, err := r.client.Do(req)
	if err != nil {
		return zerr.Wrap(err, "build cache upload failed")
	}
	defer resp.Body.Close() //nolint:errcheck // best effort close in defer

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return zerr.With(zerr.New("unexpected build cache response"), "status", resp.StatusCode)
	}
	return nil
}

// tarTree writes the file or directory at src into w. Entries are named
// relative to src's parent so the artifact unpacks under its own base name.
func tarTree(src string, w io.Writer) error {
	tw := tar.NewWriter(w)
	base := filepath.Dir(src)

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path) //nolint:gosec // path comes from the build output
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck // best effort close in defer

		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return zerr.Wrap(err, "failed to archive binary")
	}
	return tw.Close()
}

// untar unpacks the stream into dst and returns the path of the single
// top-level entry.
func untar(rd io.Reader, dst string) (string, error) {
	tr := tar.NewReader(rd)
	var root string

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", zerr.Wrap(err, "failed to read cached artifact")
		}

		name := filepath.Clean(hdr.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return "", zerr.With(zerr.New("invalid artifact entry"), "name", hdr.Name)
		}

		target := filepath.Join(dst, name)
		if root == "" {
			top := name
			if i := strings.IndexByte(name, filepath.Separator); i > 0 {
				top = name[:i]
			}
			root = filepath.Join(dst, top)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o750); err != nil {
				return "", zerr.Wrap(err, "failed to create artifact directory")
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return "", zerr.Wrap(err, "failed to create artifact directory")
			}
			//nolint:gosec // entry names are validated above
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fs.FileMode(hdr.Mode))
			if err != nil {
				return "", zerr.Wrap(err, "failed to create artifact file")
			}
			//nolint:gosec // trusted cache endpoint; size bounded by the artifact
			if _, err := io.Copy(f, tr); err != nil {
				_ = f.Close()
				return "", zerr.Wrap(err, "failed to unpack artifact file")
			}
			if err := f.Close(); err != nil {
				return "", zerr.Wrap(err, "failed to close artifact file")
			}
		}
	}

	if root == "" {
		return "", zerr.New("cached artifact is empty")
	}
	return root, nil
}
