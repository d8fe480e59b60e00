package selfupdate

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// HTTPFetcher downloads release archives over HTTP and extracts them.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a new archive fetcher.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{}}
}

// DownloadAndExtract downloads the gzip-compressed tar archive at url
// into destDir and extracts it in place. The downloaded archive file is
// removed after extraction.
func (f *HTTPFetcher) DownloadAndExtract(url, destDir string) error {
	archivePath := filepath.Join(destDir, "uppies-download.tar.gz")

	if err := f.download(url, archivePath); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	err := extractTarGz(archivePath, destDir)
	_ = os.Remove(archivePath)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	return nil
}

// download fetches url into dst.
func (f *HTTPFetcher) download(url, dst string) error {
	resp, err := f.client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// extractTarGz unpacks a tar.gz archive into destDir. Entries that
// would escape destDir are rejected.
func extractTarGz(archivePath, destDir string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := sanitizePath(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		default:
			// Symlinks and other entry types are not expected in
			// release archives; skip them.
		}
	}
}

// sanitizePath joins name under destDir, rejecting path traversal.
// A "./" entry (produced by `tar -czf asset.tar.gz -C dir .`) resolves
// to destDir itself and is the destination, not an escape.
func sanitizePath(destDir, name string) (string, error) {
	base := filepath.Clean(destDir)
	target := filepath.Join(base, name)
	if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return target, nil
}
