// Package selfupdate replaces the running uppies executable with the
// latest released build.
package selfupdate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bradcypert/uppies/internal/compare"
)

// ReleaseSource provides latest-release metadata.
type ReleaseSource interface {
	LatestRelease() (*Release, error)
}

// ArchiveFetcher downloads and extracts a release archive.
type ArchiveFetcher interface {
	DownloadAndExtract(url, destDir string) error
}

// Options configures one self-update run.
type Options struct {
	CurrentVersion string         // Embedded build-time version of the running binary
	Source         ReleaseSource  // Release metadata source
	Fetcher        ArchiveFetcher // Archive downloader
	ExecutablePath string         // Target executable; empty means the running binary
	Out            io.Writer      // Progress output, defaults to os.Stdout
}

// Run executes the self-update protocol: fetch the latest release,
// compare versions, select the platform asset, download and extract it,
// and atomically swap the running executable. Unlike the per-app update
// loop, any failure here is fatal to the whole flow; steps before the
// final rename never mutate the real executable path.
func Run(opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, "Checking for updates...")

	release, err := opts.Source.LatestRelease()
	if err != nil {
		return fmt.Errorf("failed to fetch release info: %w", err)
	}

	current := compare.Normalize(opts.CurrentVersion)
	latest := compare.Normalize(release.TagName)

	fmt.Fprintf(out, "Current version: %s\n", current)
	fmt.Fprintf(out, "Latest version:  %s\n", latest)

	currentVer, err := compare.ParseVersion(current)
	if err != nil {
		return fmt.Errorf("invalid current version: %w", err)
	}
	latestVer, err := compare.ParseVersion(latest)
	if err != nil {
		return fmt.Errorf("invalid latest version: %w", err)
	}

	switch cmp := currentVer.Compare(latestVer); {
	case cmp == 0:
		fmt.Fprintln(out, "Already up to date!")
		return nil
	case cmp > 0:
		fmt.Fprintln(out, "Current version is newer than latest release")
		return nil
	}

	platform, err := Detect()
	if err != nil {
		return err
	}

	assetName := platform.AssetName()
	asset, ok := release.FindAsset(assetName)
	if !ok {
		return fmt.Errorf("no asset found for platform: %s", assetName)
	}

	fmt.Fprintf(out, "\nDownloading uppies %s...\n", release.TagName)

	// Timestamp-named to avoid collision across successive invocations.
	tmpDir := filepath.Join(os.TempDir(), fmt.Sprintf("uppies-update-%d", time.Now().Unix()))
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	if err := opts.Fetcher.DownloadAndExtract(asset.BrowserDownloadURL, tmpDir); err != nil {
		return err
	}

	exePath := opts.ExecutablePath
	if exePath == "" {
		exePath, err = os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate current executable: %w", err)
		}
		exePath, err = filepath.EvalSymlinks(exePath)
		if err != nil {
			return fmt.Errorf("failed to resolve executable path: %w", err)
		}
	}

	fmt.Fprintln(out, "Installing...")
	if err := NewBinaryReplacer(exePath).Replace(filepath.Join(tmpDir, "uppies")); err != nil {
		return err
	}

	// Best-effort cleanup; a leftover temp dir is not a failure.
	_ = os.RemoveAll(tmpDir)

	fmt.Fprintf(out, "\n✓ Successfully updated to version %s!\n", latest)
	return nil
}
