package selfupdate

import (
	"fmt"
	"runtime"
)

// Platform is one of the supported OS/architecture pairs, in release
// asset naming (linux|macos × x86_64|aarch64).
type Platform struct {
	OS   string
	Arch string
}

var (
	osNames   = map[string]string{"linux": "linux", "darwin": "macos"}
	archNames = map[string]string{"amd64": "x86_64", "arm64": "aarch64"}
)

// Detect maps the running OS and CPU architecture to a canonical
// platform. Any unsupported combination is fatal for the self-update
// flow; no best-effort guess is made.
func Detect() (Platform, error) {
	return resolve(runtime.GOOS, runtime.GOARCH)
}

func resolve(goos, goarch string) (Platform, error) {
	os, okOS := osNames[goos]
	arch, okArch := archNames[goarch]
	if !okOS || !okArch {
		return Platform{}, fmt.Errorf("unsupported platform: %s/%s", goos, goarch)
	}
	return Platform{OS: os, Arch: arch}, nil
}

// AssetName returns the release asset name for this platform,
// e.g. "uppies-linux-x86_64.tar.gz".
func (p Platform) AssetName() string {
	return fmt.Sprintf("uppies-%s-%s.tar.gz", p.OS, p.Arch)
}
