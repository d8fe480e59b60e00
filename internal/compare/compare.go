// Package compare decides whether an update is needed for a pair of
// version strings.
package compare

import (
	"fmt"
	"strings"
)

// Mode selects how two version strings are judged.
type Mode string

const (
	// ModeString treats versions as opaque identifiers: any difference
	// means an update is needed. Suitable for build hashes and digests
	// where "newer" has no meaning.
	ModeString Mode = "string"
	// ModeSemver orders versions by semantic-versioning precedence.
	ModeSemver Mode = "semver"
)

// Validate checks that the mode is a known value. An empty mode is
// valid and treated as ModeString.
func (m Mode) Validate() error {
	switch m {
	case "", ModeString, ModeSemver:
		return nil
	default:
		return fmt.Errorf("invalid compare mode '%s' (must be string or semver)", m)
	}
}

// Normalize canonicalizes raw script output into a comparable version
// token: surrounding whitespace is trimmed and a single leading 'v' is
// stripped, so "v1.2.3\n" and "1.2.3" compare equal. Idempotent.
func Normalize(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "v")
}

// NeedsUpdate reports whether local should be updated to remote under
// the given mode. Both inputs must already be normalized.
//
// In string mode any byte difference triggers an update. In semver mode
// an update is needed iff local < remote; a local version ahead of
// remote is not an update. If either string fails to parse as semver
// the comparison fails — it never falls back to string comparison.
func NeedsUpdate(mode Mode, local, remote string) (bool, error) {
	switch mode {
	case ModeSemver:
		localVer, localErr := ParseVersion(local)
		remoteVer, remoteErr := ParseVersion(remote)
		if localErr != nil || remoteErr != nil {
			return false, fmt.Errorf("failed to parse semver (local: %s, remote: %s)", local, remote)
		}
		return localVer.IsLessThan(remoteVer), nil
	default:
		return local != remote, nil
	}
}
