package selfupdate

import (
	"fmt"
	"io"
	"os"
)

// BinaryReplacer performs the crash-safe swap of the running
// executable. The new binary is staged beside the target (same
// filesystem) so the final step is a true atomic rename; the rename is
// the only operation that mutates the real path, so a failure at any
// earlier step leaves the original executable untouched.
type BinaryReplacer struct {
	targetPath  string
	backupPath  string
	stagingPath string
}

// NewBinaryReplacer creates a replacer for the executable at
// targetPath.
func NewBinaryReplacer(targetPath string) *BinaryReplacer {
	return &BinaryReplacer{
		targetPath:  targetPath,
		backupPath:  targetPath + ".backup",
		stagingPath: targetPath + ".new",
	}
}

// BackupPath returns where the pre-replacement executable is kept.
func (r *BinaryReplacer) BackupPath() string {
	return r.backupPath
}

// Replace swaps the target executable for the binary at newBinary:
//  1. copy the current executable to <target>.backup, overwriting any
//     prior backup (manual-recovery safety net, never read back
//     automatically);
//  2. copy newBinary to <target>.new in the target's own directory — a
//     rename straight out of a temp-download directory fails whenever
//     /tmp is a separate mount;
//  3. set the executable bit on the staged file;
//  4. rename the staged file onto the target path.
func (r *BinaryReplacer) Replace(newBinary string) error {
	if err := copyFile(r.targetPath, r.backupPath); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := copyFile(newBinary, r.stagingPath); err != nil {
		return fmt.Errorf("failed to stage new binary: %w", err)
	}

	if err := os.Chmod(r.stagingPath, 0o755); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(r.stagingPath, r.targetPath); err != nil {
		return fmt.Errorf("failed to replace binary: %w", err)
	}

	return nil
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst) // Clean up partial copy
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return out.Close()
}
