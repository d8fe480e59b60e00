package selfupdate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewBinaryReplacer(t *testing.T) {
	r := NewBinaryReplacer("/usr/local/bin/uppies")

	if r.backupPath != "/usr/local/bin/uppies.backup" {
		t.Errorf("backupPath = %s", r.backupPath)
	}
	if r.stagingPath != "/usr/local/bin/uppies.new" {
		t.Errorf("stagingPath = %s", r.stagingPath)
	}
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "uppies")
	oldContent := []byte("old binary")
	newContent := []byte("new binary")

	if err := os.WriteFile(target, oldContent, 0o755); err != nil {
		t.Fatal(err)
	}
	newBinary := filepath.Join(t.TempDir(), "uppies")
	if err := os.WriteFile(newBinary, newContent, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewBinaryReplacer(target)
	if err := r.Replace(newBinary); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	// The target is byte-identical to the new binary
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(newContent) {
		t.Errorf("target content = %q, want new binary", got)
	}

	// The backup is byte-identical to the pre-replacement executable
	backup, err := os.ReadFile(r.BackupPath())
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != string(oldContent) {
		t.Errorf("backup content = %q, want old binary", backup)
	}

	// The staged .new file must not remain
	if _, err := os.Stat(r.stagingPath); !os.IsNotExist(err) {
		t.Errorf("staged file still present: %v", err)
	}

	// The replaced binary is executable
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("target mode = %v, want executable", info.Mode())
	}
}

func TestReplaceOverwritesPriorBackup(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "uppies")
	if err := os.WriteFile(target, []byte("current"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target+".backup", []byte("stale backup"), 0o755); err != nil {
		t.Fatal(err)
	}
	newBinary := filepath.Join(t.TempDir(), "uppies")
	if err := os.WriteFile(newBinary, []byte("replacement"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewBinaryReplacer(target)
	if err := r.Replace(newBinary); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	backup, err := os.ReadFile(r.BackupPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(backup) != "current" {
		t.Errorf("backup = %q, want prior backup overwritten with current", backup)
	}
}

func TestReplaceMissingNewBinaryLeavesTargetIntact(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "uppies")
	if err := os.WriteFile(target, []byte("original"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewBinaryReplacer(target)
	if err := r.Replace(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("Replace() expected error for missing new binary")
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Errorf("target content = %q, original must be untouched", got)
	}
}
