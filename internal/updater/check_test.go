package updater

import (
	"strings"
	"testing"

	"github.com/bradcypert/uppies/internal/compare"
	"github.com/bradcypert/uppies/internal/config"
	"github.com/bradcypert/uppies/internal/script"
)

func TestCheckReportsRows(t *testing.T) {
	runner := &fakeRunner{results: map[string]*script.Result{
		"local1":  {Stdout: "v1.0.0\n", ExitCode: 0},
		"remote1": {Stdout: "v1.2.0\n", ExitCode: 0},
		"local2":  {Stdout: "abc\n", ExitCode: 0},
		"remote2": {Stdout: "abc\n", ExitCode: 0},
		"local3":  {Stdout: "", ExitCode: 1},
	}}
	u, _, _ := newTestUpdater(runner)

	outdated := inlineApp("outdated", "local1", "remote1", "update1")
	outdated.Compare = compare.ModeSemver
	apps := []config.App{
		outdated,
		inlineApp("current", "local2", "remote2", "update2"),
		inlineApp("broken", "local3", "remote3", "update3"),
	}
	report := u.Check(apps)

	if len(report) != 3 {
		t.Fatalf("got %d rows, want 3", len(report))
	}

	if !report[0].UpdateAvailable || report[0].LocalVersion != "1.0.0" || report[0].RemoteVersion != "1.2.0" {
		t.Errorf("outdated row = %+v, want update available 1.0.0 → 1.2.0", report[0])
	}
	if report[1].UpdateAvailable {
		t.Errorf("current row = %+v, want up to date", report[1])
	}
	if report[2].Error != "local version script failed" {
		t.Errorf("broken row Error = %q, want local failure", report[2].Error)
	}

	// No update scripts may run during a check
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "update") {
			t.Errorf("check ran update script %q", call)
		}
	}
}

func TestCheckReportString(t *testing.T) {
	report := CheckReport{
		{Name: "dust", LocalVersion: "1.0.0", RemoteVersion: "1.2.0", UpdateAvailable: true},
		{Name: "ripgrep", LocalVersion: "14.1.0", UpdateAvailable: false},
		{Name: "broken", Error: "local version script failed"},
	}

	text := report.String()
	if !strings.Contains(text, "dust") || !strings.Contains(text, "(update available)") {
		t.Errorf("missing update-available row:\n%s", text)
	}
	if !strings.Contains(text, "ripgrep") || !strings.Contains(text, "(up to date)") {
		t.Errorf("missing up-to-date row:\n%s", text)
	}
	// Failing apps are reported on stderr by the command, not in the
	// table
	if strings.Contains(text, "broken") {
		t.Errorf("error row leaked into table:\n%s", text)
	}
}
