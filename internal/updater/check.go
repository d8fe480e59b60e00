package updater

import (
	"fmt"
	"strings"

	"github.com/bradcypert/uppies/internal/compare"
	"github.com/bradcypert/uppies/internal/config"
)

// CheckResult is one row of a version check. A failing app carries the
// failure text in Error and empty versions.
type CheckResult struct {
	Name            string `json:"name" yaml:"name"`
	LocalVersion    string `json:"local_version,omitempty" yaml:"local_version,omitempty"`
	RemoteVersion   string `json:"remote_version,omitempty" yaml:"remote_version,omitempty"`
	UpdateAvailable bool   `json:"update_available" yaml:"update_available"`
	Error           string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckReport is the full check output for text rendering.
type CheckReport []CheckResult

// String renders the report in the `check` command's table format.
func (r CheckReport) String() string {
	var b strings.Builder
	for _, row := range r {
		if row.Error != "" {
			continue
		}
		if row.UpdateAvailable {
			fmt.Fprintf(&b, "%-20s %-15s → %-15s (update available)\n",
				row.Name, row.LocalVersion, row.RemoteVersion)
		} else {
			fmt.Fprintf(&b, "%-20s %-15s (up to date)\n", row.Name, row.LocalVersion)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Check runs both version scripts for every app and reports whether an
// update is due, without running any update script. Per-app failures
// are recorded in the row and never abort the batch.
func (u *Updater) Check(apps []config.App) CheckReport {
	report := make(CheckReport, 0, len(apps))
	for _, app := range apps {
		row := CheckResult{Name: app.Name}

		local, remote, err := u.fetchVersions(app)
		if err != nil {
			row.Error = err.Error()
			report = append(report, row)
			continue
		}
		row.LocalVersion = local
		row.RemoteVersion = remote

		needed, err := compare.NeedsUpdate(app.Compare, local, remote)
		if err != nil {
			row.Error = err.Error()
			report = append(report, row)
			continue
		}

		row.UpdateAvailable = needed
		report = append(report, row)
	}
	return report
}
