// Package updater drives the per-app update loop: version discovery,
// comparison, and conditional update-script execution.
package updater

import (
	"fmt"
	"io"

	"github.com/bradcypert/uppies/internal/compare"
	"github.com/bradcypert/uppies/internal/config"
	"github.com/bradcypert/uppies/internal/script"
)

// Status is the terminal outcome of processing one app.
type Status string

const (
	StatusSkipped  Status = "skipped"
	StatusUpToDate Status = "up-to-date"
	StatusUpdated  Status = "updated"
	StatusFailed   Status = "failed"
)

// Result records the outcome of one app's processing step. Per-app
// failures are values collected into the run report, never errors that
// abort the loop.
type Result struct {
	Name          string `json:"name" yaml:"name"`
	Status        Status `json:"status" yaml:"status"`
	LocalVersion  string `json:"local_version,omitempty" yaml:"local_version,omitempty"`
	RemoteVersion string `json:"remote_version,omitempty" yaml:"remote_version,omitempty"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Options controls a run of the update loop.
type Options struct {
	App   string // Only process the app with this name; empty means all
	Force bool   // Skip version discovery and comparison, always run the update script
}

// Updater processes apps strictly sequentially, reusing one script
// runner.
type Updater struct {
	runner script.Runner
	out    io.Writer
	errOut io.Writer
}

// New creates an Updater writing progress to out and per-app failures
// to errOut.
func New(runner script.Runner, out, errOut io.Writer) *Updater {
	return &Updater{runner: runner, out: out, errOut: errOut}
}

// Run processes each app in configured order. One app's failure at any
// step never prevents subsequent apps from being processed.
func (u *Updater) Run(apps []config.App, opts Options) []Result {
	results := make([]Result, 0, len(apps))
	for _, app := range apps {
		if opts.App != "" && app.Name != opts.App {
			results = append(results, Result{Name: app.Name, Status: StatusSkipped})
			continue
		}
		results = append(results, u.processApp(app, opts.Force))
	}
	return results
}

// processApp walks one app through the decision state machine.
func (u *Updater) processApp(app config.App, force bool) Result {
	res := Result{Name: app.Name}

	if !force {
		local, remote, err := u.fetchVersions(app)
		if err != nil {
			res.Status = StatusFailed
			res.Message = err.Error()
			fmt.Fprintf(u.errOut, "%s: %s\n", app.Name, err)
			return res
		}
		res.LocalVersion = local
		res.RemoteVersion = remote

		needed, err := compare.NeedsUpdate(app.Compare, local, remote)
		if err != nil {
			res.Status = StatusFailed
			res.Message = err.Error()
			fmt.Fprintf(u.errOut, "%s: %s\n", app.Name, err)
			return res
		}

		if !needed {
			res.Status = StatusUpToDate
			fmt.Fprintf(u.out, "%s: already up to date (%s)\n", app.Name, local)
			return res
		}
		fmt.Fprintf(u.out, "%s: updating %s → %s\n", app.Name, local, remote)
	}

	fmt.Fprintf(u.out, "%s: running update script...\n", app.Name)
	result, err := u.runner.Run(app.Update.AsCommand())
	if err != nil || result.ExitCode != 0 {
		res.Status = StatusFailed
		res.Message = "update script failed"
		fmt.Fprintf(u.errOut, "%s: update script failed\n", app.Name)
		return res
	}

	res.Status = StatusUpdated
	fmt.Fprintf(u.out, "%s: update complete\n", app.Name)
	return res
}

// fetchVersions runs both version scripts and returns normalized
// (local, remote) versions. The remote script is not attempted when the
// local one fails, to avoid an unnecessary network call. A launch
// failure and a non-zero exit are the same user-facing condition.
func (u *Updater) fetchVersions(app config.App) (string, string, error) {
	local, err := u.runner.Run(app.Local.AsCommand())
	if err != nil || local.ExitCode != 0 {
		return "", "", fmt.Errorf("local version script failed")
	}

	remote, err := u.runner.Run(app.Remote.AsCommand())
	if err != nil || remote.ExitCode != 0 {
		return "", "", fmt.Errorf("remote version script failed")
	}

	return compare.Normalize(local.Stdout), compare.Normalize(remote.Stdout), nil
}
