package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradcypert/uppies/internal/script"
	"github.com/bradcypert/uppies/internal/updater"
)

var forceUpdate bool

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [app]",
		Short: "Update app(s) if versions differ",
		Long: `Update runs each app's version scripts, and when the local and remote
versions differ runs the app's update script. Pass an app name to update a
single app.

One app's failure never stops the rest of the batch, and individual app
failures do not change the command's exit status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var app string
			if len(args) > 0 {
				app = args[0]
			}
			return runUpdate(app, forceUpdate)
		},
	}

	cmd.Flags().BoolVar(&forceUpdate, "force", false, "Run update scripts without checking versions")

	return cmd
}

func runUpdate(app string, force bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	u := updater.New(&script.ShellRunner{}, os.Stdout, os.Stderr)
	results := u.Run(cfg.Apps, updater.Options{App: app, Force: force})

	if app != "" && allSkipped(results) {
		return fmt.Errorf("no app named %q", app)
	}

	return nil
}

func allSkipped(results []updater.Result) bool {
	for _, r := range results {
		if r.Status != updater.StatusSkipped {
			return false
		}
	}
	return true
}
