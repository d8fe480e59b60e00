package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradcypert/uppies/internal/output"
	"github.com/bradcypert/uppies/internal/script"
	"github.com/bradcypert/uppies/internal/updater"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check local vs remote versions",
		Long: `Check runs every app's local and remote version scripts and reports
which apps have an update available. No update scripts are run.

A failing app is reported on stderr and does not stop the check; the command
still exits successfully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

func runCheck() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	u := updater.New(&script.ShellRunner{}, os.Stdout, os.Stderr)
	report := u.Check(cfg.Apps)

	if format == output.FormatText {
		// Per-app failures go to stderr; they never fail the command
		for _, row := range report {
			if row.Error != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", row.Name, row.Error)
			}
		}
	}

	return output.Write(os.Stdout, format, report)
}
