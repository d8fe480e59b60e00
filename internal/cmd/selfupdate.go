package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bradcypert/uppies/internal/selfupdate"
)

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update uppies itself",
		Long: `Self-update fetches the latest release, and when it is newer than the
running version downloads the matching release asset and atomically replaces
the current executable. The previous executable is kept beside it as a
.backup file.

The release repository defaults to ` + selfupdate.DefaultRepo + ` and can be
overridden with the UPPIES_REPO environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate()
		},
	}
}

func runSelfUpdate() error {
	repo := os.Getenv("UPPIES_REPO")
	if repo == "" {
		repo = selfupdate.DefaultRepo
	}

	client := selfupdate.NewGitHubClient(repo)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithToken(token)
	}

	return selfupdate.Run(selfupdate.Options{
		CurrentVersion: uppiesVersion,
		Source:         client,
		Fetcher:        selfupdate.NewHTTPFetcher(),
		Out:            os.Stdout,
	})
}
