// Package cmd wires the uppies command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFormat string
	configPath   string
)

// Build-time version info, set by Execute.
var (
	uppiesVersion = "dev"
	uppiesCommit  = "none"
	uppiesDate    = "unknown"
)

func Execute(version, commit, date string) error {
	uppiesVersion = version
	uppiesCommit = commit
	uppiesDate = date

	rootCmd := &cobra.Command{
		Use:   "uppies",
		Short: "App update orchestrator",
		Long: `uppies runs your own version scripts to discover local and remote
versions of each registered app, and runs your update script when they differ.

Register apps in ~/.local/share/uppies/apps.toml, then check and update them
with uppies check and uppies update.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Register completion function for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd.Execute()
}
