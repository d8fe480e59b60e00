package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("uppies version %s (commit %s, built %s)\n", uppiesVersion, uppiesCommit, uppiesDate)
			return nil
		},
	}
}
