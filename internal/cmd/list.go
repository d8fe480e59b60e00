package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bradcypert/uppies/internal/output"
)

// listEntry is one row of `uppies list`.
type listEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// listReport is the list output for text rendering.
type listReport []listEntry

func (r listReport) String() string {
	var b strings.Builder
	for _, e := range r {
		if e.Description != "" {
			fmt.Fprintf(&b, "%-20s %s\n", e.Name, e.Description)
		} else {
			fmt.Fprintf(&b, "%s\n", e.Name)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered apps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func runList(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	// Structured formats get an empty array, not the text sentinel
	if len(cfg.Apps) == 0 && format == output.FormatText {
		fmt.Fprintln(w, "No apps registered")
		return nil
	}

	report := make(listReport, 0, len(cfg.Apps))
	for _, app := range cfg.Apps {
		report = append(report, listEntry{Name: app.Name, Description: app.Description})
	}

	return output.Write(w, format, report)
}
