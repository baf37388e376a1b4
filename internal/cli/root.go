// Package cli wires the confmerge command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confmerge",
		Short: "confmerge - deep merge for JSON and TOML configuration documents",
		Long: `confmerge merges configuration documents: nested objects combine
recursively, arrays and scalars are replaced by the override, and a
strategy file pins individual paths to merge, replace or safe behavior.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newMergeCommand())
	rootCmd.AddCommand(newPathsCommand())

	return rootCmd
}
