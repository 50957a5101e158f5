// Package cli wires the toolkit's operations into the prelude command
// tree.
package cli

import (
	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
)

// NewRootCmd creates and returns the root command for prelude
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prelude",
		Short: "Line-addressed editing and git reporting for coding sessions",
		Long: `Prelude is a small toolkit for scripted code editing: line-addressed
file edits, tree-wide find/replace, text filters, and structured git
reports, all from one binary.

Line addresses are 1-based and inclusive; out-of-range addresses are
clamped to the file rather than rejected.`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(newLinesCmd())
	rootCmd.AddCommand(newDeleteLinesCmd())
	rootCmd.AddCommand(newDeleteMatchingCmd())
	rootCmd.AddCommand(newInsertCmd())
	rootCmd.AddCommand(newSubCmd())
	rootCmd.AddCommand(newSubTreeCmd())
	rootCmd.AddCommand(newGrepCmd())
	rootCmd.AddCommand(newGrepTreeCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newFileCmd())
	rootCmd.AddCommand(newTextCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newGitCmd())
	rootCmd.AddCommand(newHelpersCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
