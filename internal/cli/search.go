package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGrepCmd creates the grep command
func newGrepCmd() *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "grep <path> <pattern>",
		Short: "Search a single file with a regular expression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			matches, err := a.searcher.GrepFile(args[0], args[1], ignoreCase)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			for _, m := range matches {
				fmt.Printf("%d:%s\n", m.Line, m.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")

	return cmd
}

// newGrepTreeCmd creates the grep-tree command
func newGrepTreeCmd() *cobra.Command {
	var glob string
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "grep-tree <root> <pattern>",
		Short: "Search recursively across a file tree",
		Long: `Search every matching file under a root directory with a regular
expression. Non-text files are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if glob == "" {
				glob = a.cfg.Search.DefaultGlob
			}

			matches, err := a.searcher.GrepTree(args[0], args[1], glob, ignoreCase)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			for _, m := range matches {
				fmt.Printf("%s:%d:%s\n", m.Path, m.Line, m.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "Filename glob to restrict the tree walk")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")

	return cmd
}

// newFindCmd creates the find command
func newFindCmd() *cobra.Command {
	var nonRecursive bool

	cmd := &cobra.Command{
		Use:   "find <root> <glob>",
		Short: "Find files by name glob",
		Long: `Find files whose base name matches a glob, walking the tree
recursively. With --flat only the named directory itself is globbed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var paths []string
			if nonRecursive {
				paths, err = a.searcher.Glob(args[0], args[1])
			} else {
				paths, err = a.searcher.Find(args[0], args[1])
			}
			if err != nil {
				return fmt.Errorf("find failed: %w", err)
			}

			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&nonRecursive, "flat", false, "Glob only the named directory, without recursing")

	return cmd
}
