package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newLinesCmd creates the lines command for reading numbered line ranges
func newLinesCmd() *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "lines <path>",
		Short: "Print a numbered line range from a file",
		Long: `Print a 1-based inclusive line range from a file with line numbers.

With no flags the whole file is printed. Out-of-range addresses are
clamped to the file; a range entirely past the end prints nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			lines, err := a.editor.ReadRange(args[0], start, end)
			if err != nil {
				return fmt.Errorf("failed to read lines: %w", err)
			}

			for _, ln := range lines {
				fmt.Printf("%6d\t%s\n", ln.Number, ln.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 1, "First line of the range")
	cmd.Flags().IntVar(&end, "end", 0, "Last line of the range (0 means end of file)")

	return cmd
}

// newDeleteLinesCmd creates the delete-lines command
func newDeleteLinesCmd() *cobra.Command {
	var end int

	cmd := &cobra.Command{
		Use:   "delete-lines <path> <start>",
		Short: "Delete a line range from a file in place",
		Long: `Delete a 1-based inclusive line range from a file.

Without --end only the start line is deleted. Ranges falling outside
the file delete nothing and report zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid start line %q: %w", args[1], err)
			}

			count, err := a.editor.DeleteRange(args[0], start, end)
			if err != nil {
				return fmt.Errorf("failed to delete lines: %w", err)
			}

			fmt.Printf("Deleted %d line(s) from %s\n", count, args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&end, "end", 0, "Last line to delete (0 means the start line only)")

	return cmd
}

// newDeleteMatchingCmd creates the delete-matching command
func newDeleteMatchingCmd() *cobra.Command {
	var substring bool

	cmd := &cobra.Command{
		Use:   "delete-matching <path> <pattern>",
		Short: "Delete lines matching a pattern",
		Long: `Delete every line of a file that matches a regular expression.

With --substring the pattern is matched as a plain substring instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			count, err := a.editor.DeleteMatching(args[0], args[1], !substring)
			if err != nil {
				return fmt.Errorf("failed to delete matching lines: %w", err)
			}

			fmt.Printf("Deleted %d line(s) from %s\n", count, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&substring, "substring", false, "Match the pattern as a plain substring")

	return cmd
}

// newInsertCmd creates the insert command
func newInsertCmd() *cobra.Command {
	var before bool

	cmd := &cobra.Command{
		Use:   "insert <path> <line> <text>",
		Short: "Insert text at a line position",
		Long: `Insert text after (default) or before a 1-based line position.

Positions past the end of the file append; positions before the start
prepend. Multi-line text inserts multiple lines.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line number %q: %w", args[1], err)
			}

			if err := a.editor.InsertAt(args[0], line, args[2], !before); err != nil {
				return fmt.Errorf("failed to insert: %w", err)
			}

			fmt.Printf("Inserted into %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&before, "before", false, "Insert before the line instead of after")

	return cmd
}

// newSubCmd creates the sub command
func newSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <path> <pattern> <replacement>",
		Short: "Regexp replace across a file",
		Long: `Replace every regexp match in a file and report how many matches
were replaced. The file is rewritten even when nothing matched.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			count, err := a.editor.Substitute(args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to substitute: %w", err)
			}

			fmt.Printf("Replaced %d match(es) in %s\n", count, args[0])
			return nil
		},
	}

	return cmd
}

// newSubTreeCmd creates the sub-tree command
func newSubTreeCmd() *cobra.Command {
	var glob string

	cmd := &cobra.Command{
		Use:   "sub-tree <root> <pattern> <replacement>",
		Short: "Regexp replace across a file tree",
		Long: `Replace every regexp match in every matching file under a root
directory. Non-text files are skipped; only changed files are
rewritten.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if glob == "" {
				glob = a.cfg.Search.DefaultGlob
			}

			count, err := a.editor.SubstituteTree(args[0], args[1], args[2], glob)
			if err != nil {
				return fmt.Errorf("failed to substitute across tree: %w", err)
			}

			fmt.Printf("Replaced %d match(es) under %s\n", count, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "Filename glob to restrict the tree walk")

	return cmd
}
