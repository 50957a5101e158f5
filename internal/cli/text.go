package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stwalsh4118/prelude/internal/diffutil"
	"github.com/stwalsh4118/prelude/internal/textutil"
)

// newTextCmd creates the text command grouping the line-oriented filters
func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Line-oriented text filters",
		Long:  "Head, tail, counts, sorting, and column extraction over files.",
	}

	cmd.AddCommand(newTextHeadCmd())
	cmd.AddCommand(newTextTailCmd())
	cmd.AddCommand(newTextCountCmd())
	cmd.AddCommand(newTextSortCmd())
	cmd.AddCommand(newTextUniqCmd())
	cmd.AddCommand(newTextColsCmd())

	return cmd
}

func newTextHeadCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "head <path>",
		Short: "Print the first lines of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			content, err := a.store.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			fmt.Println(textutil.Head(content, n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 10, "Number of lines to print")

	return cmd
}

func newTextTailCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "tail <path>",
		Short: "Print the last lines of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			content, err := a.store.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			fmt.Println(textutil.Tail(content, n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 10, "Number of lines to print")

	return cmd
}

func newTextCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wc <path>",
		Short: "Count lines, words, and characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			content, err := a.store.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			c := textutil.Count(content)
			fmt.Printf("%d lines, %d words, %d chars\n", c.Lines, c.Words, c.Chars)
			return nil
		},
	}
}

func newTextSortCmd() *cobra.Command {
	var reverse, unique bool

	cmd := &cobra.Command{
		Use:   "sort <path>",
		Short: "Print a file's lines sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			content, err := a.store.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			fmt.Println(textutil.SortLines(content, reverse, unique))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort descending")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Drop duplicate lines")

	return cmd
}

func newTextUniqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uniq <path>",
		Short: "Collapse duplicate adjacent lines, with counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			content, err := a.store.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			for _, g := range textutil.Uniq(content) {
				fmt.Printf("%7d %s\n", g.Count, g.Text)
			}
			return nil
		},
	}
}

func newTextColsCmd() *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "cols <path> <indices>",
		Short: "Extract whitespace- or separator-delimited columns",
		Long: `Extract columns from each line of a file. Indices are 1-based and
comma-separated, e.g. "1,3". By default fields split on whitespace;
use --sep for a fixed separator.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			content, err := a.store.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			var indices []int
			for _, tok := range strings.Split(args[1], ",") {
				idx, err := strconv.Atoi(strings.TrimSpace(tok))
				if err != nil {
					return fmt.Errorf("invalid column index %q: %w", tok, err)
				}
				// cut-style 1-based on the command line, 0-based internally
				indices = append(indices, idx-1)
			}

			fmt.Println(textutil.Columns(content, indices, sep))
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", "", "Column separator (default whitespace)")

	return cmd
}

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Line diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			out, err := diffutil.Files(a.store, args[0], args[1])
			if err != nil {
				return fmt.Errorf("diff failed: %w", err)
			}

			fmt.Print(out)
			return nil
		},
	}
}
