package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stwalsh4118/prelude/internal/gitreport"
)

// newGitCmd creates the git command grouping the structured report
// subcommands
func newGitCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "git",
		Short: "Structured reports from a git repository",
		Long: `Run git and decode its output into structured reports: status,
log, commit details, file content at a ref, and branch listings.`,
	}

	cmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Repository directory")

	cmd.AddCommand(newGitStatusCmd(&dir))
	cmd.AddCommand(newGitDiffCmd(&dir))
	cmd.AddCommand(newGitLogCmd(&dir))
	cmd.AddCommand(newGitShowCmd(&dir))
	cmd.AddCommand(newGitFileCmd(&dir))
	cmd.AddCommand(newGitBranchCmd(&dir))
	cmd.AddCommand(newGitChangesCmd(&dir))

	return cmd
}

// gitService builds a report service rooted at the given directory.
func gitService(a *app, dir string) (*gitreport.Service, error) {
	svc, err := gitreport.NewService(a.runner, gitreport.Config{
		Dir:     dir,
		Binary:  a.cfg.Git.Binary,
		Timeout: a.commandTimeout(),
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize git reporting: %w", err)
	}
	return svc, nil
}

func newGitStatusCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			report, err := svc.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read status: %w", err)
			}

			if report.Branch != "" {
				fmt.Printf("On branch %s", report.Branch)
				if report.Ahead != 0 || report.Behind != 0 {
					fmt.Printf(" (ahead %d, behind %d)", report.Ahead, report.Behind)
				}
				fmt.Println()
			} else {
				fmt.Println("Detached HEAD")
			}
			printPathList("Staged", report.Staged)
			printPathList("Modified", report.Modified)
			printPathList("Untracked", report.Untracked)
			return nil
		},
	}
}

func printPathList(label string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
}

func newGitDiffCmd(dir *string) *cobra.Command {
	var staged, stat bool
	var ref string

	cmd := &cobra.Command{
		Use:   "diff [path...]",
		Short: "Show uncommitted changes as a raw patch",
		Long: `Print git's diff output unmodified. By default the working tree is
diffed against the index; --staged diffs the index against HEAD, and
--ref diffs against a ref instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			out, err := svc.Diff(cmd.Context(), gitreport.DiffOptions{
				Staged: staged,
				Ref:    ref,
				Stat:   stat,
				Paths:  args,
			})
			if err != nil {
				return fmt.Errorf("failed to diff: %w", err)
			}

			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Diff the index against HEAD")
	cmd.Flags().StringVar(&ref, "ref", "", "Diff against a ref instead of the index")
	cmd.Flags().BoolVar(&stat, "stat", false, "Print the per-file change summary instead of the patch")

	return cmd
}

func newGitLogCmd(dir *string) *cobra.Command {
	var limit int
	var fullSHA bool
	var refRange string

	cmd := &cobra.Command{
		Use:   "log [path...]",
		Short: "Show recent commits, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			entries, err := svc.Log(cmd.Context(), gitreport.LogOptions{
				Limit:    limit,
				FullSHA:  fullSHA,
				RefRange: refRange,
				Paths:    args,
			})
			if err != nil {
				return fmt.Errorf("failed to read log: %w", err)
			}

			for _, e := range entries {
				fmt.Printf("%s  %s  %s  %s\n", e.SHA, e.Date, e.Author, e.Subject)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of commits")
	cmd.Flags().BoolVar(&fullSHA, "full-sha", false, "Print full 40-character hashes")
	cmd.Flags().StringVar(&refRange, "range", "", "Restrict the walk to a ref range (e.g. main..topic)")

	return cmd
}

func newGitShowCmd(dir *string) *cobra.Command {
	var noStat bool

	cmd := &cobra.Command{
		Use:   "show [ref]",
		Short: "Show details of a single commit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			ref := "HEAD"
			if len(args) == 1 {
				ref = args[0]
			}

			detail, err := svc.Show(cmd.Context(), ref, !noStat)
			if err != nil {
				return fmt.Errorf("failed to show commit: %w", err)
			}

			fmt.Printf("commit %s\n", detail.SHA)
			fmt.Printf("Author: %s\n", detail.Author)
			fmt.Printf("Date:   %s\n", detail.Date)
			fmt.Printf("\n    %s\n", detail.Subject)
			if detail.Body != "" {
				fmt.Printf("\n%s\n", indent(detail.Body, "    "))
			}
			if len(detail.Files) > 0 {
				fmt.Println()
				for _, f := range detail.Files {
					fmt.Printf("  %s\n", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStat, "no-stat", false, "Skip the per-file change summary")

	return cmd
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func newGitFileCmd(dir *string) *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "file <ref> <path>",
		Short: "Print a file's content at a ref",
		Long: `Print a file as it exists at a ref. With --start (and optionally
--end) only that 1-based inclusive line range is printed, clamped to
the file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			content, err := svc.FileAt(cmd.Context(), args[0], args[1], start, end)
			if err != nil {
				return fmt.Errorf("failed to read file at ref: %w", err)
			}

			fmt.Print(content)
			if content != "" && !strings.HasSuffix(content, "\n") {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "First line to print (0 means the whole file)")
	cmd.Flags().IntVar(&end, "end", 0, "Last line to print (0 means end of file)")

	return cmd
}

func newGitBranchCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "List local and remote branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			report, err := svc.Branch(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list branches: %w", err)
			}

			for _, b := range report.Local {
				marker := "  "
				if b == report.Current {
					marker = "* "
				}
				fmt.Printf("%s%s\n", marker, b)
			}
			for _, b := range report.Remote {
				fmt.Printf("  %s\n", b)
			}
			return nil
		},
	}
}

func newGitChangesCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "changes",
		Short: "Report whether the tree has uncommitted changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc, err := gitService(a, *dir)
			if err != nil {
				return err
			}

			dirty, err := svc.HasChanges(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to check for changes: %w", err)
			}

			fmt.Println(strconv.FormatBool(dirty))
			return nil
		},
	}
}
