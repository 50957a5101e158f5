package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newFileCmd creates the file command grouping plain file operations
func newFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Plain file operations",
		Long:  "Read, write, copy, move, and inspect files without line addressing.",
	}

	cmd.AddCommand(newFileReadCmd())
	cmd.AddCommand(newFileWriteCmd())
	cmd.AddCommand(newFileAppendCmd())
	cmd.AddCommand(newFileCopyCmd())
	cmd.AddCommand(newFileMoveCmd())
	cmd.AddCommand(newFileRemoveCmd())
	cmd.AddCommand(newFileTouchCmd())
	cmd.AddCommand(newFileStatCmd())

	return cmd
}

func newFileReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Print a file's contents",
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

			fmt.Print(content)
			return nil
		},
	}
}

func newFileWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> <content>",
		Short: "Write a file, creating parent directories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.store.WriteText(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			fmt.Printf("Wrote %s\n", args[0])
			return nil
		},
	}
}

func newFileAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append <path> <content>",
		Short: "Append to a file, creating it as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.store.AppendText(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to append to file: %w", err)
			}

			fmt.Printf("Appended to %s\n", args[0])
			return nil
		},
	}
}

func newFileCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cp <src> <dst>",
		Short: "Copy a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.store.Copy(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to copy: %w", err)
			}

			fmt.Printf("Copied %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newFileMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <src> <dst>",
		Short: "Move or rename a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.store.Move(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to move: %w", err)
			}

			fmt.Printf("Moved %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newFileRemoveCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.store.Remove(args[0], recursive); err != nil {
				return fmt.Errorf("failed to remove: %w", err)
			}

			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Remove directories and their contents")

	return cmd
}

func newFileTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>",
		Short: "Create an empty file or update its mtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.store.Touch(args[0]); err != nil {
				return fmt.Errorf("failed to touch: %w", err)
			}
			return nil
		},
	}
}

func newFileStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Summarize a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			info, err := a.store.Stat(args[0])
			if err != nil {
				return fmt.Errorf("failed to stat: %w", err)
			}

			kind := "file"
			if info.IsDir {
				kind = "directory"
			}
			fmt.Printf("%s\t%s\t%d bytes\t%s\t%s\n",
				info.Path, kind, info.Size, info.Mode, info.ModTime.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
