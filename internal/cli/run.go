package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var dir string
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:   "run <cmdline>",
		Short: "Run a shell command line",
		Long: `Run a command line through the shell and print its output.

The command's exit code becomes prelude's exit code. A command that
exceeds the timeout fails with an error; by default the configured
command timeout applies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			timeout := a.commandTimeout()
			if timeoutSeconds > 0 {
				timeout = time.Duration(timeoutSeconds) * time.Second
			}

			result, err := a.runner.Shell(cmd.Context(), args[0], dir, timeout)
			if err != nil {
				return fmt.Errorf("command failed: %w", err)
			}

			fmt.Print(result.Stdout)
			if result.Stderr != "" {
				fmt.Fprint(os.Stderr, result.Stderr)
			}
			if !result.Success() {
				// Propagate the child's exit code without an extra error line.
				os.Exit(result.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Working directory for the command")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Timeout in seconds (0 uses the configured default)")

	return cmd
}
