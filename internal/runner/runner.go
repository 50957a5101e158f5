package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/stwalsh4118/prelude/internal/logging"
)

// Sentinel errors for command execution.
var (
	// ErrEmptyCommand is returned when a command has no argv.
	ErrEmptyCommand = errors.New("command has no arguments")

	// ErrTimeout is returned when a command exceeds its time bound.
	// It is deliberately distinct from a non-zero exit, which is not an
	// error at all but an ordinary Result.
	ErrTimeout = errors.New("command timed out")
)

// Command describes a single external invocation.
type Command struct {
	// Argv is the program and its arguments. The program is invoked
	// directly; shell metacharacters are never interpreted.
	Argv []string

	// Dir overrides the working directory. Empty means inherit.
	Dir string

	// Timeout bounds execution. Zero means no bound beyond ctx.
	Timeout time.Duration
}

// Result holds the outcome of a completed invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes external commands.
type Runner interface {
	// Run executes the command and blocks until it completes.
	// A non-zero exit is reported through Result.ExitCode, not through
	// the error; the error is reserved for failures to execute at all
	// (missing binary, bad working directory) and for ErrTimeout.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner executes commands via os/exec.
type ExecRunner struct {
	logger logging.Logger
}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner(logger logging.Logger) (*ExecRunner, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &ExecRunner{
		logger: logger.With("component", "runner"),
	}, nil
}

// Run executes the command, capturing stdout and stderr separately.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Argv) == 0 {
		return Result{ExitCode: -1}, ErrEmptyCommand
	}

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	execCmd := exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	start := time.Now()
	err := execCmd.Run()
	elapsed := time.Since(start)

	result := Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if err != nil {
		// Timeout is reported distinctly from a non-zero exit.
		if ctx.Err() == context.DeadlineExceeded {
			result.ExitCode = -1
			r.logger.Warn("command timed out", "program", cmd.Argv[0], "elapsed_ms", elapsed.Milliseconds())
			return result, fmt.Errorf("%s: %w", cmd.Argv[0], ErrTimeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug("command exited non-zero", "program", cmd.Argv[0], "exit_code", result.ExitCode)
			return result, nil
		}

		// Failed to execute at all (binary missing, bad dir, ...).
		result.ExitCode = -1
		r.logger.Error("command failed to execute", "program", cmd.Argv[0], "error", err)
		return result, fmt.Errorf("execute %s: %w", cmd.Argv[0], err)
	}

	r.logger.Debug("command completed", "program", cmd.Argv[0], "elapsed_ms", elapsed.Milliseconds())
	return result, nil
}
