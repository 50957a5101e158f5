package runner

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"time"
)

// ErrNoShell is returned when no usable shell can be found on the host.
var ErrNoShell = errors.New("no suitable shell found")

// Shell runs a free-form command line through a login shell.
//
// This is the one place shell-string semantics are allowed: everything that
// targets git goes through Run with an argument vector instead. bash is
// preferred, falling back to cmd on Windows and sh elsewhere.
func (r *ExecRunner) Shell(ctx context.Context, cmdline, dir string, timeout time.Duration) (Result, error) {
	if bashPath, err := exec.LookPath("bash"); err == nil {
		return r.Run(ctx, Command{
			Argv:    []string{bashPath, "-lc", cmdline},
			Dir:     dir,
			Timeout: timeout,
		})
	}

	if runtime.GOOS == "windows" {
		return r.Run(ctx, Command{
			Argv:    []string{"cmd", "/c", cmdline},
			Dir:     dir,
			Timeout: timeout,
		})
	}

	if shPath, err := exec.LookPath("sh"); err == nil {
		return r.Run(ctx, Command{
			Argv:    []string{shPath, "-lc", cmdline},
			Dir:     dir,
			Timeout: timeout,
		})
	}

	return Result{ExitCode: -1}, ErrNoShell
}
