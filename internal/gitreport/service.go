// Package gitreport turns git's machine-readable command output into typed
// status, log, show, and branch reports. git itself remains the source of
// truth: every operation is a subprocess invocation through the command
// runner, and a non-zero exit surfaces as a zero-value report plus an
// error, never as a fatal fault.
package gitreport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stwalsh4118/prelude/internal/logging"
	"github.com/stwalsh4118/prelude/internal/runner"
)

// ErrGitFailed indicates the git binary exited non-zero or was unusable.
var ErrGitFailed = errors.New("git command failed")

// Exact format strings handed to git. Changing any of these is a breaking
// compatibility change for the parsers.
const (
	logFormatAbbrev = "%h%x00%s%x00%an%x00%aI"
	logFormatFull   = "%H%x00%s%x00%an%x00%aI"
	showFormat      = "%H%x00%s%x00%an%x00%aI%x00%b"
	branchFormat    = "%(refname:short)%00%(HEAD)"
)

// Service reports on a single repository by invoking git through a Runner.
type Service struct {
	runner  runner.Runner
	dir     string
	binary  string
	timeout time.Duration
	logger  logging.Logger
}

// Config configures a report service.
type Config struct {
	// Dir is the working directory for every git invocation.
	Dir string

	// Binary is the git executable. Defaults to "git".
	Binary string

	// Timeout bounds each invocation. Zero means unbounded.
	Timeout time.Duration
}

// NewService creates a git report service.
func NewService(run runner.Runner, cfg Config, logger logging.Logger) (*Service, error) {
	if run == nil {
		return nil, fmt.Errorf("runner cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	binary := cfg.Binary
	if binary == "" {
		binary = "git"
	}

	return &Service{
		runner:  run,
		dir:     cfg.Dir,
		binary:  binary,
		timeout: cfg.Timeout,
		logger:  logger.With("component", "gitreport"),
	}, nil
}

// Status reports the working tree status.
func (s *Service) Status(ctx context.Context) (StatusReport, error) {
	out, err := s.git(ctx, "status", "--porcelain=v2", "--branch")
	if err != nil {
		return StatusReport{}, err
	}

	report := parseStatus(out)
	s.logger.Debug("parsed status", "branch", report.Branch,
		"staged", len(report.Staged), "modified", len(report.Modified), "untracked", len(report.Untracked))
	return report, nil
}

// Log returns up to opts.Limit commits, newest first.
func (s *Service) Log(ctx context.Context, opts LogOptions) ([]LogEntry, error) {
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}

	format := logFormatAbbrev
	if opts.FullSHA {
		format = logFormatFull
	}

	args := []string{"log", fmt.Sprintf("-%d", limit), "--format=" + format}
	if opts.RefRange != "" {
		args = append(args, opts.RefRange)
	}
	if len(opts.Paths) > 0 {
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	out, err := s.git(ctx, args...)
	if err != nil {
		return nil, err
	}

	entries := parseLog(out)
	s.logger.Debug("parsed log", "entries", len(entries))
	return entries, nil
}

// Show returns the details of a single commit. With stat set, a second
// invocation retrieves the per-file change summary; a failure there leaves
// Files empty rather than failing the whole report.
func (s *Service) Show(ctx context.Context, ref string, stat bool) (CommitDetail, error) {
	if ref == "" {
		ref = "HEAD"
	}

	out, err := s.git(ctx, "show", ref, "--format="+showFormat, "--no-patch")
	if err != nil {
		return CommitDetail{}, err
	}

	detail := parseShow(out)

	if stat {
		statOut, err := s.git(ctx, "show", ref, "--stat", "--format=")
		if err != nil {
			s.logger.Warn("stat retrieval failed, returning detail without files", "ref", ref, "error", err)
		} else {
			detail.Files = parseStatLines(statOut)
		}
	}

	return detail, nil
}

// FileAt returns the content of path as of ref. A positive start selects a
// clamped 1-based inclusive line range, with end <= 0 meaning the last line;
// start <= 0 returns the whole content untouched.
func (s *Service) FileAt(ctx context.Context, ref, path string, start, end int) (string, error) {
	out, err := s.git(ctx, "show", ref+":"+path)
	if err != nil {
		return "", err
	}

	if start <= 0 {
		return out, nil
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if end <= 0 || end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return "", nil
	}

	return strings.Join(lines[start-1:end], "\n"), nil
}

// Diff returns raw `git diff` output. The patch is passed through rather
// than decoded; diffing itself stays git's job.
func (s *Service) Diff(ctx context.Context, opts DiffOptions) (string, error) {
	args := []string{"diff"}
	if opts.Stat {
		args = append(args, "--stat")
	}
	if opts.Staged {
		args = append(args, "--cached")
	}
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}
	if len(opts.Paths) > 0 {
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	return s.git(ctx, args...)
}

// Branch lists all branches, classified local versus remote.
func (s *Service) Branch(ctx context.Context) (BranchReport, error) {
	out, err := s.git(ctx, "branch", "-a", "--format="+branchFormat)
	if err != nil {
		return BranchReport{}, err
	}

	report := parseBranches(out)
	s.logger.Debug("parsed branches", "current", report.Current,
		"local", len(report.Local), "remote", len(report.Remote))
	return report, nil
}

// HasChanges reports whether a plain porcelain status produces any output.
func (s *Service) HasChanges(ctx context.Context) (bool, error) {
	out, err := s.git(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// git runs one git invocation and returns stdout. A non-zero exit becomes
// an ErrGitFailed carrying the trimmed stderr; runner-level failures
// (missing binary, timeout) pass through unchanged.
func (s *Service) git(ctx context.Context, args ...string) (string, error) {
	result, err := s.runner.Run(ctx, runner.Command{
		Argv:    append([]string{s.binary}, args...),
		Dir:     s.dir,
		Timeout: s.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}

	if !result.Success() {
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(result.Stdout)
		}
		s.logger.Debug("git exited non-zero", "subcommand", args[0], "exit_code", result.ExitCode)
		return "", fmt.Errorf("git %s (exit %d): %w: %s", args[0], result.ExitCode, ErrGitFailed, msg)
	}

	return result.Stdout, nil
}
