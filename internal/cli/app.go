package cli

import (
	"fmt"
	"time"

	"github.com/stwalsh4118/prelude/internal/config"
	"github.com/stwalsh4118/prelude/internal/editor"
	"github.com/stwalsh4118/prelude/internal/fsio"
	"github.com/stwalsh4118/prelude/internal/logging"
	"github.com/stwalsh4118/prelude/internal/runner"
	"github.com/stwalsh4118/prelude/internal/search"
)

// app bundles the wired dependencies shared by the subcommands.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	store    *fsio.DiskStore
	runner   *runner.ExecRunner
	editor   *editor.Editor
	searcher *search.Searcher
}

// newApp loads configuration and builds the dependency graph every
// command runs against.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	store := fsio.NewDiskStore()

	run, err := runner.NewExecRunner(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize command runner: %w", err)
	}

	ed, err := editor.NewEditor(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize editor: %w", err)
	}

	searcher, err := search.NewSearcher(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize searcher: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		runner:   run,
		editor:   ed,
		searcher: searcher,
	}, nil
}

// commandTimeout returns the configured default timeout for external
// commands.
func (a *app) commandTimeout() time.Duration {
	return a.cfg.Command.Timeout()
}
