package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stwalsh4118/prelude/internal/config"
	"gopkg.in/yaml.v3"
)

// newConfigCmd creates the config command with flags for viewing and
// modifying configuration
func newConfigCmd() *cobra.Command {
	var showFlag bool
	var setGitBinary string
	var setTimeout string
	var setGlob string
	var setLogLevel string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and modify configuration",
		Long: `View and modify prelude configuration settings.

Use --show to display the current configuration, or one of the --set-*
flags to change and persist a single setting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagCount := 0
			if showFlag {
				flagCount++
			}
			if setGitBinary != "" {
				flagCount++
			}
			if setTimeout != "" {
				flagCount++
			}
			if setGlob != "" {
				flagCount++
			}
			if setLogLevel != "" {
				flagCount++
			}

			// If no flags provided, show help
			if flagCount == 0 {
				return cmd.Help()
			}

			if flagCount > 1 {
				return fmt.Errorf("only one flag can be used at a time")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if showFlag {
				return handleShow(cfg)
			}

			switch {
			case setGitBinary != "":
				cfg.Git.Binary = setGitBinary
			case setTimeout != "":
				seconds, err := strconv.Atoi(setTimeout)
				if err != nil {
					return fmt.Errorf("invalid timeout %q: %w", setTimeout, err)
				}
				cfg.Command.TimeoutSeconds = seconds
			case setGlob != "":
				cfg.Search.DefaultGlob = setGlob
			case setLogLevel != "":
				cfg.Logging.Level = setLogLevel
			}

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Configuration saved")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showFlag, "show", "s", false, "Display current configuration")
	cmd.Flags().StringVar(&setGitBinary, "set-git-binary", "", "Set the git executable")
	cmd.Flags().StringVar(&setTimeout, "set-timeout", "", "Set the default command timeout in seconds")
	cmd.Flags().StringVar(&setGlob, "set-glob", "", "Set the default filename glob for tree walks")
	cmd.Flags().StringVar(&setLogLevel, "set-log-level", "", "Set the log level (debug, info, warn, error)")

	return cmd
}

// handleShow displays the current configuration in YAML format
func handleShow(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
