package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stwalsh4118/prelude/internal/registry"
)

// newHelpersCmd creates the helpers command
func newHelpersCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "helpers",
		Short: "List the available helpers",
		Long:  "Print the helper catalog grouped by category, with signatures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" {
				entries := registry.ByCategory(category)
				if len(entries) == 0 {
					return fmt.Errorf("unknown category %q", category)
				}
				for _, h := range entries {
					fmt.Printf("%s\t%s\n\t%s\n", h.Name, h.Summary, h.Signature)
				}
				return nil
			}

			fmt.Print(registry.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit the listing to one category")

	return cmd
}
