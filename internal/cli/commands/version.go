package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timberline-data/timber/pkg/schema"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display Timber version and the supported schema format version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timber v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Schema format version %s\n", schema.Version)
		},
	}
}
