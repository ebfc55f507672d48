package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/consoleprogress/internal/console"
	"github.com/harrison/consoleprogress/internal/demo"
)

// newStylesCommand creates the styles command
func newStylesCommand(c *console.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show detected terminal capabilities and style samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps := c.Capabilities()
			out := cmd.OutOrStdout()

			demo.Banner(out, caps)
			demo.StyleSamples(out, caps)
			return nil
		},
	}
}
