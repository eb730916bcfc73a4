package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List supported tools and their marker files",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, info := range c.app.Tools() {
				_, _ = fmt.Fprintf(out, "%-7s%s\n", info.Tool, strings.Join(info.Markers, ", "))
			}
		},
	}
}
