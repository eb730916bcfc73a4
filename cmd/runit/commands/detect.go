package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [dirs...]",
		Short: "Show which tools are detected in each directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detections, err := c.app.Detect(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range detections {
				_, _ = fmt.Fprintf(out, "%s: %s\n", d.Dir, d.Tools)
			}
			return nil
		},
	}
}
