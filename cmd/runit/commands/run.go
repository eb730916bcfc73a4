package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/runit/internal/app"
	"go.trai.ch/runit/internal/core/domain"
	"go.trai.ch/zerr"
)

var ptyModes = []string{"auto", "always", "never"}

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		dir    string
		tool   toolFlag
		dryRun bool
		pty    string
	)

	cmd := &cobra.Command{
		Use:   "run <task> [args...]",
		Short: "Run a task with the detected tool",
		Long: "Run a task with the tool detected from marker files in the project directory.\n" +
			"Everything after the task name is forwarded to the tool unchanged.",
		Example: "  runit run build\n  runit run -t pnpm test -- --watch\n  runit run -d ./web --dry-run dev",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ptyModes, pty) {
				return zerr.New(fmt.Sprintf("invalid --pty value %q, want one of auto, always, never", pty))
			}

			extra := args[1:]
			// A "--" right after the task only marks where the task's own arguments begin.
			if len(extra) > 0 && extra[0] == "--" {
				extra = extra[1:]
			}

			outcome, err := c.app.Run(cmd.Context(), args[0], app.RunOptions{
				Dir:    dir,
				Tool:   tool.tool,
				Args:   extra,
				DryRun: dryRun,
				PTY:    pty,
			})
			if err != nil {
				return err
			}
			if !outcome.Success() {
				return &domain.ExitStatusError{Code: outcome.ExitCode}
			}
			return nil
		},
	}

	// Flags after the task name belong to the task.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Project directory to scan and run in (default: current directory)")
	cmd.Flags().VarP(&tool, "tool", "t", "Tool to use instead of detection ("+toolList()+")")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command without running it")
	cmd.Flags().StringVar(&pty, "pty", "auto", "Attach the task to a pseudo-terminal: auto, always or never")

	_ = cmd.RegisterFlagCompletionFunc("tool", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return domain.ToolNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("pty", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ptyModes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
