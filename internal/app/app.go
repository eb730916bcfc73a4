// Package app implements the application layer for runit.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/runit/internal/adapters/detector" //nolint:depguard // Terminal detection is an app concern
	"go.trai.ch/runit/internal/core/domain"
	"go.trai.ch/runit/internal/core/ports"
	"go.trai.ch/runit/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.Scanner
	dispatcher   ports.Dispatcher
	logger       ports.Logger

	stdout io.Writer
	stderr io.Writer
	getwd  func() (string, error)
	useTTY func(flag string) bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.Scanner,
	dispatcher ports.Dispatcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		dispatcher:   dispatcher,
		logger:       logger,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		getwd:        os.Getwd,
		useTTY:       detector.UseTTY,
	}
}

// WithOutput redirects the streams dispatched children write to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTTYDetector replaces the terminal detection used for the auto --pty mode.
func (a *App) WithTTYDetector(fn func(flag string) bool) *App {
	a.useTTY = fn
	return a
}

// RunOptions configures a single task run.
type RunOptions struct {
	// Dir is the project directory. Empty means the current working directory.
	Dir string
	// Tool overrides detection when not ToolNone.
	Tool domain.Tool
	// Args are forwarded verbatim after the task name.
	Args []string
	// DryRun prints the command instead of running it.
	DryRun bool
	// PTY is the --pty flag value: auto, always or never.
	PTY string
}

// Run resolves the tool for the project directory and dispatches the task through it.
// A non-zero exit of the task is reported in the outcome, not as an error.
func (a *App) Run(ctx context.Context, task string, opts RunOptions) (*domain.ProcessOutcome, error) {
	if task == "" {
		return nil, domain.ErrEmptyTask
	}

	// 1. Locate the project
	dir, err := a.absDir(opts.Dir)
	if err != nil {
		return nil, err
	}

	// 2. Load the optional project config
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 3. Choose the tool
	tool, err := a.chooseTool(dir, opts.Tool, cfg)
	if err != nil {
		return nil, zerr.Wrap(err, fmt.Sprintf("cannot run %q in %s", task, dir))
	}

	// 4. Build the invocation
	inv := domain.NewInvocation(tool, task, opts.Args, dir)
	if len(cfg.Shell) > 0 {
		inv.Shell = cfg.Shell
	}

	if opts.DryRun {
		_, _ = fmt.Fprintln(a.stdout, inv.Command)
		return &domain.ProcessOutcome{}, nil
	}

	inv.TTY = a.useTTY(opts.PTY)
	a.logger.Info(fmt.Sprintf("%s %s", style.Arrow, inv.Command))

	// 5. Dispatch
	outcome, err := a.dispatcher.Dispatch(ctx, inv, a.stdout, a.stderr)
	if err != nil {
		return nil, zerr.Wrap(err, fmt.Sprintf("failed to run %q", inv.Command))
	}

	if !outcome.Success() {
		a.logger.Warn(fmt.Sprintf("%s exited with status %d", inv.Command, outcome.ExitCode))
	}
	return outcome, nil
}

func (a *App) chooseTool(dir string, flagTool domain.Tool, cfg *domain.ProjectConfig) (domain.Tool, error) {
	override := flagTool
	if override == domain.ToolNone && cfg.Tool != domain.ToolNone {
		override = cfg.Tool
		a.logger.Info(fmt.Sprintf("using %s pinned in %s", override, domain.ConfigFileName))
	}

	var detected domain.ToolSet
	if override == domain.ToolNone {
		detected = a.scanner.Scan(dir)
	}

	tool, err := domain.Resolve(detected, override)
	if err != nil && len(cfg.Prefer) > 0 {
		tool, err = cfg.Prefer.Break(err)
		if err == nil {
			a.logger.Info(fmt.Sprintf("detected %s, preferring %s", detected, tool))
		}
	}
	return tool, err
}

func (a *App) absDir(dir string) (string, error) {
	if dir == "" {
		wd, err := a.getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "dir", dir)
	}
	return abs, nil
}

// Detection is the scan result for one directory.
type Detection struct {
	Dir   string
	Tools domain.ToolSet
}

// Detect scans each directory concurrently and returns results in input order.
// No directories means the current working directory.
func (a *App) Detect(ctx context.Context, dirs []string) ([]Detection, error) {
	if len(dirs) == 0 {
		dirs = []string{""}
	}

	results := make([]Detection, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			abs, err := a.absDir(dir)
			if err != nil {
				return err
			}
			results[i] = Detection{Dir: abs, Tools: a.scanner.Scan(abs)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ToolInfo describes a supported tool and the files that indicate it.
type ToolInfo struct {
	Tool    domain.Tool
	Markers []string
}

// Tools lists every supported tool in registry order.
func (a *App) Tools() []ToolInfo {
	tools := domain.AllTools()
	infos := make([]ToolInfo, 0, len(tools))
	for _, t := range tools {
		infos = append(infos, ToolInfo{Tool: t, Markers: domain.Markers(t)})
	}
	return infos
}
