// Package main is the entry point for the runit task dispatcher.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/runit/cmd/runit/commands"
	"go.trai.ch/runit/internal/app"
	"go.trai.ch/runit/internal/core/domain"
	_ "go.trai.ch/runit/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		var exitErr *domain.ExitStatusError
		if errors.As(err, &exitErr) {
			return exitCode(exitErr.Code)
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// exitCode mirrors the child's status. Children killed by a signal report -1.
func exitCode(code int) int {
	if code <= 0 || code > 255 {
		return 1
	}
	return code
}
