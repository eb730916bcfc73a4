package ports

import (
	"context"
	"io"

	"go.trai.ch/runit/internal/core/domain"
)

// Dispatcher runs an invocation as a child process.
//
//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks
type Dispatcher interface {
	// Dispatch runs inv.Command through inv.Shell in inv.Dir and blocks until the child exits.
	//
	// Output is streamed to stdout and stderr and captured in the returned outcome.
	// A non-zero exit status is reported in the outcome, not as an error. The error is
	// a *domain.ExecError when the interpreter could not be spawned.
	Dispatch(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) (*domain.ProcessOutcome, error)
}
