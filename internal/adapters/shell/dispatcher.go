// Package shell provides a shell-based dispatcher for running tool invocations.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"go.trai.ch/runit/internal/core/domain"
	"go.trai.ch/runit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Dispatcher implements ports.Dispatcher using os/exec and pty.
type Dispatcher struct {
	logger ports.Logger
	stdin  io.Reader
}

// NewDispatcher creates a new Dispatcher whose children read from os.Stdin.
func NewDispatcher(logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		stdin:  os.Stdin,
	}
}

// WithStdin sets the reader connected to the child's standard input in pipe mode.
// This is primarily used for testing.
func (d *Dispatcher) WithStdin(r io.Reader) *Dispatcher {
	d.stdin = r
	return d
}

// Dispatch runs the invocation and waits for the child to exit.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	inv *domain.Invocation,
	stdout, stderr io.Writer,
) (*domain.ProcessOutcome, error) {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	if inv.TTY {
		outcome, err := d.dispatchPTY(ctx, inv, stdout)
		var execErr *domain.ExecError
		if err == nil || errors.As(err, &execErr) {
			return outcome, err
		}
		d.logger.Warn("pseudo-terminal unavailable, falling back to pipes: " + err.Error())
	}

	return d.dispatchPipes(ctx, inv, stdout, stderr)
}

func (d *Dispatcher) dispatchPipes(
	ctx context.Context,
	inv *domain.Invocation,
	stdout, stderr io.Writer,
) (*domain.ProcessOutcome, error) {
	var outBuf, errBuf bytes.Buffer

	cmd := newCommand(ctx, inv)
	cmd.Stdin = d.stdin
	cmd.Stdout = io.MultiWriter(stdout, &outBuf)
	cmd.Stderr = io.MultiWriter(stderr, &errBuf)

	if err := cmd.Start(); err != nil {
		return nil, newExecError(cmd, inv, err)
	}

	waitErr := cmd.Wait()
	d.checkWait(waitErr)

	return &domain.ProcessOutcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   outBuf.Bytes(),
		Stderr:   errBuf.Bytes(),
	}, nil
}

// dispatchPTY runs the child on a pseudo-terminal. Stdout and stderr share the
// terminal, so all output lands in the outcome's Stdout.
func (d *Dispatcher) dispatchPTY(
	ctx context.Context,
	inv *domain.Invocation,
	stdout io.Writer,
) (*domain.ProcessOutcome, error) {
	var outBuf bytes.Buffer

	cmd := newCommand(ctx, inv)
	if cmd.Err != nil {
		return nil, newExecError(cmd, inv, cmd.Err)
	}
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to start pty")
	}

	detach := d.attachTerminal(ptmx)

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master returns EIO once the child and its descendants close the terminal.
		_, _ = io.Copy(io.MultiWriter(stdout, &outBuf), ptmx)
	}()

	waitErr := cmd.Wait()
	detach()
	<-ioDone
	d.checkWait(waitErr)

	return &domain.ProcessOutcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   outBuf.Bytes(),
	}, nil
}

// attachTerminal forwards stdin to the pseudo-terminal. When stdin is itself a
// terminal it is switched to raw mode and its size is copied, so keystrokes such
// as Ctrl-C reach the child unprocessed. The returned func stops forwarding and
// restores stdin; it must be called once the child has exited.
func (d *Dispatcher) attachTerminal(ptmx *os.File) func() {
	restore := func() {}
	if f, ok := d.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		if err := pty.InheritSize(f, ptmx); err != nil {
			d.logger.Warn("failed to copy terminal size: " + err.Error())
		}
		if state, err := term.MakeRaw(int(f.Fd())); err == nil { //nolint:gosec // fd fits in int
			restore = func() { _ = term.Restore(int(f.Fd()), state) } //nolint:gosec // fd fits in int
		}
	}

	// Inputs that cannot be polled, such as /dev/null, have nothing to forward.
	stdin, err := cancelreader.NewReader(d.stdin)
	if err != nil {
		return restore
	}

	go func() {
		defer func() { _ = stdin.Close() }()
		_, _ = io.Copy(ptmx, stdin)
	}()

	return func() {
		stdin.Cancel()
		restore()
	}
}

// checkWait logs wait failures that are not a plain non-zero exit, such as a broken output writer.
func (d *Dispatcher) checkWait(err error) {
	if err == nil {
		return
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	d.logger.Warn("command output may be incomplete: " + err.Error())
}

func newCommand(ctx context.Context, inv *domain.Invocation) *exec.Cmd {
	shell := inv.Shell
	if len(shell) == 0 {
		shell = domain.DefaultShell
	}
	args := append(slices.Clone(shell[1:]), inv.Command)

	cmd := exec.CommandContext(ctx, shell[0], args...) //nolint:gosec // the command line is the user's task
	cmd.Dir = inv.Dir
	// Forward the interrupt and let the child decide when to exit.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	return cmd
}

func newExecError(cmd *exec.Cmd, inv *domain.Invocation, err error) *domain.ExecError {
	return &domain.ExecError{
		Interpreter: cmd.Args[:len(cmd.Args)-1],
		Dir:         inv.Dir,
		Err:         err,
	}
}
