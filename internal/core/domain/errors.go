package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrNoToolDetected is returned when no marker file was found and no tool was given.
	ErrNoToolDetected = zerr.New("no tool detected, add a marker file or pass --tool")

	// ErrAmbiguousTools is matched by AmbiguousToolsError when several tools are detected.
	ErrAmbiguousTools = zerr.New("multiple tools detected")

	// ErrUnknownTool is returned when a tool name is not one of the supported tools.
	ErrUnknownTool = zerr.New("unknown tool")

	// ErrEmptyTask is returned when the task name is empty.
	ErrEmptyTask = zerr.New("task name must not be empty")

	// ErrExecFailed is matched by ExecError when the interpreter could not be spawned.
	ErrExecFailed = zerr.New("failed to spawn command interpreter")

	// ErrTaskFailed is matched by ExitStatusError when the child exits non-zero.
	ErrTaskFailed = zerr.New("task exited with non-zero status")

	// ErrFailedToGetRoot is returned when the target directory cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of target directory")

	// ErrConfigReadFailed is matched by ConfigError when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is matched by ConfigError when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidShell is returned when a configured interpreter is empty.
	ErrInvalidShell = zerr.New("shell must name an interpreter")
)

// AmbiguousToolsError carries every candidate when detection found more than one tool.
type AmbiguousToolsError struct {
	Candidates []Tool
}

// NewAmbiguousToolsError creates an AmbiguousToolsError with candidates in registry order.
func NewAmbiguousToolsError(detected ToolSet) *AmbiguousToolsError {
	return &AmbiguousToolsError{Candidates: detected.Sorted()}
}

func (e *AmbiguousToolsError) Error() string {
	return fmt.Sprintf("%s (%s), pass --tool to choose one", ErrAmbiguousTools.Error(), joinTools(e.Candidates))
}

// Unwrap lets errors.Is match ErrAmbiguousTools.
func (e *AmbiguousToolsError) Unwrap() error {
	return ErrAmbiguousTools
}

// ExecError reports that the command interpreter could not be started.
type ExecError struct {
	Interpreter []string
	Dir         string
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s %q in %s: %v", ErrExecFailed.Error(), strings.Join(e.Interpreter, " "), e.Dir, e.Err)
}

// Unwrap exposes both ErrExecFailed and the underlying OS error.
func (e *ExecError) Unwrap() []error {
	return []error{ErrExecFailed, e.Err}
}

// ExitStatusError carries a non-zero child exit code up to the process entry point.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrTaskFailed.Error(), e.Code)
}

// Unwrap lets errors.Is match ErrTaskFailed.
func (e *ExitStatusError) Unwrap() error {
	return ErrTaskFailed
}

// ConfigError reports a config file that exists but cannot be read or decoded.
// Kind is ErrConfigReadFailed or ErrConfigParseFailed.
type ConfigError struct {
	Path string
	Kind error
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind.Error(), e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying error.
func (e *ConfigError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
