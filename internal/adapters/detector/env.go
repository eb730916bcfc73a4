// Package detector decides how child processes are attached to the terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// TerminalMode is how a dispatched child is connected to the terminal.
type TerminalMode int

const (
	// ModeAuto detects the appropriate mode.
	ModeAuto TerminalMode = iota
	// ModePTY runs the child on a pseudo-terminal.
	ModePTY
	// ModePipe connects the child through plain pipes.
	ModePipe
)

// String returns the flag spelling of the mode.
func (m TerminalMode) String() string {
	switch m {
	case ModePTY:
		return "always"
	case ModePipe:
		return "never"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode.
// A pseudo-terminal is only useful when stdout is a TTY outside CI.
func DetectEnvironment() TerminalMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePipe
	}
	return ModePTY
}

// ResolveMode applies the user's --pty flag to the detected mode.
// userFlag should be one of "auto", "always", "never" or empty.
func ResolveMode(autoDetected TerminalMode, userFlag string) TerminalMode {
	switch userFlag {
	case "always", "on", "true":
		return ModePTY
	case "never", "off", "false":
		return ModePipe
	default:
		return autoDetected
	}
}

// UseTTY reports whether the child should get a pseudo-terminal for the given flag.
func UseTTY(userFlag string) bool {
	return ResolveMode(DetectEnvironment(), userFlag) == ModePTY
}
