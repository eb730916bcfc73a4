package domain

import "strings"

// Invocation is a resolved tool call ready to be dispatched.
type Invocation struct {
	Tool    Tool
	Task    string
	Args    []string
	Command string
	// Dir is the directory the command runs in. It is the scanned directory.
	Dir string
	// Shell is the interpreter argv; the command is appended as the last argument.
	Shell []string
	// TTY requests a pseudo-terminal for the child.
	TTY bool
}

// DefaultShell is the interpreter used when none is configured.
var DefaultShell = []string{"sh", "-c"}

// NewInvocation builds the invocation for a tool, task and pass-through arguments.
func NewInvocation(tool Tool, task string, args []string, dir string) *Invocation {
	return &Invocation{
		Tool:    tool,
		Task:    task,
		Args:    args,
		Command: BuildCommand(tool, task, args),
		Dir:     dir,
		Shell:   DefaultShell,
	}
}

// BuildCommand renders the tool specific command line. Task and args are joined
// verbatim with single spaces and are not shell escaped.
func BuildCommand(tool Tool, task string, args []string) string {
	parts := make([]string, 0, 3+len(args))
	parts = append(parts, runPrefix(tool)...)
	parts = append(parts, task)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}

func runPrefix(tool Tool) []string {
	switch tool {
	case ToolMake:
		return []string{"make"}
	case ToolNpm:
		return []string{"npm", "run"}
	case ToolPnpm:
		return []string{"pnpm", "run"}
	case ToolYarn:
		return []string{"yarn", "run"}
	case ToolMise:
		return []string{"mise", "run"}
	case ToolJust:
		return []string{"just"}
	case ToolTurbo:
		return []string{"turbo", "run"}
	case ToolMix:
		return []string{"mix"}
	default:
		return []string{tool.String()}
	}
}

// ProcessOutcome is the terminal result of a dispatched command.
type ProcessOutcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the child exited with status zero.
func (o *ProcessOutcome) Success() bool {
	return o.ExitCode == 0
}
