// Package domain holds the tool registry and the pure resolution and command-building rules.
package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Tool identifies a build or package tool that can run tasks.
type Tool uint8

const (
	// ToolNone is the zero value and means no tool was chosen.
	ToolNone Tool = iota
	// ToolNpm is the npm package manager.
	ToolNpm
	// ToolPnpm is the pnpm package manager.
	ToolPnpm
	// ToolYarn is the yarn package manager.
	ToolYarn
	// ToolMake is GNU make or a compatible make.
	ToolMake
	// ToolMise is the mise task runner.
	ToolMise
	// ToolJust is the just command runner.
	ToolJust
	// ToolTurbo is Turborepo.
	ToolTurbo
	// ToolMix is the Elixir build tool.
	ToolMix
)

var allTools = [...]Tool{
	ToolNpm,
	ToolPnpm,
	ToolYarn,
	ToolMake,
	ToolMise,
	ToolJust,
	ToolTurbo,
	ToolMix,
}

// AllTools returns every supported tool in a stable order.
func AllTools() []Tool {
	return slices.Clone(allTools[:])
}

// String returns the command name of the tool.
func (t Tool) String() string {
	switch t {
	case ToolNpm:
		return "npm"
	case ToolPnpm:
		return "pnpm"
	case ToolYarn:
		return "yarn"
	case ToolMake:
		return "make"
	case ToolMise:
		return "mise"
	case ToolJust:
		return "just"
	case ToolTurbo:
		return "turbo"
	case ToolMix:
		return "mix"
	case ToolNone:
		return "none"
	default:
		return "unknown"
	}
}

// ToolNames returns the names of all supported tools.
func ToolNames() []string {
	names := make([]string, 0, len(allTools))
	for _, t := range allTools {
		names = append(names, t.String())
	}
	return names
}

// ParseTool converts a tool name to a Tool. Matching is case-insensitive.
func ParseTool(name string) (Tool, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, t := range allTools {
		if t.String() == normalized {
			return t, nil
		}
	}
	return ToolNone, zerr.Wrap(ErrUnknownTool, fmt.Sprintf("unknown tool %q", name))
}

// MarkerRule maps a filename to the tool its presence indicates.
type MarkerRule struct {
	Filename string
	Tool     Tool
}

// markerRules is the complete filename table. One filename maps to exactly one tool;
// a tool may own several filenames.
var markerRules = [...]MarkerRule{
	{Filename: "package.json", Tool: ToolNpm},
	{Filename: "package-lock.json", Tool: ToolNpm},
	{Filename: "npm-shrinkwrap.json", Tool: ToolNpm},
	{Filename: "pnpm-lock.yaml", Tool: ToolPnpm},
	{Filename: "pnpm-workspace.yaml", Tool: ToolPnpm},
	{Filename: "yarn.lock", Tool: ToolYarn},
	{Filename: ".yarnrc.yml", Tool: ToolYarn},
	{Filename: "Makefile", Tool: ToolMake},
	{Filename: "makefile", Tool: ToolMake},
	{Filename: "GNUmakefile", Tool: ToolMake},
	{Filename: "mise.toml", Tool: ToolMise},
	{Filename: ".mise.toml", Tool: ToolMise},
	{Filename: "justfile", Tool: ToolJust},
	{Filename: "Justfile", Tool: ToolJust},
	{Filename: ".justfile", Tool: ToolJust},
	{Filename: "turbo.json", Tool: ToolTurbo},
	{Filename: "mix.exs", Tool: ToolMix},
}

// MarkerRules returns a copy of the marker table.
func MarkerRules() []MarkerRule {
	return slices.Clone(markerRules[:])
}

// LookupMarker returns the tool indicated by an exact filename match.
func LookupMarker(filename string) (Tool, bool) {
	for _, r := range markerRules {
		if r.Filename == filename {
			return r.Tool, true
		}
	}
	return ToolNone, false
}

// Markers returns the filenames that indicate the given tool, in table order.
func Markers(t Tool) []string {
	var names []string
	for _, r := range markerRules {
		if r.Tool == t {
			names = append(names, r.Filename)
		}
	}
	return names
}
