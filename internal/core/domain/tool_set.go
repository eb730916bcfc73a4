package domain

import (
	"slices"
	"strings"
)

// ToolSet is an unordered set of detected tools.
type ToolSet map[Tool]struct{}

// NewToolSet creates a set holding the given tools.
func NewToolSet(tools ...Tool) ToolSet {
	s := make(ToolSet, len(tools))
	for _, t := range tools {
		s.Add(t)
	}
	return s
}

// Add inserts a tool. Adding a tool twice is a no-op.
func (s ToolSet) Add(t Tool) {
	s[t] = struct{}{}
}

// Has reports whether the tool is in the set.
func (s ToolSet) Has(t Tool) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of tools in the set.
func (s ToolSet) Len() int {
	return len(s)
}

// Sorted returns the members in registry order.
func (s ToolSet) Sorted() []Tool {
	tools := make([]Tool, 0, len(s))
	for t := range s {
		tools = append(tools, t)
	}
	slices.Sort(tools)
	return tools
}

// String renders the set as a comma separated list, or "none" when empty.
func (s ToolSet) String() string {
	if len(s) == 0 {
		return "none"
	}
	return joinTools(s.Sorted())
}

func joinTools(tools []Tool) string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
