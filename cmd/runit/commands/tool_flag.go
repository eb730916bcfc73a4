package commands

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.trai.ch/runit/internal/core/domain"
	"go.trai.ch/zerr"
)

// toolFlag parses --tool into a domain.Tool.
type toolFlag struct {
	tool domain.Tool
}

func (f *toolFlag) String() string {
	if f.tool == domain.ToolNone {
		return ""
	}
	return f.tool.String()
}

func (f *toolFlag) Set(value string) error {
	t, err := domain.ParseTool(value)
	if err != nil {
		if hint := suggestTool(value); hint != "" {
			return zerr.New(fmt.Sprintf("unknown tool %q, did you mean %q?", value, hint))
		}
		return zerr.New(fmt.Sprintf("unknown tool %q, want one of %s", value, toolList()))
	}
	f.tool = t
	return nil
}

func (f *toolFlag) Type() string {
	return "tool"
}

// suggestTool returns the closest supported tool name, or "" when nothing is close.
func suggestTool(value string) string {
	matches := fuzzy.Find(strings.ToLower(value), domain.ToolNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func toolList() string {
	return strings.Join(domain.ToolNames(), ", ")
}
