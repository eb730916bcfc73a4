package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/runit/internal/core/domain"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		tool domain.Tool
		task string
		args []string
		want string
	}{
		{domain.ToolMake, "build", nil, "make build"},
		{domain.ToolMake, "build", []string{"-j4", "V=1"}, "make build -j4 V=1"},
		{domain.ToolNpm, "dev", nil, "npm run dev"},
		{domain.ToolNpm, "test", []string{"--", "--watch"}, "npm run test -- --watch"},
		{domain.ToolPnpm, "lint", []string{"--fix"}, "pnpm run lint --fix"},
		{domain.ToolYarn, "start", []string{}, "yarn run start"},
		{domain.ToolMise, "ci", nil, "mise run ci"},
		{domain.ToolJust, "deploy", []string{"prod"}, "just deploy prod"},
		{domain.ToolTurbo, "build", []string{"--filter=web"}, "turbo run build --filter=web"},
		{domain.ToolMix, "test", nil, "mix test"},
		{domain.ToolMake, "echo", []string{"$HOME", "|", "cat"}, "make echo $HOME | cat"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.BuildCommand(tt.tool, tt.task, tt.args))
		})
	}
}

func TestBuildCommand_EveryToolHasTemplate(t *testing.T) {
	for _, tool := range domain.AllTools() {
		cmd := domain.BuildCommand(tool, "task", nil)
		assert.NotContains(t, cmd, "unknown", "tool %d has no template", tool)
		assert.Contains(t, cmd, tool.String())
	}
}

func TestBuildCommand_InjectiveInTask(t *testing.T) {
	tasks := []string{"build", "build ", "Build", "build:prod", "b", ""}
	args := []string{"x"}
	for _, tool := range domain.AllTools() {
		seen := make(map[string]string)
		for _, task := range tasks {
			cmd := domain.BuildCommand(tool, task, args)
			prev, dup := seen[cmd]
			assert.False(t, dup, "%s: tasks %q and %q render to %q", tool, prev, task, cmd)
			seen[cmd] = task
		}
	}
}

func TestNewInvocation(t *testing.T) {
	inv := domain.NewInvocation(domain.ToolNpm, "build", []string{"--prod"}, "/srv/app")
	assert.Equal(t, "npm run build --prod", inv.Command)
	assert.Equal(t, "/srv/app", inv.Dir)
	assert.Equal(t, domain.DefaultShell, inv.Shell)
	assert.False(t, inv.TTY)
}

func TestErrors_Unwrap(t *testing.T) {
	execErr := &domain.ExecError{Interpreter: []string{"nosh", "-c"}, Dir: "/tmp", Err: errors.New("not found")}
	assert.ErrorIs(t, execErr, domain.ErrExecFailed)
	assert.Contains(t, execErr.Error(), "nosh -c")
	assert.Contains(t, execErr.Error(), "not found")

	exitErr := &domain.ExitStatusError{Code: 3}
	assert.ErrorIs(t, exitErr, domain.ErrTaskFailed)
	assert.Contains(t, exitErr.Error(), "3")
}
