package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runit/cmd/runit/commands"
	"go.trai.ch/runit/internal/app"
	"go.trai.ch/runit/internal/build"
	"go.trai.ch/runit/internal/core/domain"
)

type mockApp struct {
	runFunc    func(ctx context.Context, task string, opts app.RunOptions) (*domain.ProcessOutcome, error)
	detectFunc func(ctx context.Context, dirs []string) ([]app.Detection, error)
}

func (m *mockApp) Run(ctx context.Context, task string, opts app.RunOptions) (*domain.ProcessOutcome, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, task, opts)
	}
	return &domain.ProcessOutcome{}, nil
}

func (m *mockApp) Detect(ctx context.Context, dirs []string) ([]app.Detection, error) {
	if m.detectFunc != nil {
		return m.detectFunc(ctx, dirs)
	}
	return nil, nil
}

func (m *mockApp) Tools() []app.ToolInfo {
	return (&app.App{}).Tools()
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedTask string

		mock := &mockApp{
			runFunc: func(_ context.Context, task string, opts app.RunOptions) (*domain.ProcessOutcome, error) {
				capturedTask = task
				capturedOpts = opts
				return &domain.ProcessOutcome{}, nil
			},
		}

		_, err := execute(t, mock, "run", "-d", "web", "-t", "PNPM", "--dry-run", "--pty", "never", "test", "--watch", "-x")
		require.NoError(t, err)
		assert.Equal(t, "test", capturedTask)
		assert.Equal(t, "web", capturedOpts.Dir)
		assert.Equal(t, domain.ToolPnpm, capturedOpts.Tool)
		assert.True(t, capturedOpts.DryRun)
		assert.Equal(t, "never", capturedOpts.PTY)
		assert.Equal(t, []string{"--watch", "-x"}, capturedOpts.Args)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, opts app.RunOptions) (*domain.ProcessOutcome, error) {
				capturedOpts = opts
				return &domain.ProcessOutcome{}, nil
			},
		}

		_, err := execute(t, mock, "run", "build")
		require.NoError(t, err)
		assert.Equal(t, domain.ToolNone, capturedOpts.Tool)
		assert.Empty(t, capturedOpts.Dir)
		assert.Empty(t, capturedOpts.Args)
		assert.Equal(t, "auto", capturedOpts.PTY)
		assert.False(t, capturedOpts.DryRun)
	})

	t.Run("pass-through marker", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want []string
		}{
			{"after the task is dropped", []string{"run", "-t", "npm", "dev", "--", "--port", "3000"}, []string{"--port", "3000"}},
			{"before the task is dropped", []string{"run", "--", "dev", "--port", "3000"}, []string{"--port", "3000"}},
			{"only the first is dropped", []string{"run", "test", "--", "--", "x"}, []string{"--", "x"}},
			{"later ones are forwarded", []string{"run", "test", "a", "--", "b"}, []string{"a", "--", "b"}},
			{"alone leaves no args", []string{"run", "build", "--"}, []string{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var capturedOpts app.RunOptions
				mock := &mockApp{
					runFunc: func(_ context.Context, _ string, opts app.RunOptions) (*domain.ProcessOutcome, error) {
						capturedOpts = opts
						return &domain.ProcessOutcome{}, nil
					},
				}

				_, err := execute(t, mock, tt.args...)
				require.NoError(t, err)
				assert.Equal(t, tt.want, capturedOpts.Args)
			})
		}
	})

	t.Run("non-zero exit becomes exit status error", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, app.RunOptions) (*domain.ProcessOutcome, error) {
				return &domain.ProcessOutcome{ExitCode: 7}, nil
			},
		}

		_, err := execute(t, mock, "run", "test")
		var exitErr *domain.ExitStatusError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 7, exitErr.Code)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, app.RunOptions) (*domain.ProcessOutcome, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "run", "target")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a task", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, app.RunOptions) (*domain.ProcessOutcome, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "run")
		require.Error(t, err)
	})

	t.Run("suggests a close tool name", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "run", "-t", "trb", "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `did you mean "turbo"?`)
	})

	t.Run("lists tools when nothing is close", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "run", "-t", "gradle", "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "npm, pnpm, yarn")
	})

	t.Run("rejects invalid pty mode", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "run", "--pty", "sometimes", "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --pty value")
	})
}

func TestCommands_Detect(t *testing.T) {
	var capturedDirs []string
	mock := &mockApp{
		detectFunc: func(_ context.Context, dirs []string) ([]app.Detection, error) {
			capturedDirs = dirs
			return []app.Detection{
				{Dir: "/srv/api", Tools: domain.NewToolSet(domain.ToolMake)},
				{Dir: "/srv/web", Tools: domain.NewToolSet(domain.ToolYarn, domain.ToolNpm)},
				{Dir: "/srv/docs", Tools: domain.NewToolSet()},
			}, nil
		},
	}

	out, err := execute(t, mock, "detect", "api", "web", "docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "web", "docs"}, capturedDirs)
	assert.Equal(t, "/srv/api: make\n/srv/web: npm, yarn\n/srv/docs: none\n", out)
}

func TestCommands_Tools(t *testing.T) {
	out, err := execute(t, &mockApp{}, "tools")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "tools", []byte(out))
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
