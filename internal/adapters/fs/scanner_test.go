package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runit/internal/adapters/fs"
	"go.trai.ch/runit/internal/core/domain"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o600))
	}
}

func TestScanner_Scan(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  domain.ToolSet
	}{
		{
			name:  "makefile only",
			files: []string{"Makefile"},
			want:  domain.NewToolSet(domain.ToolMake),
		},
		{
			name:  "npm manifest and lockfile deduplicate",
			files: []string{"package.json", "package-lock.json"},
			want:  domain.NewToolSet(domain.ToolNpm),
		},
		{
			name:  "npm and yarn",
			files: []string{"package.json", "yarn.lock"},
			want:  domain.NewToolSet(domain.ToolNpm, domain.ToolYarn),
		},
		{
			name:  "unrelated files are ignored",
			files: []string{"README.md", "main.go", "go.mod"},
			want:  domain.NewToolSet(),
		},
		{
			name:  "empty directory",
			files: nil,
			want:  domain.NewToolSet(),
		},
		{
			name:  "mixed markers and noise",
			files: []string{"mise.toml", ".gitignore", "LICENSE"},
			want:  domain.NewToolSet(domain.ToolMise),
		},
	}

	scanner := fs.NewScanner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files...)

			assert.Equal(t, tt.want, scanner.Scan(dir))
		})
	}
}

func TestScanner_Scan_EveryMarkerAlone(t *testing.T) {
	scanner := fs.NewScanner()
	for _, rule := range domain.MarkerRules() {
		t.Run(rule.Filename, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, rule.Filename)

			assert.Equal(t, domain.NewToolSet(rule.Tool), scanner.Scan(dir))
		})
	}
}

func TestScanner_Scan_IsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "web")
	require.NoError(t, os.Mkdir(sub, 0o750))
	writeFiles(t, sub, "package.json")
	writeFiles(t, dir, "Makefile")

	assert.Equal(t, domain.NewToolSet(domain.ToolMake), fs.NewScanner().Scan(dir))
}

func TestScanner_Scan_UnreadableDirectory(t *testing.T) {
	scanner := fs.NewScanner()

	t.Run("missing directory", func(t *testing.T) {
		got := scanner.Scan(filepath.Join(t.TempDir(), "missing"))
		assert.Equal(t, 0, got.Len())
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "Makefile")
		got := scanner.Scan(filepath.Join(dir, "Makefile"))
		assert.Equal(t, 0, got.Len())
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Equal(t, 0, scanner.Scan("").Len())
	})
}

func TestScanner_ScanFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pnpm-lock.yaml":       {},
		"pnpm-workspace.yaml":  {},
		"packages/a/yarn.lock": {},
		"justfile":             {},
	}

	got := fs.NewScanner().ScanFS(fsys)
	assert.Equal(t, domain.NewToolSet(domain.ToolPnpm, domain.ToolJust), got)
}
