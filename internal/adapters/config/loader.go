// Package config provides the per-project configuration loader for runit.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"go.trai.ch/runit/internal/core/domain"
	"go.trai.ch/runit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads domain.ConfigFileName from dir. Only dir itself is consulted.
// A dir that is not an openable directory has no config; the scanner reports it.
func (l *Loader) Load(dir string) (*domain.ProjectConfig, error) {
	if !isOpenableDir(dir) {
		return &domain.ProjectConfig{}, nil
	}

	configPath := filepath.Join(dir, domain.ConfigFileName)

	var runfile Runfile
	found, err := readAndUnmarshalYAML(configPath, &runfile)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.ProjectConfig{}, nil
	}

	cfg, err := l.toDomain(&runfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) toDomain(runfile *Runfile) (*domain.ProjectConfig, error) {
	cfg := &domain.ProjectConfig{}

	if runfile.Tool != "" {
		tool, err := domain.ParseTool(runfile.Tool)
		if err != nil {
			return nil, err
		}
		cfg.Tool = tool
	}

	for _, name := range runfile.Prefer {
		tool, err := domain.ParseTool(name)
		if err != nil {
			return nil, zerr.With(err, "field", "prefer")
		}
		cfg.Prefer = append(cfg.Prefer, tool)
	}

	if len(runfile.Shell) > 0 {
		if strings.TrimSpace(runfile.Shell[0]) == "" {
			return nil, zerr.With(domain.ErrInvalidShell, "shell", runfile.Shell)
		}
		cfg.Shell = runfile.Shell
	}

	if cfg.Tool != domain.ToolNone && len(cfg.Prefer) > 0 {
		l.Logger.Warn("'prefer' in " + domain.ConfigFileName + " has no effect while 'tool' is set")
	}

	return cfg, nil
}

func isOpenableDir(dir string) bool {
	f, err := os.Open(dir) // #nosec G304 -- dir is the user's project directory
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	return err == nil && info.IsDir()
}

// readAndUnmarshalYAML decodes configPath into target. A missing file is reported
// through found rather than as an error; an empty file decodes to the zero value.
func readAndUnmarshalYAML[T any](configPath string, target *T) (found bool, err error) {
	// #nosec G304 -- configPath is built from the target directory
	content, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, &domain.ConfigError{Path: configPath, Kind: domain.ErrConfigReadFailed, Err: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return false, &domain.ConfigError{Path: configPath, Kind: domain.ErrConfigParseFailed, Err: parseErr}
	}

	return true, nil
}
