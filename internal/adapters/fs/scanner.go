// Package fs provides file system adapters for detecting project tools.
package fs

import (
	"io/fs"
	"os"

	"go.trai.ch/runit/internal/core/domain"
)

// Scanner implements ports.Scanner by matching directory entry names against the marker table.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan detects tools from the immediate entries of dir.
func (s *Scanner) Scan(dir string) domain.ToolSet {
	if dir == "" {
		return domain.NewToolSet()
	}
	return s.ScanFS(os.DirFS(dir))
}

// ScanFS detects tools from the root entries of fsys.
//
// Detection is best effort: entries read before a failure are still used, and a
// root that cannot be opened yields an empty set.
func (s *Scanner) ScanFS(fsys fs.FS) domain.ToolSet {
	detected := domain.NewToolSet()

	// ReadDir returns the entries it managed to read alongside any error.
	entries, _ := fs.ReadDir(fsys, ".")
	for _, entry := range entries {
		if tool, ok := domain.LookupMarker(entry.Name()); ok {
			detected.Add(tool)
		}
	}
	return detected
}
