package ports

import "go.trai.ch/runit/internal/core/domain"

// Scanner detects which tools govern a directory.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan reads the immediate entries of dir and returns the tools their names indicate.
	// It never fails: an unreadable directory yields an empty set.
	Scan(dir string) domain.ToolSet
}
