package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runit/internal/core/ports"
)

// ScannerNodeID is the unique identifier for the scanner Graft node.
const ScannerNodeID graft.ID = "adapter.fs.scanner"

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Scanner, error) {
			return NewScanner(), nil
		},
	})
}
