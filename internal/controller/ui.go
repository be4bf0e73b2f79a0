// Package controller provides the user-facing output of the generator.
package controller

import (
	"context"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

// UI defines how generator progress is reported to the user.
// Implementations must be safe for concurrent use.
type UI interface {
	DisplayStart(ctx context.Context, target m.Path, recursive bool)
	DisplayDirectory(ctx context.Context, dir m.Path)
	DisplayDirectoryDone(ctx context.Context, result m.DirectoryResult)
	DisplaySummary(ctx context.Context, results []m.DirectoryResult)
}
