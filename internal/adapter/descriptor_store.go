package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/pmezard/go-difflib/difflib"
	"go.starlark.net/syntax"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

// DescriptorFileName is the name of the file written into every processed directory.
const DescriptorFileName = "BUILD"

const descriptorPerm = 0o644

// DescriptorStore persists rendered descriptors.
type DescriptorStore interface {
	// SaveDescriptor overwrites the descriptor file of dir with content.
	SaveDescriptor(ctx context.Context, dir m.Path, content []byte) error
}

// LocalDescriptorStore writes descriptors through a SourceFSAdapter.
type LocalDescriptorStore struct {
	fs     SourceFSAdapter
	logger *slog.Logger
}

// NewDescriptorStore constructs a LocalDescriptorStore.
func NewDescriptorStore(fs SourceFSAdapter, logger *slog.Logger) *LocalDescriptorStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalDescriptorStore{fs: fs, logger: logger}
}

// SaveDescriptor writes content to dir/BUILD, replacing any previous file.
// Content that is not well-formed Starlark is logged and written anyway.
func (s *LocalDescriptorStore) SaveDescriptor(ctx context.Context, dir m.Path, content []byte) error {
	target := m.Path(path.Join(string(dir), DescriptorFileName))

	if _, err := (&syntax.FileOptions{}).Parse(string(target), content, 0); err != nil {
		s.logger.Error("Rendered descriptor does not parse", "path", target, "error", err)
	}

	s.logChange(ctx, target, content)

	if err := s.fs.WriteFile(ctx, target, content, descriptorPerm); err != nil {
		s.logger.Error("Failed to write descriptor", "path", target, "error", err)
		return fmt.Errorf("write descriptor %s: %w", target, err)
	}

	s.logger.Debug("Wrote descriptor", "path", target, "bytes", len(content))

	return nil
}

func (s *LocalDescriptorStore) logChange(ctx context.Context, target m.Path, content []byte) {
	previous, err := s.fs.ReadFile(ctx, target)
	if err != nil {
		if !IsNotExist(err) {
			s.logger.Debug("Cannot read previous descriptor", "path", target, "error", err)
		}

		return
	}

	if bytes.Equal(previous, content) {
		s.logger.Debug("Descriptor unchanged", "path", target)
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(content)),
		FromFile: string(target) + " (previous)",
		ToFile:   string(target),
		Context:  2,
	})
	if err != nil {
		s.logger.Debug("Cannot diff descriptor", "path", target, "error", err)
		return
	}

	s.logger.Debug("Descriptor changed", "path", target, "diff", diff)
}
