package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"bladegen.dev/pkg/bladegen/internal/adapter"
	m "bladegen.dev/pkg/bladegen/internal/model"
)

const (
	sourceExt    = ".cc"
	protoExt     = ".proto"
	scriptingExt = ".py"
	testSuffix   = "_test.cc"
)

var headerExts = []string{".h", ".hpp"}

// Classifier buckets the files of a directory.
type Classifier interface {
	Classify(ctx context.Context, dir m.Path) (m.SourceSet, error)
}

type classifier struct {
	adapter.SourceFSAdapter
	logger *slog.Logger
}

// NewClassifier creates a Classifier reading through fsAdapter.
func NewClassifier(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &classifier{SourceFSAdapter: fsAdapter, logger: logger}
}

// Classify lists dir (non-recursively) and sorts its files into buckets.
// A source is a binary when its content defines main; otherwise the
// file name decides between test and library.
func (c *classifier) Classify(ctx context.Context, dir m.Path) (m.SourceSet, error) {
	names, err := c.ListFiles(ctx, dir)
	if err != nil {
		return m.SourceSet{}, fmt.Errorf("list %s: %w", displayDir(dir), err)
	}

	set := m.SourceSet{Dir: dir}

	for _, name := range names {
		file := joinDir(dir, name)

		switch ext := path.Ext(name); {
		case isHeaderExt(ext):
			set.Headers = append(set.Headers, file)
		case ext == protoExt:
			set.Protos = append(set.Protos, file)
		case ext == scriptingExt:
			set.ScriptingSrcs = append(set.ScriptingSrcs, file)
		case ext == sourceExt:
			isMain, err := c.containsMain(ctx, file)
			if err != nil {
				return m.SourceSet{}, err
			}

			switch {
			case isMain:
				set.BinarySrcs = append(set.BinarySrcs, file)
			case strings.HasSuffix(name, testSuffix):
				set.TestSrcs = append(set.TestSrcs, file)
			default:
				set.LibrarySrcs = append(set.LibrarySrcs, file)
			}
		}
	}

	c.logger.Debug("Classified directory",
		"dir", displayDir(dir),
		"hdrs", set.Headers,
		"test_srcs", set.TestSrcs,
		"main_srcs", set.BinarySrcs,
		"normal_srcs", set.LibrarySrcs,
		"proto_files", set.Protos,
	)

	return set, nil
}

func (c *classifier) containsMain(ctx context.Context, file m.Path) (bool, error) {
	content, err := c.ReadFile(ctx, file)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", file, err)
	}

	return ContainsMain(content), nil
}

// SkipReason returns why a classified directory gets no descriptor.
// Checks run in a fixed order: empty, proto mixed with C++, scripting files.
func SkipReason(set m.SourceSet) (string, bool) {
	switch {
	case set.IsEmpty():
		return "no files to generate descriptor rules", true
	case len(set.Protos) > 0 && set.HasNativeSources():
		return "proto files mixed with C++ sources", true
	case len(set.ScriptingSrcs) > 0:
		return "contains scripting files", true
	}

	return "", false
}

func isHeaderExt(ext string) bool {
	for _, h := range headerExts {
		if ext == h {
			return true
		}
	}

	return false
}
