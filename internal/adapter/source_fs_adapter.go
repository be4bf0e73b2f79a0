// Package adapter contains the infrastructure adapters of the generator.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

// SourceFSAdapter abstracts filesystem access for the domain layer. Every
// path it accepts or returns is workspace-relative and slash separated, so
// the domain never needs to know where the workspace lives on disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Root returns the OS path of the workspace root.
	Root() string

	// Rel converts an OS path into a workspace-relative path. It fails when
	// the path lies outside the workspace.
	Rel(ctx context.Context, osPath string) (m.Path, error)

	// ListFiles returns the names of the regular files directly inside dir,
	// sorted lexically.
	ListFiles(ctx context.Context, dir m.Path) ([]string, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// Exists reports whether anything exists at path.
	Exists(ctx context.Context, path m.Path) bool

	// IsDir reports whether path is an existing directory.
	IsDir(ctx context.Context, path m.Path) bool

	// IsFile reports whether path is an existing regular file.
	IsFile(ctx context.Context, path m.Path) bool

	// WalkDirs calls fn for dir and, when recursive is true, for every
	// directory below it in lexical depth-first order.
	WalkDirs(ctx context.Context, dir m.Path, recursive bool, fn func(dir m.Path) error) error

	// Glob returns the files matching a doublestar pattern rooted at the
	// workspace, sorted lexically.
	Glob(ctx context.Context, pattern string) ([]m.Path, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct {
	root   string
	logger *slog.Logger
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter for the
// workspace rooted at root.
func NewLocalSourceFSAdapter(root string, logger *slog.Logger) *LocalSourceFSAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalSourceFSAdapter{
		root:   filepath.Clean(root),
		logger: logger,
	}
}

// Root returns the OS path of the workspace root.
func (a *LocalSourceFSAdapter) Root() string {
	return a.root
}

// Rel converts an OS path into a workspace-relative path.
func (a *LocalSourceFSAdapter) Rel(_ context.Context, osPath string) (m.Path, error) {
	absRoot, err := filepath.Abs(a.root)
	if err != nil {
		return "", fmt.Errorf("resolve workspace root: %w", err)
	}

	absPath, err := filepath.Abs(osPath)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", osPath, err)
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", osPath, err)
	}

	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside of workspace %s", osPath, a.root)
	}

	return m.Path(rel), nil
}

// ListFiles returns the sorted names of regular files directly inside dir.
func (a *LocalSourceFSAdapter) ListFiles(_ context.Context, dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(a.osPath(dir))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, p m.Path) ([]byte, error) {
	// #nosec G304 - path is a workspace file chosen by the scan
	return os.ReadFile(a.osPath(p))
}

// Exists reports whether anything exists at path.
func (a *LocalSourceFSAdapter) Exists(_ context.Context, p m.Path) bool {
	_, err := os.Stat(a.osPath(p))
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (a *LocalSourceFSAdapter) IsDir(_ context.Context, p m.Path) bool {
	info, err := os.Stat(a.osPath(p))
	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing regular file.
func (a *LocalSourceFSAdapter) IsFile(_ context.Context, p m.Path) bool {
	info, err := os.Stat(a.osPath(p))
	return err == nil && info.Mode().IsRegular()
}

// WalkDirs visits dir and optionally every directory below it.
func (a *LocalSourceFSAdapter) WalkDirs(ctx context.Context, dir m.Path, recursive bool, fn func(dir m.Path) error) error {
	if !recursive {
		return fn(dir)
	}

	start := a.osPath(dir)

	return filepath.WalkDir(start, func(osPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(start, osPath)
		if err != nil {
			return err
		}

		return fn(joinPath(dir, filepath.ToSlash(rel)))
	})
}

// Glob returns workspace files matching pattern.
func (a *LocalSourceFSAdapter) Glob(_ context.Context, pattern string) ([]m.Path, error) {
	matches, err := doublestar.Glob(filepath.Join(a.root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	paths := make([]m.Path, 0, len(matches))

	for _, match := range matches {
		rel, err := filepath.Rel(a.root, match)
		if err != nil {
			return nil, fmt.Errorf("relative path of %s: %w", match, err)
		}

		paths = append(paths, m.Path(filepath.ToSlash(rel)))
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	a.logger.Debug("glob", "pattern", pattern, "matches", len(paths))

	return paths, nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, p m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(a.osPath(p), content, perm)
}

func (a *LocalSourceFSAdapter) osPath(p m.Path) string {
	if p == "" || p == "." {
		return a.root
	}

	return filepath.Join(a.root, filepath.FromSlash(string(p)))
}

func joinPath(dir m.Path, rel string) m.Path {
	if rel == "." {
		return dir
	}

	if dir == "" || dir == "." {
		return m.Path(rel)
	}

	return m.Path(path.Join(string(dir), rel))
}

// IsNotExist reports whether err means a missing file or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
