package domain

import (
	"path"
	"path/filepath"
	"strings"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

// normalizeDir maps the workspace root to "" and cleans everything else.
func normalizeDir(dir string) m.Path {
	dir = path.Clean(strings.TrimSuffix(dir, "/"))
	if dir == "." || dir == "/" {
		return ""
	}

	return m.Path(dir)
}

// includeDir returns the folder part of an include path, "" when it has none.
func includeDir(include string) m.Path {
	return normalizeDir(path.Dir(include))
}

func joinDir(dir m.Path, name string) m.Path {
	if dir == "" {
		return m.Path(name)
	}

	return m.Path(path.Join(string(dir), name))
}

func displayDir(dir m.Path) string {
	if dir == "" {
		return "."
	}

	return string(dir)
}

// isWithin reports whether dir equals parent or lies below it.
func isWithin(dir, parent m.Path) bool {
	if parent == "" {
		return true
	}

	return dir == parent || strings.HasPrefix(string(dir), string(parent)+"/")
}

// isStrictDescendant reports whether dir lies below parent.
func isStrictDescendant(dir, parent m.Path) bool {
	return dir != parent && dir != "" && isWithin(dir, parent)
}

// dirName is the target name derived from a directory. The workspace root
// is named after the directory holding it.
func dirName(root string, dir m.Path) string {
	if dir == "" {
		if abs, err := filepath.Abs(root); err == nil {
			return filepath.Base(abs)
		}

		return filepath.Base(root)
	}

	return path.Base(string(dir))
}

func fileNames(files []m.Path) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, path.Base(string(f)))
	}

	return names
}

func absoluteDep(dir m.Path, name string) m.Dep {
	return m.Dep("//" + string(dir) + ":" + name)
}
