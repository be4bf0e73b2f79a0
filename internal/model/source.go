// Package model defines the data structures shared by the descriptor generator.
package model

// Path represents a file system path.
//
// Inside the generator paths are workspace-relative and slash separated
// (e.g. "util/string/string_util.h"); adapters translate them to OS paths.
type Path string

// SourceSet is the classified content of a single directory.
// All lists hold workspace-relative paths, sorted and without duplicates.
type SourceSet struct {
	Dir Path

	Headers       []Path
	LibrarySrcs   []Path
	TestSrcs      []Path
	BinarySrcs    []Path
	Protos        []Path
	ScriptingSrcs []Path // presence alone disqualifies the directory
}

// IsEmpty reports whether the directory has nothing to describe.
// Scripting files do not count.
func (s SourceSet) IsEmpty() bool {
	return len(s.Headers) == 0 &&
		len(s.LibrarySrcs) == 0 &&
		len(s.TestSrcs) == 0 &&
		len(s.BinarySrcs) == 0 &&
		len(s.Protos) == 0
}

// HasNativeSources reports whether any header or C++ source is present.
func (s SourceSet) HasNativeSources() bool {
	return len(s.Headers)+len(s.LibrarySrcs)+len(s.TestSrcs)+len(s.BinarySrcs) > 0
}

// IncludeKind distinguishes quoted includes from angle-bracket ones.
type IncludeKind int

const (
	// IncludeQuoted is `#include "..."` or `import "..."`.
	IncludeQuoted IncludeKind = iota
	// IncludeSystem is `#include <...>`.
	IncludeSystem
)

// String implements fmt.Stringer.
func (k IncludeKind) String() string {
	switch k {
	case IncludeQuoted:
		return "quoted"
	case IncludeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Include is a single include/import directive target.
type Include struct {
	Path string
	Kind IncludeKind
}

// IncludeEdge links a source file to one of its includes.
type IncludeEdge struct {
	Source  Path
	Include Include
}
