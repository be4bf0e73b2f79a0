package domain

import (
	"bytes"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

// ScanIncludes extracts include directives from C/C++ source.
//
// Only lines starting with the directive count, so includes that are
// indented or sit inside comments are ignored. It recognizes
//
//	#include "foo/bar.h"
//	#include <zlib.h>
//	import "foo/bar.h"
func ScanIncludes(buf []byte) []m.Include {
	var includes []m.Include

	forEachLine(buf, func(line []byte) {
		switch {
		case bytes.HasPrefix(line, []byte("#include")):
			rest, ok := skipSpace(line[len("#include"):])
			if !ok {
				return
			}

			if inc, ok := quoted(rest, '"', '"'); ok {
				includes = append(includes, m.Include{Path: inc, Kind: m.IncludeQuoted})
				return
			}

			if inc, ok := quoted(rest, '<', '>'); ok {
				includes = append(includes, m.Include{Path: inc, Kind: m.IncludeSystem})
			}
		case bytes.HasPrefix(line, []byte("import")):
			if inc, ok := scanImport(line); ok {
				includes = append(includes, m.Include{Path: inc, Kind: m.IncludeQuoted})
			}
		}
	})

	return includes
}

// ScanProtoImports extracts `import "..."` statements from a proto file.
// `import public` and `import weak` are not matched.
func ScanProtoImports(buf []byte) []string {
	var imports []string

	forEachLine(buf, func(line []byte) {
		if imp, ok := scanImport(line); ok {
			imports = append(imports, imp)
		}
	})

	return imports
}

// ContainsMain reports whether any line, once trimmed, starts with the
// program entry point. It stops at the first match.
func ContainsMain(buf []byte) bool {
	found := false

	forEachLine(buf, func(line []byte) {
		if found {
			return
		}

		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("int main(")) {
			found = true
		}
	})

	return found
}

func scanImport(line []byte) (string, bool) {
	if !bytes.HasPrefix(line, []byte("import")) {
		return "", false
	}

	rest, ok := skipSpace(line[len("import"):])
	if !ok {
		return "", false
	}

	return quoted(rest, '"', '"')
}

// skipSpace requires at least one leading blank and strips all of them.
func skipSpace(b []byte) ([]byte, bool) {
	trimmed := bytes.TrimLeft(b, " \t\f\v\r")
	if len(trimmed) == len(b) {
		return nil, false
	}

	return trimmed, true
}

// quoted returns the text between open and the first following close.
func quoted(b []byte, open, closing byte) (string, bool) {
	if len(b) == 0 || b[0] != open {
		return "", false
	}

	i := bytes.IndexByte(b[1:], closing)
	if i <= 0 {
		// unclosed or empty path
		return "", false
	}

	return string(b[1 : i+1]), true
}

func forEachLine(buf []byte, fn func(line []byte)) {
	for len(buf) > 0 {
		var line []byte

		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			line = buf
			buf = nil
		} else {
			line = buf[:i]
			buf = buf[i+1:]
		}

		fn(line)
	}
}
