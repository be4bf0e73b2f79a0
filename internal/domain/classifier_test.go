package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bladegen.dev/pkg/bladegen/internal/adapter"
	"bladegen.dev/pkg/bladegen/internal/domain"
	m "bladegen.dev/pkg/bladegen/internal/model"
)

func TestClassifier_Classify(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"svc/foo.h":          "#pragma once\n",
		"svc/bar.hpp":        "#pragma once\n",
		"svc/foo.cc":         "#include \"foo.h\"\n",
		"svc/foo_test.cc":    "#include \"foo.h\"\nTEST(Foo, Bar) {}\n",
		"svc/server.cc":      "int main(int argc, char** argv) {\n  return 0;\n}\n",
		"svc/tool_test.cc":   "  int main() { return 0; }\n",
		"svc/api.proto":      "syntax = \"proto3\";\n",
		"svc/run.py":         "print('hi')\n",
		"svc/README.md":      "docs\n",
		"svc/nested/deep.h":  "",
		"svc/nested/deep.cc": "",
	})

	c := domain.NewClassifier(adapter.NewLocalSourceFSAdapter(root, testLogger()), testLogger())

	set, err := c.Classify(context.Background(), "svc")
	require.NoError(t, err)

	assert.Equal(t, m.Path("svc"), set.Dir)
	assert.Equal(t, []m.Path{"svc/bar.hpp", "svc/foo.h"}, set.Headers)
	assert.Equal(t, []m.Path{"svc/foo.cc"}, set.LibrarySrcs)
	assert.Equal(t, []m.Path{"svc/foo_test.cc"}, set.TestSrcs)
	// main wins over the test suffix
	assert.Equal(t, []m.Path{"svc/server.cc", "svc/tool_test.cc"}, set.BinarySrcs)
	assert.Equal(t, []m.Path{"svc/api.proto"}, set.Protos)
	assert.Equal(t, []m.Path{"svc/run.py"}, set.ScriptingSrcs)
}

func TestClassifier_Classify_MissingDir(t *testing.T) {
	c := domain.NewClassifier(adapter.NewLocalSourceFSAdapter(t.TempDir(), testLogger()), testLogger())

	_, err := c.Classify(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list missing")
}

func TestSkipReason(t *testing.T) {
	tests := []struct {
		name     string
		set      m.SourceSet
		wantSkip bool
		want     string
	}{
		{
			name:     "empty",
			set:      m.SourceSet{Dir: "a"},
			wantSkip: true,
			want:     "no files to generate descriptor rules",
		},
		{
			name:     "only scripting files counts as empty",
			set:      m.SourceSet{Dir: "a", ScriptingSrcs: []m.Path{"a/x.py"}},
			wantSkip: true,
			want:     "no files to generate descriptor rules",
		},
		{
			name:     "proto mixed with headers",
			set:      m.SourceSet{Dir: "a", Headers: []m.Path{"a/x.h"}, Protos: []m.Path{"a/x.proto"}},
			wantSkip: true,
			want:     "proto files mixed with C++ sources",
		},
		{
			name: "proto mixed wins over scripting",
			set: m.SourceSet{
				Dir:           "a",
				TestSrcs:      []m.Path{"a/x_test.cc"},
				Protos:        []m.Path{"a/x.proto"},
				ScriptingSrcs: []m.Path{"a/x.py"},
			},
			wantSkip: true,
			want:     "proto files mixed with C++ sources",
		},
		{
			name:     "scripting next to sources",
			set:      m.SourceSet{Dir: "a", Headers: []m.Path{"a/x.h"}, ScriptingSrcs: []m.Path{"a/x.py"}},
			wantSkip: true,
			want:     "contains scripting files",
		},
		{
			name: "proto only",
			set:  m.SourceSet{Dir: "a", Protos: []m.Path{"a/x.proto"}},
		},
		{
			name: "native only",
			set:  m.SourceSet{Dir: "a", Headers: []m.Path{"a/x.h"}, LibrarySrcs: []m.Path{"a/x.cc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, skip := domain.SkipReason(tt.set)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.want, reason)
		})
	}
}
