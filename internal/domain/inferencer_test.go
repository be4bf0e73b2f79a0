package domain_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bladegen.dev/pkg/bladegen/internal/adapter"
	"bladegen.dev/pkg/bladegen/internal/domain"
	m "bladegen.dev/pkg/bladegen/internal/model"
)

// workspaceFixture is shared by the inference tests. File contents other
// than the scanned unit do not matter.
var workspaceFixture = map[string]string{
	"base/log/log.h":                                "",
	"base/strings/split.h":                          "",
	"svc/handler.h":                                 "",
	"svc/internal/impl.h":                           "",
	"proto/api/api.proto":                           "",
	"thirdparty/openssl/include/openssl/ssl.h":      "",
	"thirdparty/grpc-v1.48.1/include/grpcpp/grpc.h": "",
	"thirdparty/blade-build/test/grpcpp/grpc.h":     "",
	"thirdparty/json-a/include/json/json.h":         "",
	"thirdparty/json-b/include/json/json.h":         "",
}

func newFixtureInferencer(t *testing.T, unit map[string]string) (domain.Inferencer, string) {
	t.Helper()

	root := t.TempDir()
	writeTree(t, root, workspaceFixture)
	writeTree(t, root, unit)

	rules, err := domain.DefaultRules()
	require.NoError(t, err)

	fs := adapter.NewLocalSourceFSAdapter(root, testLogger())

	return domain.NewInferencer(fs, rules, "thirdparty", testLogger()), root
}

func TestInferencer_Deps(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		opts domain.DepOptions
		want []m.Dep
	}{
		{
			name: "same directory header in a library",
			src:  "#include \"handler.h\"\n#include \"svc/handler.h\"\n",
			want: []m.Dep{},
		},
		{
			name: "same directory headers in an executable",
			src:  "#include \"handler.h\"\n#include \"svc/handler.h\"\n#include \"unit.cc\"\n",
			opts: domain.DepOptions{Executable: true},
			want: []m.Dep{":svc"},
		},
		{
			name: "same directory header in an entry point folder",
			src:  "#include \"svc/handler.h\"\n",
			opts: domain.DepOptions{Executable: true, EntryPoint: true},
			want: []m.Dep{":svc_lib"},
		},
		{
			name: "workspace header becomes absolute reference",
			src:  "#include \"base/log/log.h\"\n",
			want: []m.Dep{"//base/log:log"},
		},
		{
			name: "subfolder header becomes relative reference",
			src:  "#include \"svc/internal/impl.h\"\n#include \"internal/impl.h\"\n",
			want: []m.Dep{"internal:internal"},
		},
		{
			name: "generated proto header",
			src:  "#include \"proto/api/api.pb.h\"\n",
			want: []m.Dep{"//proto/api:api_proto"},
		},
		{
			name: "pseudo references",
			src:  "#include \"zlib.h\"\n#include <curl/curl.h>\n#include <libavutil/frame.h>\n",
			want: []m.Dep{"#avutil", "#curl", "#z"},
		},
		{
			name: "unknown system header is left to the toolchain",
			src:  "#include <vector>\n#include <sys/types.h>\n",
			want: []m.Dep{},
		},
		{
			name: "test framework header is ignored",
			src:  "#include \"gtest/gtest.h\"\n",
			want: []m.Dep{},
		},
		{
			name: "aggregate and folder rules",
			src:  "#include \"opencv2/opencv.hpp\"\n#include \"opencv2/imgcodecs.hpp\"\n#include \"opencv2/core.hpp\"\n",
			want: []m.Dep{"#opencv_core", "#opencv_highgui", "#opencv_imgcodecs", "#opencv_imgproc"},
		},
		{
			name: "single vendored match",
			src:  "#include \"openssl/ssl.h\"\n",
			want: []m.Dep{"//thirdparty/openssl:openssl"},
		},
		{
			name: "vendored folder with renamed target skips excluded folders",
			src:  "#include \"grpcpp/grpc.h\"\n",
			want: []m.Dep{"//thirdparty/grpc-v1.48.1:grpc"},
		},
		{
			name: "unresolvable header is dropped",
			src:  "#include \"nowhere/none.h\"\n",
			want: []m.Dep{},
		},
		{
			name: "sorted and deduplicated",
			src: `#include "zlib.h"
#include "base/strings/split.h"
#include "base/log/log.h"
#include <zlib.h>
#include "base/log/log.h"
`,
			want: []m.Dep{"#z", "//base/log:log", "//base/strings:split"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in, _ := newFixtureInferencer(t, map[string]string{"svc/unit.cc": tc.src})

			got, err := in.Deps(context.Background(), "svc", []m.Path{"svc/unit.cc"}, tc.opts)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Deps() diff -want +got:\n%s", diff)
			}
		})
	}
}

func TestInferencer_Deps_MergesFiles(t *testing.T) {
	in, _ := newFixtureInferencer(t, map[string]string{
		"svc/unit.h":  "#include \"base/log/log.h\"\n",
		"svc/unit.cc": "#include \"unit.h\"\n#include <zlib.h>\n#include \"base/log/log.h\"\n",
	})

	got, err := in.Deps(context.Background(), "svc", []m.Path{"svc/unit.h", "svc/unit.cc"}, domain.DepOptions{})
	require.NoError(t, err)
	assert.Equal(t, []m.Dep{"#z", "//base/log:log"}, got)
}

func TestInferencer_Deps_NoFiles(t *testing.T) {
	in, _ := newFixtureInferencer(t, nil)

	got, err := in.Deps(context.Background(), "svc", nil, domain.DepOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInferencer_Deps_AmbiguousVendoredHeader(t *testing.T) {
	in, _ := newFixtureInferencer(t, map[string]string{"svc/unit.cc": "#include \"json/json.h\"\n"})

	_, err := in.Deps(context.Background(), "svc", []m.Path{"svc/unit.cc"}, domain.DepOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousVendorHeader)
	assert.Contains(t, err.Error(), "thirdparty/json-a/include/json/json.h")
	assert.Contains(t, err.Error(), "thirdparty/json-b/include/json/json.h")
}

func TestInferencer_Deps_UnreadableFile(t *testing.T) {
	in, _ := newFixtureInferencer(t, nil)

	_, err := in.Deps(context.Background(), "svc", []m.Path{"svc/missing.cc"}, domain.DepOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read svc/missing.cc")
}

func TestInferencer_ProtoDeps(t *testing.T) {
	in, _ := newFixtureInferencer(t, map[string]string{
		"proto/common/base.proto": "syntax = \"proto3\";\n",
		"proto/svc/svc.proto": `syntax = "proto3";
import "proto/common/base.proto";
import "proto/svc/types.proto";
import "proto/api/api.proto";
import "proto/common/base.proto";
`,
		"proto/svc/types.proto": "syntax = \"proto3\";\n",
	})

	got, err := in.ProtoDeps(context.Background(), "proto/svc", []m.Path{"proto/svc/svc.proto", "proto/svc/types.proto"})
	require.NoError(t, err)
	assert.Equal(t, []m.Dep{"//proto/api:api_proto", "//proto/common:common_proto"}, got)
}

func TestInferencer_ProtoDeps_MissingImport(t *testing.T) {
	in, _ := newFixtureInferencer(t, map[string]string{
		"proto/svc/svc.proto": "syntax = \"proto3\";\nimport \"proto/gone/gone.proto\";\n",
	})

	_, err := in.ProtoDeps(context.Background(), "proto/svc", []m.Path{"proto/svc/svc.proto"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingProtoImport)
	assert.Contains(t, err.Error(), "proto/gone/gone.proto")
}
