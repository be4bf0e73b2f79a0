package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescriptor = `cc_library(
    name='foo',
    hdrs=[
        'foo.h',
    ],
    visibility=['PUBLIC'],
)
`

func TestLocalDescriptorStore_SaveDescriptor(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "foo"))

	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := NewDescriptorStore(NewLocalSourceFSAdapter(root, logger), logger)

	t.Run("writes a new file", func(t *testing.T) {
		require.NoError(t, store.SaveDescriptor(ctx, "foo", []byte(sampleDescriptor)))

		data, err := os.ReadFile(filepath.Join(root, "foo", DescriptorFileName))
		require.NoError(t, err)
		assert.Equal(t, sampleDescriptor, string(data))
	})

	t.Run("unchanged content is still written", func(t *testing.T) {
		logs.Reset()
		require.NoError(t, store.SaveDescriptor(ctx, "foo", []byte(sampleDescriptor)))
		assert.Contains(t, logs.String(), "Descriptor unchanged")
	})

	t.Run("changed content logs a diff", func(t *testing.T) {
		logs.Reset()

		changed := bytes.Replace([]byte(sampleDescriptor), []byte("'foo.h',"), []byte("'bar.h',"), 1)
		require.NoError(t, store.SaveDescriptor(ctx, "foo", changed))

		assert.Contains(t, logs.String(), "Descriptor changed")
		assert.Contains(t, logs.String(), "-        'foo.h',")
		assert.Contains(t, logs.String(), "+        'bar.h',")

		data, err := os.ReadFile(filepath.Join(root, "foo", DescriptorFileName))
		require.NoError(t, err)
		assert.Equal(t, changed, data)
	})

	t.Run("workspace root", func(t *testing.T) {
		require.NoError(t, store.SaveDescriptor(ctx, "", []byte(sampleDescriptor)))
		assert.FileExists(t, filepath.Join(root, DescriptorFileName))
	})
}

func TestLocalDescriptorStore_WritesMalformedContent(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "foo"))

	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, nil))
	store := NewDescriptorStore(NewLocalSourceFSAdapter(root, logger), logger)

	content := []byte("cc_test(\n    name='it's',\n    srcs=[\n        'it's.cc',\n    ],\n)\n")
	require.NoError(t, store.SaveDescriptor(context.Background(), "foo", content))

	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "Rendered descriptor does not parse")

	data, err := os.ReadFile(filepath.Join(root, "foo", DescriptorFileName))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestLocalDescriptorStore_EmptyContent(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "foo"))

	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, nil))
	store := NewDescriptorStore(NewLocalSourceFSAdapter(root, logger), logger)

	require.NoError(t, os.WriteFile(filepath.Join(root, "foo", DescriptorFileName), []byte("cc_library(name='stale')\n"), 0o600))
	require.NoError(t, store.SaveDescriptor(context.Background(), "foo", nil))

	assert.NotContains(t, logs.String(), "level=ERROR")

	data, err := os.ReadFile(filepath.Join(root, "foo", DescriptorFileName))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLocalDescriptorStore_WriteError(t *testing.T) {
	store := NewDescriptorStore(NewLocalSourceFSAdapter(t.TempDir(), testLogger()), testLogger())

	err := store.SaveDescriptor(context.Background(), "missing", []byte(sampleDescriptor))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write descriptor missing/BUILD")
}
