package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with fresh flag state and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagConfig, flagLogLevel, flagJSON = "", defaultLogLevel, false
	flagExt, flagMime, flagCatalogOnly = "", "", false
	var reset func(*cobra.Command)
	reset = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := run(context.Background())
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "general.plain-text", "--json")
	require.NoError(t, err)

	var v descriptorView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "general.plain-text", v.TypeID)
	assert.NotEmpty(t, v.Description)
	assert.Contains(t, v.MimeTypes, "text/plain")
	assert.Contains(t, v.FilenameExtensions, ".txt")
	assert.Equal(t, []string{"general.text"}, v.BelongingTo)
	assert.Nil(t, lib, "library must be closed after the command")

	out, err = execute(t, "describe", "general.plain-text")
	require.NoError(t, err)
	assert.Contains(t, out, "general.plain-text")
	assert.Contains(t, out, ".txt")

	_, err = execute(t, "describe", "com.example.unknown")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	out, err := execute(t, "lookup", "--ext", ".txt", "--json")
	require.NoError(t, err)
	var ids []string
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.Equal(t, []string{"general.plain-text"}, ids)

	out, err = execute(t, "lookup", "--mime", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "general.png\n", out)

	_, err = execute(t, "lookup", "--mime", "application/x-nothing")
	assert.Error(t, err)

	_, err = execute(t, "lookup")
	assert.Error(t, err)
}

func TestBelongs(t *testing.T) {
	out, err := execute(t, "belongs", "general.plain-text", "general.text", "--json")
	require.NoError(t, err)

	var v relationView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.BelongsTo)
	assert.True(t, v.IsLower)
	assert.False(t, v.IsHigher)
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types", "--catalog-only", "--json")
	require.NoError(t, err)

	var rows []typeRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.True(t, r.InCatalog, r.ID)
	}

	out, err = execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "* general.plain-text")
	assert.Contains(t, out, "  com.amazon.kfx")
}

func TestDetect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello, world\n"), 0o644))

	out, err := execute(t, "detect", path, "--json")
	require.NoError(t, err)

	var v detectView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Contains(t, v.MimeType, "text/plain")
	assert.Equal(t, []string{"general.plain-text"}, v.ByPath)
	assert.Contains(t, v.ByContent, "general.plain-text")
}

func TestCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`types:
  - id: com.example.note
    description: A note.
    filename_extensions: [.note]
`), 0o644))
	config := filepath.Join(dir, "udmfctl.yaml")
	require.NoError(t, os.WriteFile(config, []byte("catalog: "+catalog+"\n"), 0o644))

	out, err := execute(t, "--config", config, "lookup", "--ext", ".note")
	require.NoError(t, err)
	assert.Equal(t, "com.example.note\n", out)
}
