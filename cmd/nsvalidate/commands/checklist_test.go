package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/nsvalidate/internal/config"
	"github.com/thoreinstein/nsvalidate/internal/errors"
)

func TestChecklistCommand_Formats(t *testing.T) {
	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
		{"json", json.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, "checklist", "-C", t.TempDir(), "--format", tt.format)
			require.NoError(t, err)

			var got config.Config
			require.NoError(t, tt.unmarshal([]byte(out), &got))
			assert.Equal(t, 1, got.Version)
			assert.Equal(t, "package.json", got.Manifest)
			assert.Len(t, got.RootFiles, 7)
			assert.Len(t, got.SourceFiles, 14)
			assert.Len(t, got.PublicFiles, 3)
			assert.Equal(t, "express", got.RequiredDependencies[0])
		})
	}
}

func TestChecklistCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "checklist", "-C", t.TempDir(), "--format", "ini")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestChecklistCommand_Write(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".nsvalidate.yaml")

	out, err := execute(t, "checklist", "-C", dir, "--write")
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+target+"\n", out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var written config.Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Len(t, written.SourceFiles, 14)

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := execute(t, "checklist", "-C", dir, "--write")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("force overwrites", func(t *testing.T) {
		_, err := execute(t, "checklist", "-C", dir, "--write", "--force")
		require.NoError(t, err)
	})

	t.Run("written file loads back", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		config.Init()
		cfg, err := config.Load(dir, "")
		require.NoError(t, err)
		assert.Equal(t, target, cfg.Source())
		assert.Len(t, cfg.Checklist().Entries, 24)
	})
}

func TestChecklistCommand_ReflectsOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nsvalidate.toml"), []byte(`
required_dependencies = ["express", "pg"]
`), 0o644))

	out, err := execute(t, "checklist", "-C", dir, "--json")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"express", "pg"}, got.RequiredDependencies)
	assert.Len(t, got.RootFiles, 7)
}
