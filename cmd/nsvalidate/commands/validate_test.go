package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/logging"
	"github.com/thoreinstein/nsvalidate/internal/manifest"
	"github.com/thoreinstein/nsvalidate/internal/validator"
	"github.com/thoreinstein/nsvalidate/pkg/fileutil"
)

func exitErrorOf(t *testing.T, err error) *errors.ExitError {
	t.Helper()
	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T: %v", err, err)
	return exitErr
}

func TestValidateProject(t *testing.T) {
	ctx := logging.NewContext(context.Background(), logging.ForTest(t))

	t.Run("empty project fails silently", func(t *testing.T) {
		var buf bytes.Buffer
		err := validateProject(ctx, &buf, afero.NewMemMapFs(), checklist.Default(), outputOptions{format: validator.FormatText})

		exitErr := exitErrorOf(t, err)
		assert.Equal(t, errors.ExitUser, exitErr.Code)
		assert.True(t, exitErr.Silent())
		assert.Contains(t, buf.String(), "❌ 24 files are missing")
	})

	t.Run("quiet writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		err := validateProject(ctx, &buf, afero.NewMemMapFs(), checklist.Default(), outputOptions{quiet: true})

		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		assert.Empty(t, buf.String())
	})

	t.Run("unreadable manifest is a system error", func(t *testing.T) {
		afs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(afs, "package.json", []byte(`{"name": "api",}`), 0o644))

		var buf bytes.Buffer
		err := validateProject(ctx, &buf, afs, checklist.Default(), outputOptions{format: validator.FormatText})

		exitErr := exitErrorOf(t, err)
		assert.Equal(t, errors.ExitSystem, exitErr.Code)
		assert.False(t, exitErr.Silent())
		assert.True(t, errors.Is(err, errors.ErrManifestUnreadable))
		assert.Equal(t, "Fix the JSON syntax in package.json and re-run", exitErr.Suggestion)
		assert.True(t, strings.HasSuffix(buf.String(), "📦 Checking package.json dependencies...\n"))
	})
}

func TestValidateProject_ManifestSuggestion(t *testing.T) {
	ctx := logging.NewContext(context.Background(), logging.ForTest(t))

	tests := []struct {
		name    string
		setup   func(t *testing.T, afs afero.Fs)
		limit   int64
		want    string
		wantErr error
	}{
		{
			name: "syntax error",
			setup: func(t *testing.T, afs afero.Fs) {
				require.NoError(t, afero.WriteFile(afs, "package.json", []byte(`{"name": "api",}`), 0o644))
			},
			want: "Fix the JSON syntax in package.json and re-run",
		},
		{
			name: "array manifest",
			setup: func(t *testing.T, afs afero.Fs) {
				require.NoError(t, afero.WriteFile(afs, "package.json", []byte(`["express"]`), 0o644))
			},
			want:    `Make package.json a JSON object whose "dependencies" is an object`,
			wantErr: manifest.ErrNotObject,
		},
		{
			name: "dependencies not an object",
			setup: func(t *testing.T, afs afero.Fs) {
				require.NoError(t, afero.WriteFile(afs, "package.json", []byte(`{"dependencies": ["express"]}`), 0o644))
			},
			want:    `Make package.json a JSON object whose "dependencies" is an object`,
			wantErr: manifest.ErrDependenciesNotObject,
		},
		{
			name: "directory",
			setup: func(t *testing.T, afs afero.Fs) {
				require.NoError(t, afs.MkdirAll("package.json", 0o755))
			},
			want:    "package.json must be a file, not a directory",
			wantErr: fileutil.ErrIsDirectory,
		},
		{
			name: "over configured size",
			setup: func(t *testing.T, afs afero.Fs) {
				require.NoError(t, afero.WriteFile(afs, "package.json", []byte(manifestJSON(checklist.RequiredDependencies()...)), 0o644))
			},
			limit:   16,
			want:    "Raise or remove max_manifest_size in the config",
			wantErr: fileutil.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			afs := afero.NewMemMapFs()
			tt.setup(t, afs)
			list := checklist.Default()
			list.MaxManifestSize = tt.limit

			err := validateProject(ctx, io.Discard, afs, list, outputOptions{format: validator.FormatText})

			exitErr := exitErrorOf(t, err)
			assert.Equal(t, errors.ExitSystem, exitErr.Code)
			assert.True(t, errors.Is(err, errors.ErrManifestUnreadable))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
			assert.Equal(t, tt.want, exitErr.Suggestion)
		})
	}
}

func TestManifestSuggestion_Fallback(t *testing.T) {
	got := manifestSuggestion("package.json", errors.New("permission denied"))
	assert.Equal(t, "Check that package.json is readable", got)
}

func TestRootCommand_Pass(t *testing.T) {
	dir := writeProject(t, manifestJSON(checklist.RequiredDependencies()...))

	out, err := execute(t, "-C", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "🩸 Nightscout API Backend - Project Validation\n"))
	assert.Contains(t, out, "\n🎉 Project validation PASSED!\n")
	assert.Contains(t, out, "6. Or use 'docker-compose up' for containerized setup\n")
	assert.NotContains(t, out, "\x1b[", "non-terminal output is never colored")
}

func TestRootCommand_MissingCompressionStillPasses(t *testing.T) {
	deps := checklist.RequiredDependencies()
	dir := writeProject(t, manifestJSON(deps[:len(deps)-1]...))

	out, err := execute(t, "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "⚠️  Missing dependencies: compression\n")
	assert.Contains(t, out, "PASSED")
}

func TestRootCommand_EmptyDirectory(t *testing.T) {
	out, err := execute(t, "--dir", t.TempDir())

	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	assert.NotContains(t, out, "📦")
	assert.Contains(t, out, "Missing files: 24\n")
}

func TestRootCommand_JSON(t *testing.T) {
	dir := writeProject(t, manifestJSON("express"), "Dockerfile", "init.sql")

	out, err := execute(t, "-C", dir, "--json")
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	var report validator.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Summary.Missing)
	assert.Equal(t, 22, report.Summary.Present)
	assert.Len(t, report.MissingDependencies, 11)
}

func TestRootCommand_Abort(t *testing.T) {
	dir := writeProject(t, "[1, 2, 3]\n")

	out, err := execute(t, "-C", dir)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Contains(t, out, "✅ package.json - Valid JSON\n")
	assert.NotContains(t, out, "Project validation")
}

func TestRootCommand_ConfigOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifestJSON("express")), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nsvalidate.yaml"), []byte(`version: 1
root_files:
  - path: package.json
    description: Package configuration
source_files: []
public_files: []
required_dependencies: [express]
`), 0o644))

	out, err := execute(t, "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Total files checked: 1\n")
	assert.Contains(t, out, "✅ express: ^1.0.0\n")
	assert.Contains(t, out, "PASSED")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := writeProject(t, manifestJSON())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nsvalidate.yaml"), []byte("version: 2\n"), 0o644))

	out, err := execute(t, "-C", dir)
	require.Error(t, err)
	assert.Empty(t, out, "no check runs with an invalid config")

	exitErr := exitErrorOf(t, err)
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "unsupported config version: 2")
}

func TestRootCommand_BadProjectDir(t *testing.T) {
	_, err := execute(t, "-C", filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	exitErr := exitErrorOf(t, err)
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Equal(t, "Check the --dir flag", exitErr.Suggestion)
}

func TestRootCommand_JSONAndQuiet(t *testing.T) {
	_, err := execute(t, "-C", t.TempDir(), "--json", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRootCommand_Idempotent(t *testing.T) {
	dir := writeProject(t, manifestJSON("express", "pg"), "README.md")

	first, _ := execute(t, "-C", dir)
	second, _ := execute(t, "-C", dir)
	assert.Equal(t, first, second)
}
