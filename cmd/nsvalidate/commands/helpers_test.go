package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
)

// resetFlags restores every package-level flag variable to its default.
func resetFlags() {
	projectDirFlag = "."
	configFlag = ""
	jsonOutput = false
	quiet = false
	noColor = false
	verbosity = 0
	logFormat = "text"
	logFile = ""
	checklistFormat = "yaml"
	checklistWrite = false
	checklistForce = false
	genDocOut = ""
}

// execute runs the root command with args and returns what it wrote to
// stdout. Flags start from their defaults and the user config directory is
// isolated to a temp dir.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// manifestJSON declares deps as dependencies of a package.json.
func manifestJSON(deps ...string) string {
	s := `{"name": "nightscout-api", "dependencies": {`
	for i, d := range deps {
		if i > 0 {
			s += ", "
		}
		s += `"` + d + `": "^1.0.0"`
	}
	return s + "}}\n"
}

// writeProject creates a project directory containing every built-in
// checklist entry except skip.
func writeProject(t *testing.T, manifest string, skip ...string) string {
	t.Helper()
	dir := t.TempDir()
	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}
	for _, e := range checklist.All() {
		if skipped[e.Path] {
			continue
		}
		content := "# " + e.Description + "\n"
		if e.Path == checklist.ManifestPath {
			content = manifest
		}
		path := filepath.Join(dir, filepath.FromSlash(e.Path))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
