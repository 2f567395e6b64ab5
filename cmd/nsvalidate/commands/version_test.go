package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nsvalidate/cmd"
)

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "nsvalidate version "+cmd.Version, lines[0])
	assert.Equal(t, "  commit: "+cmd.Commit, lines[1])
	assert.Equal(t, "  built:  "+cmd.Date, lines[2])
	assert.Equal(t, "  go:     "+runtime.Version(), lines[3])
}

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}

func TestGenDocCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "gen-doc", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Documentation generated in "+dir)
	assert.FileExists(t, dir+"/nsvalidate.md")
	assert.FileExists(t, dir+"/nsvalidate_checklist.md")
}

func TestGenDocCommand_RequiresOut(t *testing.T) {
	_, err := execute(t, "gen-doc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")
}

func TestGenDocCommand_OutDoesNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "gen-doc", "--out", dir)
	require.NoError(t, err)

	_, err = execute(t, "gen-doc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")
}
