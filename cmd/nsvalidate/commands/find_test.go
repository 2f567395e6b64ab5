package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/logging"
)

func TestFindItems(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "package.json", []byte(`{"dependencies": {"express": "^4.18.2"}}`), 0o644))

	list := checklist.Checklist{
		Entries: []checklist.Entry{
			{Path: "package.json", Description: "Package configuration", Category: checklist.CategoryRoot},
			{Path: "README.md", Description: "Documentation", Category: checklist.CategoryRoot},
		},
		Manifest:             "package.json",
		RequiredDependencies: []string{"express", "pg"},
	}

	items := findItems(afs, list, logging.ForTest(t))
	require.Len(t, items, 4)

	assert.Equal(t, "✅ file: package.json", items[0].String())
	assert.Equal(t, "❌ file: README.md", items[1].String())
	assert.Equal(t, "✅ dependency: express", items[2].String())
	assert.Equal(t, "❌ dependency: pg", items[3].String())

	assert.Contains(t, items[1].preview(), "Status:  MISSING\n")
	assert.Contains(t, items[1].preview(), "Label:   Documentation\n")
	assert.Contains(t, items[2].preview(), "Version: ^4.18.2")
}

func TestFindItems_BrokenManifest(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "package.json", []byte(`{"dependencies": `), 0o644))

	items := findItems(afs, checklist.Default(), logging.ForTest(t))
	require.Len(t, items, 24+12)

	dep := items[24]
	assert.False(t, dep.present)
	assert.Contains(t, dep.preview(), "package.json: line 1")
}

func TestRunFinder_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFinder(&buf, nil))
	assert.Equal(t, "Checklist is empty.\n", buf.String())
}
