package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/logging"
	"github.com/thoreinstein/nsvalidate/internal/manifest"
	"github.com/thoreinstein/nsvalidate/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Interactively browse checklist entries",
	Long: `Open a fuzzy finder over every expected file and required dependency.

The preview pane shows whether the selected file exists in the project and
which version package.json declares for the selected dependency.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		afs := afero.NewBasePathFs(afero.NewOsFs(), projectDir)
		items := findItems(afs, loadedConfig.Checklist(), logging.FromContext(cmd.Context()))
		return runFinder(cmd.OutOrStdout(), items)
	},
}

type findKind string

const (
	findKindFile       findKind = "file"
	findKindDependency findKind = "dependency"
)

// findItem is one row of the finder with its status resolved up front.
type findItem struct {
	kind    findKind
	name    string
	label   string
	present bool
	detail  string
}

func (i findItem) String() string {
	mark := "✅"
	if !i.present {
		mark = "❌"
	}
	return fmt.Sprintf("%s %s: %s", mark, i.kind, i.name)
}

func (i findItem) preview() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Kind:    %s\n", i.kind)
	fmt.Fprintf(&sb, "Name:    %s\n", i.name)
	if i.label != "" {
		fmt.Fprintf(&sb, "Label:   %s\n", i.label)
	}
	status := "present"
	if !i.present {
		status = "MISSING"
	}
	fmt.Fprintf(&sb, "Status:  %s\n", status)
	if i.detail != "" {
		fmt.Fprintf(&sb, "\n%s\n", i.detail)
	}
	return sb.String()
}

// findItems resolves the status of every checklist entry and required
// dependency against afs.
func findItems(afs afero.Fs, list checklist.Checklist, logger *slog.Logger) []findItem {
	items := make([]findItem, 0, len(list.Entries)+len(list.RequiredDependencies))

	for _, e := range list.Entries {
		ok, err := fileutil.Exists(afs, e.Path)
		if err != nil {
			logger.Warn("cannot stat checklist entry", "path", e.Path, "error", err)
		}
		items = append(items, findItem{
			kind:    findKindFile,
			name:    e.Path,
			label:   e.Description,
			present: ok,
			detail:  "Category: " + string(e.Category),
		})
	}

	var (
		deps   manifest.Dependencies
		reason string
	)
	m, err := manifest.LoadWithLimit(afs, list.Manifest, list.MaxManifestSize)
	if err == nil {
		deps, err = m.Dependencies()
	}
	if err != nil {
		reason = fmt.Sprintf("%s: %v", list.Manifest, err)
		logger.Debug("dependencies unavailable", "manifest", list.Manifest, "error", err)
	}

	for _, name := range list.RequiredDependencies {
		item := findItem{kind: findKindDependency, name: name, present: deps.Has(name)}
		switch {
		case item.present:
			item.detail = "Version: " + deps.Version(name)
		case reason != "":
			item.detail = reason
		}
		items = append(items, item)
	}

	return items
}

func runFinder(w io.Writer, items []findItem) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "Checklist is empty.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string {
			return items[i].String()
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return items[i].preview()
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive find failed")
	}

	fmt.Fprint(w, items[idx].preview())
	return nil
}
