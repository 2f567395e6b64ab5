package commands

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nsvalidate/internal/config"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/paths"
	"github.com/thoreinstein/nsvalidate/pkg/fileutil"
)

var (
	checklistFormat string
	checklistWrite  bool
	checklistForce  bool
)

func init() {
	checklistCmd.Flags().StringVarP(&checklistFormat, "format", "f", "yaml",
		"output format: yaml, toml, json")
	checklistCmd.Flags().BoolVar(&checklistWrite, "write", false,
		"write the checklist to .nsvalidate.yaml in the project directory")
	checklistCmd.Flags().BoolVar(&checklistForce, "force", false,
		"overwrite an existing project config with --write")
	rootCmd.AddCommand(checklistCmd)
}

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Print the effective checklist",
	Long: `Print the files, manifest and dependencies a validation run checks,
after applying any config file overrides.

The output uses the config file schema, so it can be saved and edited as a
starting point for .nsvalidate.yaml.`,
	Example: `  # Show the checklist as YAML
  nsvalidate checklist

  # Show it as TOML
  nsvalidate checklist --format toml

  # Create a project config to customise
  nsvalidate checklist --write

See Also: nsvalidate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if checklistWrite {
			return writeChecklist(cmd, afero.NewOsFs(), paths.ProjectConfigPath(projectDir), loadedConfig, checklistForce)
		}
		if quiet {
			return nil
		}
		format := checklistFormat
		if jsonOutput {
			format = "json"
		}
		return printChecklist(cmd.OutOrStdout(), loadedConfig, format)
	},
}

// printChecklist writes cfg to w in the named format.
func printChecklist(w io.Writer, cfg *config.Config, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "yml":
		data, err = fileutil.MarshalYAML(cfg)
	case "toml":
		data, err = fileutil.MarshalTOML(cfg)
	case "json":
		data, err = fileutil.MarshalJSON(cfg)
	default:
		return errors.NewUserError(errors.Newf("unsupported format %q", format), "Valid formats: yaml, toml, json")
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "writing checklist")
}

// writeChecklist saves cfg as YAML at path.
func writeChecklist(cmd *cobra.Command, afs afero.Fs, path string, cfg *config.Config, force bool) error {
	exists, err := fileutil.Exists(afs, path)
	if err != nil {
		return errors.Wrapf(err, "checking %s", path)
	}
	if exists && !force {
		return errors.NewUserError(errors.Newf("%s already exists", path), "Use --force to overwrite it")
	}

	if err := fileutil.AtomicWriteYAML(afs, path, cfg); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}
