package commands

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/logging"
	"github.com/thoreinstein/nsvalidate/internal/manifest"
	"github.com/thoreinstein/nsvalidate/internal/validator"
	"github.com/thoreinstein/nsvalidate/pkg/fileutil"
)

// outputOptions selects how a report is written.
type outputOptions struct {
	format validator.Format
	quiet  bool
	color  bool
}

func runValidate(cmd *cobra.Command, _ []string) error {
	opts := outputOptions{
		format: validator.FormatText,
		quiet:  quiet,
		color:  useColor(cmd),
	}
	if jsonOutput {
		opts.format = validator.FormatJSON
	}

	afs := afero.NewBasePathFs(afero.NewOsFs(), projectDir)
	return validateProject(cmd.Context(), cmd.OutOrStdout(), afs, loadedConfig.Checklist(), opts)
}

// validateProject runs one validation pass over afs and writes the report.
// It returns nil on a passing verdict and an *errors.ExitError otherwise.
func validateProject(ctx context.Context, w io.Writer, afs afero.Fs, list checklist.Checklist, opts outputOptions) error {
	logger := logging.FromContext(ctx)
	logger.Debug("validating project", "entries", list.Len(), "manifest", list.Manifest)

	report, runErr := validator.New(afs, list, logger).Run(ctx)

	if !opts.quiet {
		reporter := validator.NewReporter(w, opts.format).SetColor(opts.color)
		if err := reporter.Report(report); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if runErr != nil {
		if errors.Is(runErr, errors.ErrManifestUnreadable) {
			return errors.NewSystemError(runErr, manifestSuggestion(list.Manifest, runErr))
		}
		return errors.NewSystemError(runErr, "")
	}

	if !report.Passed {
		return errors.NewExitError(errors.ErrValidationFailed, report.ExitCode())
	}
	return nil
}

// manifestSuggestion says how to get past an unreadable manifest, based on
// why it could not be read.
func manifestSuggestion(path string, err error) string {
	switch {
	case manifest.IsSyntaxError(err):
		return "Fix the JSON syntax in " + path + " and re-run"
	case errors.Is(err, manifest.ErrNotObject), errors.Is(err, manifest.ErrDependenciesNotObject):
		return "Make " + path + ` a JSON object whose "dependencies" is an object`
	case errors.Is(err, fileutil.ErrIsDirectory):
		return path + " must be a file, not a directory"
	case errors.Is(err, fileutil.ErrFileTooLarge):
		return "Raise or remove max_manifest_size in the config"
	default:
		return "Check that " + path + " is readable"
	}
}
