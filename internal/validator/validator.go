package validator

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/logging"
	"github.com/thoreinstein/nsvalidate/internal/manifest"
	"github.com/thoreinstein/nsvalidate/pkg/fileutil"
)

// Validator checks one project tree against a checklist. It holds no state
// between runs, so Run can be called repeatedly.
type Validator struct {
	fs     afero.Fs
	list   checklist.Checklist
	logger *slog.Logger
}

// New creates a Validator. Paths in list are resolved against afs, which is
// normally rooted at the project directory. A nil logger discards logs.
func New(afs afero.Fs, list checklist.Checklist, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Validator{
		fs:     afs,
		list:   list,
		logger: logger,
	}
}

// CheckFileExists reports whether the entry's path exists. Directories
// count as present. Stat failures other than "not exist" are logged and
// reported as missing.
func (v *Validator) CheckFileExists(entry checklist.Entry) FileResult {
	ok, err := fileutil.Exists(v.fs, entry.Path)
	if err != nil {
		v.logger.Warn("cannot stat checklist entry", "path", entry.Path, "error", err)
	}
	v.logger.Log(context.Background(), logging.LevelTrace, "checked file", "path", entry.Path, "present", ok)

	return FileResult{
		Path:        entry.Path,
		Description: entry.Description,
		Category:    entry.Category,
		Present:     ok,
	}
}

// ValidateJSONFile parses path as JSON. A missing file is invalid and
// carries neither a diagnostic nor an error message.
func (v *Validator) ValidateJSONFile(path string) JSONResult {
	res, _, _ := v.validateJSON(path)
	return res
}

// validateJSON is ValidateJSONFile that also hands back the decoded
// manifest, or the reason there is none.
func (v *Validator) validateJSON(path string) (JSONResult, *manifest.Manifest, error) {
	res := JSONResult{Path: path}

	m, err := manifest.LoadWithLimit(v.fs, path, v.list.MaxManifestSize)
	switch {
	case err == nil:
		res.Valid = true
	case errors.Is(err, fs.ErrNotExist):
		v.logger.Debug("json file not found", "path", path)
	default:
		var se *manifest.SyntaxError
		if errors.As(err, &se) {
			res.Diagnostic = se
			v.logger.Debug("json syntax error", "path", path, "line", se.Line, "column", se.Column)
		} else {
			res.Error = err.Error()
			v.logger.Warn("cannot read json file", "path", path, "error", err)
		}
	}

	return res, m, err
}

// Run performs a full validation pass.
//
// The returned report is never nil. When the manifest exists but its
// dependencies cannot be extracted, Run returns the report completed up to
// that point together with an error matching errors.ErrManifestUnreadable.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Manifest: v.list.Manifest,
		Files:    make([]FileResult, 0, len(v.list.Entries)),
		Summary:  Summary{JSONValid: true},
	}

	v.logger.Debug("checking project structure", "entries", len(v.list.Entries))
	for _, entry := range v.list.Entries {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "checking project structure")
		}
		res := v.CheckFileExists(entry)
		if !res.Present {
			report.Summary.Missing++
		}
		report.Files = append(report.Files, res)
	}

	report.Summary.FilesChecked = len(v.list.Entries)
	report.Summary.Present = report.Summary.FilesChecked - report.Summary.Missing

	if err := ctx.Err(); err != nil {
		return report, errors.Wrap(err, "validating manifest")
	}

	present, err := fileutil.Exists(v.fs, v.list.Manifest)
	if err != nil {
		v.logger.Warn("cannot stat manifest", "path", v.list.Manifest, "error", err)
	}
	report.ManifestPresent = present

	if present {
		res, m, loadErr := v.validateJSON(v.list.Manifest)
		report.JSON = &res
		if !res.Valid {
			report.Summary.JSONValid = false
		}

		deps, err := dependenciesOf(m, loadErr)
		if err != nil {
			report.Aborted = true
			report.AbortReason = err.Error()
			v.logger.Error("dependency check aborted", "manifest", v.list.Manifest, "error", err)
			return report, errors.Mark(
				errors.Wrapf(err, "reading dependencies from %s", v.list.Manifest),
				errors.ErrManifestUnreadable,
			)
		}

		report.Dependencies = make([]DependencyResult, 0, len(v.list.RequiredDependencies))
		for _, name := range v.list.RequiredDependencies {
			dr := DependencyResult{Name: name, Present: deps.Has(name)}
			if dr.Present {
				dr.Version = deps.Version(name)
			} else {
				report.MissingDependencies = append(report.MissingDependencies, name)
			}
			report.Dependencies = append(report.Dependencies, dr)
		}
		if n := len(report.MissingDependencies); n > 0 {
			v.logger.Info("required dependencies missing", "count", n)
		}
	} else {
		v.logger.Debug("manifest absent, skipping json and dependency checks", "path", v.list.Manifest)
	}

	report.Endpoints = checklist.Endpoints()
	report.Passed = report.Summary.Missing == 0 && report.Summary.JSONValid

	v.logger.Debug("validation finished",
		"passed", report.Passed,
		"missing", report.Summary.Missing,
		"json_valid", report.Summary.JSONValid,
	)

	return report, nil
}

// dependenciesOf extracts the dependency mapping from the one decode of the
// manifest. loadErr is the error that decode produced, if any.
func dependenciesOf(m *manifest.Manifest, loadErr error) (manifest.Dependencies, error) {
	if loadErr != nil {
		return nil, loadErr
	}
	if m == nil {
		return nil, manifest.ErrNotObject
	}
	return m.Dependencies()
}
