package validator

import (
	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/manifest"
)

// FileResult is the outcome of one existence check.
type FileResult struct {
	Path        string             `json:"path"`
	Description string             `json:"description"`
	Category    checklist.Category `json:"category,omitempty"`
	Present     bool               `json:"present"`
}

// Summary aggregates the structure and JSON phases.
type Summary struct {
	// FilesChecked is the number of checklist entries.
	FilesChecked int `json:"files_checked"`

	// Missing is the number of entries that do not exist.
	Missing int `json:"missing"`

	// Present is FilesChecked minus Missing.
	Present int `json:"present"`

	// JSONValid starts true and is cleared only by a manifest that failed
	// to parse. An absent manifest leaves it true.
	JSONValid bool `json:"json_valid"`
}

// JSONResult is the outcome of parsing one JSON file.
type JSONResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`

	// Diagnostic locates the syntax error, if that is why Valid is false.
	Diagnostic *manifest.SyntaxError `json:"diagnostic,omitempty"`

	// Error holds a read failure that is not a syntax error.
	Error string `json:"error,omitempty"`
}

// DependencyResult is the outcome of looking up one required dependency.
type DependencyResult struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Version string `json:"version,omitempty"`
}

// Report is everything a run found, in the order it was found.
type Report struct {
	Files   []FileResult `json:"files"`
	Summary Summary      `json:"summary"`

	// Manifest is the manifest path relative to the project.
	Manifest        string `json:"manifest"`
	ManifestPresent bool   `json:"manifest_present"`

	// JSON is nil when the manifest is absent.
	JSON *JSONResult `json:"json,omitempty"`

	Dependencies        []DependencyResult `json:"dependencies,omitempty"`
	MissingDependencies []string           `json:"missing_dependencies,omitempty"`

	Endpoints []checklist.EndpointGroup `json:"endpoints,omitempty"`

	Passed bool `json:"passed"`

	// Aborted is set when the dependency phase could not run. Every field
	// after JSON is then empty and Passed is false.
	Aborted     bool   `json:"aborted,omitempty"`
	AbortReason string `json:"abort_reason,omitempty"`
}

// ExitCode maps the verdict to a process exit code.
func (r *Report) ExitCode() int {
	switch {
	case r == nil || r.Aborted:
		return errors.ExitSystem
	case r.Passed:
		return errors.ExitSuccess
	default:
		return errors.ExitUser
	}
}

// MissingFiles returns the entries that were not found, in checklist order.
func (r *Report) MissingFiles() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if !f.Present {
			out = append(out, f)
		}
	}
	return out
}
