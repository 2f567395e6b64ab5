package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces the human-readable report.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Title is the first line of every text report.
const Title = "🩸 Nightscout API Backend - Project Validation"

// ruleWidth is the length of the "=" line under the title.
const ruleWidth = 50

// nextSteps is printed after a passing verdict.
var nextSteps = []string{
	"Install Node.js and npm",
	"Run 'npm install' to install dependencies",
	"Set up PostgreSQL database",
	"Copy .env.example to .env and configure",
	"Run 'npm run dev' to start development server",
	"Or use 'docker-compose up' for containerized setup",
}

// Reporter formats and writes validation results.
type Reporter struct {
	out      io.Writer
	format   Format
	useColor bool
}

// NewReporter creates a new Reporter. Output is uncolored until
// SetColor(true) is called.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// SetColor enables or disables ANSI colors in text output.
func (r *Reporter) SetColor(enabled bool) *Reporter {
	r.useColor = enabled
	return r
}

// Report writes the validation result to the output.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(report)
	default:
		return r.reportText(report)
	}
}

// ReportEndpoints writes only the endpoint summary.
func (r *Reporter) ReportEndpoints(groups []checklist.EndpointGroup) error {
	if r.format == FormatJSON {
		return r.writeJSON(groups)
	}
	w := &textWriter{out: r.out}
	r.endpoints(w, groups)
	return w.err
}

func (r *Reporter) writeJSON(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "encoding JSON report")
}

// textWriter remembers the first write error so the section printers can
// stay linear.
type textWriter struct {
	out io.Writer
	err error
}

func (w *textWriter) println(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s+"\n")
}

func (w *textWriter) printf(format string, args ...any) {
	w.println(fmt.Sprintf(format, args...))
}

func (r *Reporter) reportText(report *Report) error {
	w := &textWriter{out: r.out}

	w.println(Title)
	w.println(strings.Repeat("=", ruleWidth))

	w.println("\n📁 Checking project structure...")
	for _, f := range report.Files {
		if f.Present {
			w.printf("✅ %s: %s", f.Description, f.Path)
		} else {
			w.printf("❌ %s: %s - %s", f.Description, f.Path, r.paint(color.FgRed, "MISSING"))
		}
	}

	s := report.Summary
	w.println("\n📊 Validation Summary:")
	w.printf("Total files checked: %d", s.FilesChecked)
	w.printf("Missing files: %d", s.Missing)
	w.printf("Present files: %d", s.Present)

	w.println("\n🔍 Validating JSON files...")
	if j := report.JSON; j != nil {
		switch {
		case j.Valid:
			w.printf("✅ %s - Valid JSON", j.Path)
		case j.Diagnostic != nil:
			w.printf("❌ JSON syntax error in %s: %s", j.Path, j.Diagnostic)
		case j.Error != "":
			w.printf("❌ Cannot read %s: %s", j.Path, j.Error)
		}
	}

	if report.ManifestPresent {
		w.printf("\n📦 Checking %s dependencies...", report.Manifest)
		if report.Aborted {
			// Nothing after this point ran.
			return w.err
		}
		for _, d := range report.Dependencies {
			if d.Present {
				w.printf("✅ %s: %s", d.Name, d.Version)
			} else {
				w.printf("❌ %s: %s", d.Name, r.paint(color.FgRed, "MISSING"))
			}
		}
		if len(report.MissingDependencies) > 0 {
			w.printf("\n⚠️  Missing dependencies: %s", strings.Join(report.MissingDependencies, ", "))
		}
	}

	r.endpoints(w, report.Endpoints)

	if report.Passed {
		w.println("\n" + r.paint(color.FgGreen, "🎉 Project validation PASSED!"))
		w.println("✅ All required files are present")
		w.println("✅ JSON files are valid")
		w.println("\n🚀 Next steps:")
		for i, step := range nextSteps {
			w.printf("%d. %s", i+1, step)
		}
		return w.err
	}

	w.println("\n" + r.paint(color.FgRed, "❌ Project validation FAILED!"))
	if s.Missing > 0 {
		w.printf("❌ %d files are missing", s.Missing)
	}
	if !s.JSONValid {
		w.println("❌ JSON validation errors found")
	}
	return w.err
}

func (r *Reporter) endpoints(w *textWriter, groups []checklist.EndpointGroup) {
	w.println("\n🔌 API Endpoints Summary:")
	for i, g := range groups {
		if i > 0 {
			w.println("")
		}
		w.println(g.Title + ":")
		for _, e := range g.Endpoints {
			w.println("  " + e.String())
		}
	}
}

func (r *Reporter) paint(attr color.Attribute, s string) string {
	if !r.useColor {
		return s
	}
	c := color.New(attr, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}
