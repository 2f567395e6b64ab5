package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
)

// validate is the shared validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("relpath", func(fl validator.FieldLevel) bool {
		return validRelPath(fl.Field().String())
	}); err != nil {
		panic("config: registering relpath validation: " + err.Error())
	}
}

// FieldError is one invalid configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every invalid field of a Config.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets callers match ValidationErrors with errors.ErrInvalidConfig.
func (e ValidationErrors) Unwrap() error {
	return errors.ErrInvalidConfig
}

// Validate checks a Config. It returns nil or a ValidationErrors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ValidationErrors{{Field: "config", Message: "is nil"}}
	}

	var out ValidationErrors
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "validating config")
		}
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: message(fe),
			})
		}
	}

	for _, e := range entriesOf(cfg) {
		if !validRelPath(e.path) {
			out = append(out, FieldError{Field: e.field, Message: "must be a relative path inside the project: " + e.path})
		}
	}

	if dup := duplicatePaths(cfg); len(dup) > 0 {
		out = append(out, FieldError{Field: "files", Message: "duplicate paths: " + strings.Join(dup, ", ")})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "eq":
		if fe.Field() == "version" {
			return fmt.Sprintf("unsupported config version: %v", fe.Value())
		}
		return "must equal " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "relpath":
		return fmt.Sprintf("must be a relative path inside the project: %v", fe.Value())
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// validRelPath accepts non-empty relative paths that stay inside the project.
func validRelPath(p string) bool {
	if p == "" || strings.ContainsRune(p, '\x00') {
		return false
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return false
	}
	cleaned := filepath.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}

type entryRef struct {
	field string
	path  string
}

func entriesOf(cfg *Config) []entryRef {
	var refs []entryRef
	add := func(name string, list []checklist.Entry) {
		for i, e := range list {
			if e.Path == "" {
				continue // reported by the required tag
			}
			refs = append(refs, entryRef{field: fmt.Sprintf("%s[%d].path", name, i), path: e.Path})
		}
	}
	add("root_files", cfg.RootFiles)
	add("source_files", cfg.SourceFiles)
	add("public_files", cfg.PublicFiles)
	return refs
}

func duplicatePaths(cfg *Config) []string {
	seen := make(map[string]bool)
	var dup []string
	for _, list := range [][]checklist.Entry{cfg.RootFiles, cfg.SourceFiles, cfg.PublicFiles} {
		for _, e := range list {
			key := filepath.Clean(e.Path)
			if e.Path == "" {
				continue
			}
			if seen[key] {
				dup = append(dup, e.Path)
				continue
			}
			seen[key] = true
		}
	}
	return dup
}
