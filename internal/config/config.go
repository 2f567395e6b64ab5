package config

import (
	"io/fs"

	"github.com/spf13/viper"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/paths"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "NSVALIDATE"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version              int               `mapstructure:"version" yaml:"version" toml:"version" json:"version" validate:"eq=1"`
	Manifest             string            `mapstructure:"manifest" yaml:"manifest" toml:"manifest" json:"manifest" validate:"required,relpath"`
	RootFiles            []checklist.Entry `mapstructure:"root_files" yaml:"root_files" toml:"root_files" json:"root_files" validate:"dive"`
	SourceFiles          []checklist.Entry `mapstructure:"source_files" yaml:"source_files" toml:"source_files" json:"source_files" validate:"dive"`
	PublicFiles          []checklist.Entry `mapstructure:"public_files" yaml:"public_files" toml:"public_files" json:"public_files" validate:"dive"`
	RequiredDependencies []string          `mapstructure:"required_dependencies" yaml:"required_dependencies" toml:"required_dependencies" json:"required_dependencies" validate:"dive,required"`
	MaxManifestSize      int64             `mapstructure:"max_manifest_size" yaml:"max_manifest_size,omitempty" toml:"max_manifest_size,omitempty" json:"max_manifest_size,omitempty" validate:"gte=0"`

	// source is the config file the values came from, if any.
	source string
}

// Default returns the configuration equivalent to the built-in checklist.
func Default() *Config {
	return &Config{
		Version:              CurrentVersion,
		Manifest:             checklist.ManifestPath,
		RootFiles:            checklist.RootFiles(),
		SourceFiles:          checklist.SourceFiles(),
		PublicFiles:          checklist.PublicFiles(),
		RequiredDependencies: checklist.RequiredDependencies(),
	}
}

// Init resets Viper and registers defaults and environment bindings.
// Call this once per command invocation before Load.
func Init() {
	viper.Reset()

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("manifest", checklist.ManifestPath)
	viper.SetDefault("max_manifest_size", 0)
}

// Load reads the configuration for projectDir. If path is non-empty that
// file must exist; otherwise the default locations are searched and a
// missing file means built-in defaults.
func Load(projectDir, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = paths.FindConfigFile(projectDir)
	}

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			if explicit && isNotFound(err) {
				return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
			}
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	cfg.source = path

	// Lists have no viper defaults so that an explicit empty list stays empty.
	if !viper.IsSet("root_files") {
		cfg.RootFiles = checklist.RootFiles()
	}
	if !viper.IsSet("source_files") {
		cfg.SourceFiles = checklist.SourceFiles()
	}
	if !viper.IsSet("public_files") {
		cfg.PublicFiles = checklist.PublicFiles()
	}
	if !viper.IsSet("required_dependencies") {
		cfg.RequiredDependencies = checklist.RequiredDependencies()
	}

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return &cfg, nil
}

// Source returns the file the configuration was read from, or "" for
// built-in defaults.
func (c *Config) Source() string {
	return c.source
}

// Checklist converts the configuration into the inputs of a validation run.
func (c *Config) Checklist() checklist.Checklist {
	entries := make([]checklist.Entry, 0, len(c.RootFiles)+len(c.SourceFiles)+len(c.PublicFiles))
	entries = appendCategory(entries, c.RootFiles, checklist.CategoryRoot)
	entries = appendCategory(entries, c.SourceFiles, checklist.CategorySource)
	entries = appendCategory(entries, c.PublicFiles, checklist.CategoryPublic)

	deps := make([]string, len(c.RequiredDependencies))
	copy(deps, c.RequiredDependencies)

	return checklist.Checklist{
		Entries:              entries,
		Manifest:             c.Manifest,
		RequiredDependencies: deps,
		MaxManifestSize:      c.MaxManifestSize,
	}
}

func appendCategory(dst, src []checklist.Entry, cat checklist.Category) []checklist.Entry {
	for _, e := range src {
		e.Category = cat
		dst = append(dst, e)
	}
	return dst
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
