package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/nsvalidate/internal/errors"
)

// AppName names the user config directory.
const AppName = "nsvalidate"

// ProjectConfigName is the base name of the project-level config file.
const ProjectConfigName = ".nsvalidate"

// UserConfigName is the base name of the user-level config file.
const UserConfigName = "config"

// ConfigExtensions are tried in order for both config locations.
var ConfigExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// Sentinel errors for path resolution.
var (
	// ErrNotDirectory indicates the project path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	// Honor changes made after package init (tests use t.Setenv).
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

// UserConfigDir returns <ConfigHome>/nsvalidate.
func UserConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ProjectDir resolves dir to an absolute path and checks it is a directory.
// An empty dir means the current working directory.
func ProjectDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving project directory %q", dir)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "project directory %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrNotDirectory, "project directory %s", abs)
	}
	return abs, nil
}

// FindConfigFile returns the first config file that exists, looking first in
// projectDir for .nsvalidate.* and then in UserConfigDir for config.*.
// It returns "" when neither location has one.
func FindConfigFile(projectDir string) string {
	candidates := make([]string, 0, 2*len(ConfigExtensions))
	for _, ext := range ConfigExtensions {
		candidates = append(candidates, filepath.Join(projectDir, ProjectConfigName+ext))
	}
	for _, ext := range ConfigExtensions {
		candidates = append(candidates, filepath.Join(UserConfigDir(), UserConfigName+ext))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// ProjectConfigPath returns the default location for a new project config.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ProjectConfigName+".yaml")
}
