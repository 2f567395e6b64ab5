// Package paths resolves the directories nsvalidate works with: the checked
// project's root and the user's configuration directory.
//
// User-level configuration follows the XDG Base Directory Specification via
// github.com/adrg/xdg:
//
//	| OS      | Config home                    |
//	|---------|--------------------------------|
//	| Linux   | $XDG_CONFIG_HOME or ~/.config  |
//	| macOS   | ~/Library/Application Support |
//	| Windows | %LOCALAPPDATA%                 |
//
// Project-level configuration lives in the project root as .nsvalidate.yaml
// (or .yml, .toml, .json). [FindConfigFile] applies the lookup order.
package paths
