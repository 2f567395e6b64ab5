// Package config provides optional configuration for nsvalidate using Viper.
//
// Without a config file the built-in checklist is used unchanged. A config
// file can replace any of the checked lists:
//
//	version: 1
//	manifest: package.json
//	root_files:
//	  - path: package.json
//	    description: Package configuration
//	source_files: []
//	public_files:
//	  - path: public/index.html
//	    description: Dashboard HTML
//	required_dependencies: [express, pg]
//	max_manifest_size: 1048576
//
// A key that is absent keeps its built-in value; a key set to an empty list
// disables that part of the checklist. max_manifest_size is off (0) unless
// set, so a manifest of any size is parsed.
//
// Lookup order: the --config flag, then .nsvalidate.{yaml,yml,toml,json} in
// the project directory, then config.* under the XDG config home (see
// package paths). Values can also come from NSVALIDATE_* environment
// variables for scalar keys, e.g. NSVALIDATE_MANIFEST.
//
// Loaded configurations are validated with go-playground/validator; see
// [Validate].
package config
