// Package checklist holds the fixed inputs of a validation run: the expected
// project files, the manifest path, the dependency names the manifest must
// declare, and the informational API endpoint summary.
//
// The package-level lists are never handed out directly; accessors return
// copies so a run cannot mutate them.
package checklist
