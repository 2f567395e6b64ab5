// Package validator checks a Node.js API backend checkout against a
// checklist and renders the outcome.
//
// A run has four checking phases, always in this order:
//
//  1. every checklist entry is tested for existence;
//  2. the counts are summarized;
//  3. the manifest, when present, is parsed as JSON;
//  4. the manifest's dependencies are compared with the required names.
//
// The manifest is read and decoded once. When phase 4 cannot use that
// decode (malformed JSON, a non-object document, an unreadable file) the
// run stops with [errors.ErrManifestUnreadable] and a partial [Report].
//
// # Basic Usage
//
//	v := validator.New(afero.NewBasePathFs(afero.NewOsFs(), dir), checklist.Default(), logger)
//	report, err := v.Run(ctx)
//	if report != nil {
//		_ = validator.NewReporter(os.Stdout, validator.FormatText).Report(report)
//	}
//
// The verdict only considers missing files and manifest validity. Missing
// dependencies are listed but never fail a run.
package validator
