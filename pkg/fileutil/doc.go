// Package fileutil provides filesystem helpers shared by nsvalidate's
// packages: bounded reads and atomic writes over an afero.Fs.
//
// All helpers take the filesystem explicitly so that callers can run against
// the real project directory (afero.NewBasePathFs over afero.NewOsFs) or an
// in-memory tree in tests.
package fileutil
