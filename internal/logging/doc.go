// Package logging provides structured logging for nsvalidate using slog.
//
// Logs are diagnostics about the run itself and always go to stderr, so the
// validation report on stdout stays stable across runs. Text output is
// colorized on terminals; JSON output is available for log shippers.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("checking project", "dir", dir)
//
// Loggers travel with the command context via [NewContext] and [FromContext].
// Tests can route output through the testing framework with [ForTest].
package logging
