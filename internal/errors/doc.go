// Package errors provides error handling conventions for the nsvalidate CLI.
//
// It re-exports the github.com/cockroachdb/errors constructors used across
// the module, defines sentinel errors for the validator's failure modes, and
// an [ExitError] type that carries a process exit code.
//
// # Exit Codes
//
//   - ExitSuccess (0): validation passed
//   - ExitUser (1): validation failed, or the user supplied bad input/config
//   - ExitSystem (2): the run could not complete (unreadable manifest, I/O)
//
// # ExitError
//
// Commands return an [ExitError] and main turns it into the exit status:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
