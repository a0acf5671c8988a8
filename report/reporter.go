package report

import (
	"fmt"
	"os"
)

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// LogLevelFromString converts a log level name from the command line into its
// enumerated value.
func LogLevelFromString(name string) (int, bool) {
	switch name {
	case "silent":
		return LogLevelSilent, true
	case "error":
		return LogLevelError, true
	case "warn":
		return LogLevelWarn, true
	case "verbose":
		return LogLevelVerbose, true
	default:
		return 0, false
	}
}

// Reporter is responsible for reporting diagnostics to the user while
// respecting the selected log level.  The front end is single-threaded, so
// the reporter performs no synchronization.
type Reporter struct {
	// The selected log level.  This must be one of the enumerated log levels.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// NewReporter creates a new reporter with the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{logLevel: logLevel}
}

// ReportError reports a diagnostic produced while processing the script at
// reprPath with source text src.
func (r *Reporter) ReportError(reprPath, src string, err *Error) {
	r.errorCount++

	if r.logLevel > LogLevelSilent {
		RenderError(reprPath, src, err)
	}
}

// ReportFatal reports a fatal host-level error and exits the program.  These
// are expected failures that generally result from invalid configuration:
// missing files, malformed manifests, and the like.
func (r *Reporter) ReportFatal(msg string, args ...interface{}) {
	if r.logLevel > LogLevelSilent {
		fmt.Printf("fatal error: %s\n", fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

// AnyErrors returns whether any errors have been reported.
func (r *Reporter) AnyErrors() bool {
	return r.errorCount > 0
}
