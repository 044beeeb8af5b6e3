// Package auditlog appends invalid-record reports to the errors.log file
// that lives next to the catalog. The log is append-only and never
// truncated; each invocation adds one line per invalid line or failed
// operation. Writes are best-effort: a failing audit log must not take
// down the run it is reporting on.
package auditlog

import (
	"fmt"
	"os"
	"time"

	"github.com/agentstation/utc"

	"github.com/shelfmark/shelfmark/pkg/constants"
	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/logging"
)

// Logger appends classified error entries to a fixed log file.
type Logger struct {
	path string

	// now is swappable for tests.
	now func() utc.Time
}

// New creates a Logger writing to the given path.
func New(path string) *Logger {
	return &Logger{path: path, now: utc.Now}
}

// Path returns the audit log file path.
func (l *Logger) Path() string {
	return l.path
}

// Record appends one entry for the offending text and its error.
// Entry format:
//
//	[<timestamp>] INVALID: "<offending text>" - <Kind>: <message>
func (l *Logger) Record(offending string, err error) error {
	if err == nil {
		return nil
	}

	line := fmt.Sprintf("[%s] INVALID: %q - %s: %s\n",
		l.now().Format(time.RFC3339),
		offending,
		errors.Kind(err),
		err.Error(),
	)

	f, openErr := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if openErr != nil {
		return errors.WrapIO("append", l.path, openErr)
	}
	defer f.Close()

	if _, writeErr := f.WriteString(line); writeErr != nil {
		return errors.WrapIO("append", l.path, writeErr)
	}
	return nil
}

// BestEffort records the entry and downgrades any audit failure to a
// warning on the application logger.
func (l *Logger) BestEffort(offending string, err error) {
	if auditErr := l.Record(offending, err); auditErr != nil {
		logging.Warn().
			Err(auditErr).
			Str("offending", offending).
			Msg("Failed to append to error log")
	}
}
