package interfaces

import "time"

// -----------------------------------------------------------------------------
// ILogStore defines the contract for the log-file backend.
// -----------------------------------------------------------------------------

type ILogStore interface {

	// LogFileName returns the dated file path for the given day,
	// e.g. "Logs/log_2026.08.31.txt".
	LogFileName(day time.Time) string

	// -----------------------------------------------------------------------------

	// AppendLines opens the file for append (with the configured retry
	// policy), seeks to the end, writes each line with a trailing newline
	// and closes the file on every path.
	AppendLines(path string, lines []string) error

	// -----------------------------------------------------------------------------

	// ListLogs returns every existing log file of this store.
	ListLogs() ([]string, error)

	// -----------------------------------------------------------------------------

	// FileTimes returns the creation and last-access timestamps of a file.
	FileTimes(path string) (created, accessed time.Time, err error)

	// -----------------------------------------------------------------------------

	// Delete removes a log file.
	Delete(path string) error
}
