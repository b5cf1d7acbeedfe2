package interfaces

import "trade-journal/src/models"

// -----------------------------------------------------------------------------
// IJournal defines the contract of the message aggregator.
// -----------------------------------------------------------------------------

type IJournal interface {

	// NewMessage builds a message, stamping both clocks and the current
	// platform error code. Construction never fails.
	NewMessage(kind models.MessageKind, source, text string) models.MMessage

	// -----------------------------------------------------------------------------

	// AddMessage validates, fans out to the enabled sinks and appends the
	// message to the buffer. Returns whether the append succeeded.
	AddMessage(msg models.MMessage) bool

	// -----------------------------------------------------------------------------

	// Clear empties the buffer. Policy flags are untouched.
	Clear()

	// Total returns the number of buffered messages.
	Total() int

	// MessageAt returns the buffered message at index, or an error when the
	// index is out of range.
	MessageAt(index int) (models.MMessage, error)

	// -----------------------------------------------------------------------------

	// Policy returns a snapshot of the sink policy.
	Policy() models.MPolicyView

	// SetTerminal updates the terminal sink gate.
	SetTerminal(enabled bool, priority models.MessageKind)

	// SetPush updates the push sink gate.
	SetPush(enabled bool, priority models.MessageKind)

	// -----------------------------------------------------------------------------

	// PersistToFile appends every buffered message to today's log file.
	// The buffer is NOT cleared; see the scheduler for the flush cycle.
	PersistToFile() bool

	// PruneOldLogs deletes log files at least retentionDays old.
	PruneOldLogs(retentionDays int) int

	// -----------------------------------------------------------------------------

	// Metrics returns a counters snapshot.
	Metrics() models.MJournalMetrics
}

// -----------------------------------------------------------------------------
// IDiagnosticHook observes messages after they are buffered. Hooks are
// registered per kind set; a hook must not call back into the journal.
// -----------------------------------------------------------------------------

type IDiagnosticHook interface {
	OnMessage(msg models.MMessage)
}
