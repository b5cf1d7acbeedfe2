package interfaces

import "time"

// -----------------------------------------------------------------------------
// IClock provides the two platform clocks. Trade servers run their own
// clock; the local machine runs another. Both are stamped on every message.
// -----------------------------------------------------------------------------

type IClock interface {

	// ServerNow returns the trade server's current time.
	ServerNow() time.Time

	// -----------------------------------------------------------------------------

	// LocalNow returns the local machine's current time.
	LocalNow() time.Time
}

// -----------------------------------------------------------------------------
// IPlatformError exposes the host platform's "last error" state.
// -----------------------------------------------------------------------------

type IPlatformError interface {

	// LastError returns the most recently recorded platform error code.
	LastError() int

	// -----------------------------------------------------------------------------

	// SetLastError records a platform error code.
	SetLastError(code int)
}
