package interfaces

// -----------------------------------------------------------------------------
// IConsoleSink defines the terminal output channel.
// -----------------------------------------------------------------------------

type IConsoleSink interface {

	// WriteLine prints one already-formatted journal line.
	WriteLine(line string)
}

// -----------------------------------------------------------------------------
// IPushSender defines a push-notification transport.
// -----------------------------------------------------------------------------

type IPushSender interface {

	// Name identifies the transport (e.g. "hub", "webhook:ops").
	Name() string

	// -----------------------------------------------------------------------------

	// Send delivers a payload already truncated to the wire limit.
	// Returns whether the transport accepted it.
	Send(payload string) bool
}
