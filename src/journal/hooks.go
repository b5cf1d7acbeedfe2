package journal

import "trade-journal/src/models"

// -----------------------------------------------------------------------------
// Diagnostic hooks. These replace the platform's debug-break-on-condition
// behavior: instead of the message model trapping on certain kinds, the
// aggregator invokes registered observers on matching kinds.
// -----------------------------------------------------------------------------

// FuncHook adapts a plain function to the hook interface.
type FuncHook func(msg models.MMessage)

func (f FuncHook) OnMessage(msg models.MMessage) {
	f(msg)
}
