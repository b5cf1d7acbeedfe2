package journal

import "trade-journal/src/models"

// -----------------------------------------------------------------------------
// Policy holds the sink gates: a message reaches a sink when the sink is
// enabled and the message kind meets or exceeds the sink's priority.
// -----------------------------------------------------------------------------

type Policy struct {
	TerminalEnabled  bool
	TerminalPriority models.MessageKind
	PushEnabled      bool
	PushPriority     models.MessageKind
}

// -----------------------------------------------------------------------------

// PassesTerminal reports whether a kind clears the terminal gate.
func (p Policy) PassesTerminal(kind models.MessageKind) bool {
	return p.TerminalEnabled && kind >= p.TerminalPriority
}

// -----------------------------------------------------------------------------

// PassesPush reports whether a kind clears the push gate.
func (p Policy) PassesPush(kind models.MessageKind) bool {
	return p.PushEnabled && kind >= p.PushPriority
}

// -----------------------------------------------------------------------------

// View returns the REST representation of the policy.
func (p Policy) View() models.MPolicyView {
	return models.MPolicyView{
		TerminalEnabled:  p.TerminalEnabled,
		TerminalPriority: p.TerminalPriority.FullName(),
		PushEnabled:      p.PushEnabled,
		PushPriority:     p.PushPriority.FullName(),
	}
}
