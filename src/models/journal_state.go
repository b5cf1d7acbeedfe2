package models

// -----------------------------------------------------------------------------
// Hub State Structures
// -----------------------------------------------------------------------------

// MPushEvent is one journal entry as delivered to WebSocket clients. It is
// parsed back out of the flat tab-separated push payload, so the hub sees
// exactly what any other push transport sees.
type MPushEvent struct {
	Kind    string `json:"kind"` // full symbolic name
	Date    string `json:"date"`
	Source  string `json:"source"`
	Text    string `json:"text"`
	Payload string `json:"payload"` // the raw (truncated) wire form
}

// -----------------------------------------------------------------------------
// SubscribeCommand for client messages
// -----------------------------------------------------------------------------

type MSubscribeCommand struct {
	Command     string   `json:"command"`
	MinSeverity string   `json:"min_severity"` // symbolic kind name
	Sources     []string `json:"sources"`
}

// -----------------------------------------------------------------------------

// MPolicyView is the REST representation of the sink policy.
type MPolicyView struct {
	TerminalEnabled  bool   `json:"terminal_enabled"`
	TerminalPriority string `json:"terminal_priority"`
	PushEnabled      bool   `json:"push_enabled"`
	PushPriority     string `json:"push_priority"`
}
