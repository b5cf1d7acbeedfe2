package server

import (
	"strings"

	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// Payload Parsing
// -----------------------------------------------------------------------------

// parsePushPayload splits a flat push payload back into its fields. Payloads
// are truncated at the transport limit, so trailing fields may be cut or
// missing entirely; whatever survives is kept and the raw payload travels
// alongside the parsed fields.
func parsePushPayload(payload string) *models.MPushEvent {
	event := &models.MPushEvent{Payload: payload}

	parts := strings.SplitN(payload, "\t", 4)
	if len(parts) > 0 {
		event.Kind = parts[0]
	}
	if len(parts) > 1 {
		event.Date = parts[1]
	}
	if len(parts) > 2 {
		event.Source = parts[2]
	}
	if len(parts) > 3 {
		event.Text = parts[3]
	}

	return event
}
