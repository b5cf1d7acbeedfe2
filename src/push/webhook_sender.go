package push

import (
	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
)

// -----------------------------------------------------------------------------
// WebhookSender delivers push payloads to an HTTP endpoint. The payload
// arrives already truncated to the wire limit; it goes out verbatim as a
// text/plain body.
// -----------------------------------------------------------------------------

type WebhookSender struct {
	name    string
	url     string
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewWebhookSender(name, url string, nm interfaces.INetworkManager, log *logger.Logger) *WebhookSender {
	return &WebhookSender{
		name:    name,
		url:     url,
		Network: nm,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

// Name identifies the transport.
func (w *WebhookSender) Name() string {
	return "webhook:" + w.name
}

// -----------------------------------------------------------------------------

// Send posts the payload. Delivery failures are reported to the caller as a
// declined send, never as an error that could fail the journal add.
func (w *WebhookSender) Send(payload string) bool {
	if _, err := w.Network.Post(w.url, "text/plain; charset=utf-8", []byte(payload)); err != nil {
		w.Logger.Warning("Webhook %s delivery failed: %v", w.name, err)
		return false
	}
	return true
}
