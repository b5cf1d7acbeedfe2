package push

import (
	"errors"
	"testing"

	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
	"trade-journal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func testLogger() *logger.Logger {
	cfg := &models.MConfig{Name: "test", LogLevel: "CRITICAL"}
	return logger.NewLogger(cfg, "test")
}

// -----------------------------------------------------------------------------

type stubSender struct {
	name     string
	accept   bool
	payloads []string
}

func (s *stubSender) Name() string { return s.name }

func (s *stubSender) Send(payload string) bool {
	s.payloads = append(s.payloads, payload)
	return s.accept
}

// -----------------------------------------------------------------------------

type stubNetwork struct {
	err    error
	bodies []string
}

func (n *stubNetwork) Post(url, contentType string, body []byte) ([]byte, error) {
	n.bodies = append(n.bodies, string(body))
	return nil, n.err
}

// -----------------------------------------------------------------------------
// MultiSender
// -----------------------------------------------------------------------------

func TestMultiSenderFansOutToAllTransports(t *testing.T) {
	a := &stubSender{name: "a", accept: true}
	b := &stubSender{name: "b", accept: true}
	m := NewMultiSender([]interfaces.IPushSender{a, b}, testLogger())

	assert.True(t, m.Send("payload"))
	assert.Equal(t, []string{"payload"}, a.payloads)
	assert.Equal(t, []string{"payload"}, b.payloads)
}

func TestMultiSenderAcceptedWhenOneTransportTakesIt(t *testing.T) {
	a := &stubSender{name: "a", accept: false}
	b := &stubSender{name: "b", accept: true}
	m := NewMultiSender([]interfaces.IPushSender{a, b}, testLogger())

	assert.True(t, m.Send("payload"))
}

func TestMultiSenderDeclinedWhenAllDecline(t *testing.T) {
	a := &stubSender{name: "a", accept: false}
	m := NewMultiSender([]interfaces.IPushSender{a}, testLogger())

	assert.False(t, m.Send("payload"))
}

func TestMultiSenderEmptyDeclines(t *testing.T) {
	m := NewMultiSender(nil, testLogger())
	assert.False(t, m.Send("payload"))
}

func TestMultiSenderAddRemove(t *testing.T) {
	m := NewMultiSender(nil, testLogger())
	a := &stubSender{name: "a", accept: true}

	require.NoError(t, m.AddSender(a))
	assert.Error(t, m.AddSender(a), "duplicate names are rejected")

	got, err := m.GetSender("a")
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, []string{"a"}, m.Names())

	require.NoError(t, m.RemoveSender("a"))
	assert.Error(t, m.RemoveSender("a"))
	_, err = m.GetSender("a")
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------
// WebhookSender
// -----------------------------------------------------------------------------

func TestWebhookSenderPostsPayload(t *testing.T) {
	net := &stubNetwork{}
	w := NewWebhookSender("ops", "https://hooks.example.com/x", net, testLogger())

	assert.Equal(t, "webhook:ops", w.Name())
	assert.True(t, w.Send("MESSAGE_ERROR\tpayload"))
	assert.Equal(t, []string{"MESSAGE_ERROR\tpayload"}, net.bodies)
}

func TestWebhookSenderDeclinesOnNetworkError(t *testing.T) {
	net := &stubNetwork{err: errors.New("connection refused")}
	w := NewWebhookSender("ops", "https://hooks.example.com/x", net, testLogger())

	assert.False(t, w.Send("payload"))
}
