package models

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Kind names
// -----------------------------------------------------------------------------

func TestKindNames(t *testing.T) {
	assert.Equal(t, "MESSAGE_INFO", KindInfo.FullName())
	assert.Equal(t, "INFO", KindInfo.ShortName())
	assert.Equal(t, "MESSAGE_WRONG_POSITION_PARAMS", KindWrongPositionParams.FullName())
	assert.Equal(t, "WRONG_POSITION_PARAMS", KindWrongPositionParams.ShortName())
	assert.Equal(t, "MESSAGE_ORDER_INFO", KindOrderInfo.FullName())
	assert.Equal(t, "ORDER_INFO", KindOrderInfo.ShortName())
}

func TestKindNamesUnknownOrdinal(t *testing.T) {
	bogus := MessageKind(99)
	assert.Equal(t, "MESSAGE_UNKNOWN_99", bogus.FullName())
	assert.Equal(t, "UNKNOWN_99", bogus.ShortName())
}

func TestKindFromNameResolvesBothForms(t *testing.T) {
	for _, kind := range AllKinds() {
		resolved, ok := KindFromName(kind.FullName())
		require.True(t, ok, kind.FullName())
		assert.Equal(t, kind, resolved)

		resolved, ok = KindFromName(kind.ShortName())
		require.True(t, ok, kind.ShortName())
		assert.Equal(t, kind, resolved)
	}

	_, ok := KindFromName("MESSAGE_NOPE")
	assert.False(t, ok)
}

func TestSeverityOrdering(t *testing.T) {
	kinds := AllKinds()
	for i := 1; i < len(kinds); i++ {
		assert.Greater(t, int(kinds[i]), int(kinds[i-1]))
	}
	assert.Less(t, KindError, KindOrderInfo)
}

// -----------------------------------------------------------------------------
// Setters
// -----------------------------------------------------------------------------

func TestSettersAdjustMutableFields(t *testing.T) {
	msg := MMessage{Kind: KindInfo, Source: "A", Text: "t"}

	msg.SetSource("B")
	msg.SetText("updated")
	msg.SetRetcode(10009)
	msg.SetSystemErrorID(122)

	assert.Equal(t, "B", msg.Source)
	assert.Equal(t, "updated", msg.Text)
	assert.Equal(t, 10009, msg.Retcode)
	assert.Equal(t, 122, msg.SystemErrorID)
}

func TestSetSourceEmptyFallsBackToUnknown(t *testing.T) {
	msg := MMessage{Source: "A"}
	msg.SetSource("")
	assert.Equal(t, UnknownSource, msg.Source)
}

// -----------------------------------------------------------------------------
// Renderings
// -----------------------------------------------------------------------------

func sampleMessage() MMessage {
	return MMessage{
		Kind:       KindError,
		Source:     "OrderRouter",
		Text:       "rejected by venue",
		ServerTime: time.Date(2026, 8, 31, 9, 30, 15, 0, time.UTC),
	}
}

func TestToConsoleForm(t *testing.T) {
	msg := sampleMessage()
	assert.Equal(t, "ERROR;OrderRouter;rejected by venue;2026.08.31 09:30:15", msg.ToConsoleForm())
}

func TestToPersistForm(t *testing.T) {
	msg := sampleMessage()
	assert.Equal(t, "2026.08.31 09:30:15\tMESSAGE_ERROR\tOrderRouter\trejected by venue", msg.ToPersistForm())
}

func TestToPushForm(t *testing.T) {
	msg := sampleMessage()
	assert.Equal(t, "MESSAGE_ERROR\t2026.08.31 09:30:15\tOrderRouter\trejected by venue", msg.ToPushForm())
}

func TestToPushFormTruncatesAtLimit(t *testing.T) {
	msg := sampleMessage()
	msg.Text = strings.Repeat("x", 500)

	payload := msg.ToPushForm()

	assert.Len(t, payload, MaxPushPayload)
	assert.True(t, strings.HasPrefix(payload, "MESSAGE_ERROR\t"))
}

func TestToPushFormTruncatesMultibyteOnRuneBoundary(t *testing.T) {
	msg := sampleMessage()
	msg.Text = strings.Repeat("é", 300)

	payload := msg.ToPushForm()

	// The limit counts characters, not bytes, and the cut must never split
	// a rune.
	assert.Equal(t, MaxPushPayload, utf8.RuneCountInString(payload))
	assert.True(t, utf8.ValidString(payload))
	assert.True(t, strings.HasPrefix(payload, "MESSAGE_ERROR\t"))
}

func TestToPushFormShortPayloadUntouched(t *testing.T) {
	msg := sampleMessage()
	assert.Less(t, len(msg.ToPushForm()), MaxPushPayload)
}
