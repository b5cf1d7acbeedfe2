package utils

import (
	"fmt"
	"testing"
	"time"

	"trade-journal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func msgN(n int) models.MMessage {
	return models.MMessage{
		Kind:       models.KindInfo,
		Source:     "test",
		Text:       fmt.Sprintf("msg %d", n),
		ServerTime: time.Date(2026, 8, 31, 0, 0, n, 0, time.UTC),
	}
}

func texts(msgs []models.MMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

// -----------------------------------------------------------------------------

func TestRingBufferAppendAndSize(t *testing.T) {
	rb := NewRingBuffer(3)

	assert.Equal(t, 0, rb.Size())
	assert.False(t, rb.IsFull())

	rb.Append(msgN(1))
	rb.Append(msgN(2))
	assert.Equal(t, 2, rb.Size())

	rb.Append(msgN(3))
	assert.True(t, rb.IsFull())
}

func TestRingBufferOverwritesOldest(t *testing.T) {
	rb := NewRingBuffer(3)
	for i := 1; i <= 5; i++ {
		rb.Append(msgN(i))
	}

	assert.Equal(t, 3, rb.Size())
	assert.Equal(t, []string{"msg 3", "msg 4", "msg 5"}, texts(rb.GetAll()))
}

func TestRingBufferGetLatest(t *testing.T) {
	rb := NewRingBuffer(5)
	for i := 1; i <= 4; i++ {
		rb.Append(msgN(i))
	}

	assert.Equal(t, []string{"msg 3", "msg 4"}, texts(rb.GetLatest(2)))
	// Asking for more than held returns everything.
	assert.Equal(t, []string{"msg 1", "msg 2", "msg 3", "msg 4"}, texts(rb.GetLatest(10)))
	assert.Empty(t, rb.GetLatest(0))
}

func TestRingBufferGetLatestAfterWrap(t *testing.T) {
	rb := NewRingBuffer(3)
	for i := 1; i <= 7; i++ {
		rb.Append(msgN(i))
	}

	assert.Equal(t, []string{"msg 6", "msg 7"}, texts(rb.GetLatest(2)))
}

func TestRingBufferResizeKeepsNewest(t *testing.T) {
	rb := NewRingBuffer(5)
	for i := 1; i <= 5; i++ {
		rb.Append(msgN(i))
	}

	rb.Resize(2)

	assert.Equal(t, 2, rb.Capacity())
	assert.Equal(t, []string{"msg 4", "msg 5"}, texts(rb.GetAll()))

	// Buffer keeps working after the resize.
	rb.Append(msgN(6))
	assert.Equal(t, []string{"msg 5", "msg 6"}, texts(rb.GetAll()))
}

func TestRingBufferClear(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Append(msgN(1))
	rb.Clear()

	assert.Equal(t, 0, rb.Size())
	assert.Empty(t, rb.GetAll())
}

func TestRingBufferDefaultCapacity(t *testing.T) {
	rb := NewRingBuffer(0)
	require.Equal(t, 1000, rb.Capacity())
}

// -----------------------------------------------------------------------------
// HistoryManager
// -----------------------------------------------------------------------------

func newTestHistory() *HistoryManager {
	return NewHistoryManager(0, 10, testLogger())
}

func TestHistoryManagerStreamsPerSource(t *testing.T) {
	hm := newTestHistory()

	hm.OnMessage(models.MMessage{Source: "A", Text: "a1", ServerTime: time.Unix(1, 0)})
	hm.OnMessage(models.MMessage{Source: "B", Text: "b1", ServerTime: time.Unix(2, 0)})
	hm.OnMessage(models.MMessage{Source: "A", Text: "a2", ServerTime: time.Unix(3, 0)})

	assert.ElementsMatch(t, []string{"A", "B"}, hm.Sources())
	assert.Equal(t, []string{"a1", "a2"}, texts(hm.Latest("A", 10)))
	assert.Equal(t, []string{"b1"}, texts(hm.Latest("B", 10)))
	assert.Empty(t, hm.Latest("C", 10))
}

func TestHistoryManagerMergedLatestIsTimeOrdered(t *testing.T) {
	hm := newTestHistory()

	hm.OnMessage(models.MMessage{Source: "A", Text: "first", ServerTime: time.Unix(1, 0)})
	hm.OnMessage(models.MMessage{Source: "B", Text: "second", ServerTime: time.Unix(2, 0)})
	hm.OnMessage(models.MMessage{Source: "A", Text: "third", ServerTime: time.Unix(3, 0)})

	merged := hm.Latest("", 10)
	assert.Equal(t, []string{"first", "second", "third"}, texts(merged))

	// A bounded ask keeps the newest entries.
	assert.Equal(t, []string{"second", "third"}, texts(hm.Latest("", 2)))
}

func TestHistoryManagerCleanup(t *testing.T) {
	hm := newTestHistory()
	hm.OnMessage(models.MMessage{Source: "A", Text: "a1"})

	hm.Cleanup()

	assert.Empty(t, hm.Sources())
	assert.Empty(t, hm.All())
}
