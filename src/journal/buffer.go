package journal

import (
	"fmt"

	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// MessageBuffer is the insertion-ordered message collection. Duplicates are
// allowed; messages are immutable once handed over.
// -----------------------------------------------------------------------------

type MessageBuffer struct {
	messages []models.MMessage
}

// -----------------------------------------------------------------------------

func NewMessageBuffer() *MessageBuffer {
	return &MessageBuffer{}
}

// -----------------------------------------------------------------------------

// Add appends a message. The boolean result is reserved for future capacity
// limits; today an append cannot fail.
func (b *MessageBuffer) Add(msg models.MMessage) bool {
	b.messages = append(b.messages, msg)
	return true
}

// -----------------------------------------------------------------------------

// Clear empties the buffer.
func (b *MessageBuffer) Clear() {
	b.messages = b.messages[:0]
}

// -----------------------------------------------------------------------------

// Total returns the number of buffered messages.
func (b *MessageBuffer) Total() int {
	return len(b.messages)
}

// -----------------------------------------------------------------------------

// At returns the message at index. An out-of-range index is a caller bug
// and fails loudly rather than wrapping around.
func (b *MessageBuffer) At(index int) (models.MMessage, error) {
	if index < 0 || index >= len(b.messages) {
		return models.MMessage{}, fmt.Errorf("message index %d out of range [0,%d)", index, len(b.messages))
	}
	return b.messages[index], nil
}
