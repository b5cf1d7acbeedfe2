package utils

import (
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of journal messages.
// True ring buffer - no implicit resizing!
// -----------------------------------------------------------------------------

type RingBuffer struct {
	data     []models.MMessage
	capacity int
	index    int // Next write position
	size     int // Current number of elements
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1000 // Default reasonable size
	}

	return &RingBuffer{
		data:     make([]models.MMessage, capacity),
		capacity: capacity,
		index:    0,
		size:     0,
	}
}

// -----------------------------------------------------------------------------

// Append adds a message, overwriting the oldest entry once full.
func (rb *RingBuffer) Append(msg models.MMessage) {
	rb.data[rb.index] = msg
	rb.index = (rb.index + 1) % rb.capacity

	// Update size (never exceeds capacity)
	if rb.size < rb.capacity {
		rb.size++
	}
}

// -----------------------------------------------------------------------------

// GetLatest returns the n most recent messages, oldest first.
func (rb *RingBuffer) GetLatest(n int) []models.MMessage {
	if rb.size == 0 || n <= 0 {
		return []models.MMessage{}
	}

	count := n
	if n > rb.size {
		count = rb.size
	}

	result := make([]models.MMessage, count)

	// Latest data sits just before the write index
	startIdx := (rb.index - count + rb.capacity) % rb.capacity
	for i := 0; i < count; i++ {
		result[i] = rb.data[(startIdx+i)%rb.capacity]
	}

	return result
}

// -----------------------------------------------------------------------------

// GetAll returns all messages in insertion order (oldest to newest)
func (rb *RingBuffer) GetAll() []models.MMessage {
	if rb.size == 0 {
		return []models.MMessage{}
	}

	result := make([]models.MMessage, rb.size)

	// When full, the oldest element sits at the write index (wrap-around)
	var startIdx int
	if rb.size == rb.capacity {
		startIdx = rb.index
	} else {
		startIdx = 0
	}

	for i := 0; i < rb.size; i++ {
		result[i] = rb.data[(startIdx+i)%rb.capacity]
	}

	return result
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// -----------------------------------------------------------------------------

// Resize changes the capacity of the buffer.
// If newCapacity < size, the oldest messages are dropped.
func (rb *RingBuffer) Resize(newCapacity int) {
	if newCapacity <= 0 || newCapacity == rb.capacity {
		return
	}

	newData := make([]models.MMessage, newCapacity)

	count := rb.size
	if count > newCapacity {
		count = newCapacity
	}

	// Keep the newest 'count' messages
	startIdx := (rb.index - count + rb.capacity) % rb.capacity
	for i := 0; i < count; i++ {
		newData[i] = rb.data[(startIdx+i)%rb.capacity]
	}

	rb.data = newData
	rb.capacity = newCapacity
	rb.size = count
	rb.index = count % newCapacity
}

// -----------------------------------------------------------------------------

// IsFull returns whether buffer is full
func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}

// -----------------------------------------------------------------------------

// Clear resets the buffer
func (rb *RingBuffer) Clear() {
	rb.index = 0
	rb.size = 0
}
