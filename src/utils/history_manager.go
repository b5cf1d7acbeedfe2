package utils

import (
	"runtime"
	"runtime/debug"
	"sync"

	"trade-journal/src/logger"
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// HistoryManager keeps a bounded in-memory history of recent journal
// messages, one ring per source, serving the API and WebSocket surfaces.
// It implements IDiagnosticHook so the journal feeds it directly.
// -----------------------------------------------------------------------------

type HistoryManager struct {
	Streams     map[string]*RingBuffer // keyed by message source
	MaxMemoryMB int
	Capacity    int
	Logger      *logger.Logger
	mu          sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewHistoryManager(maxMemoryMB, capacity int, log *logger.Logger) *HistoryManager {
	return &HistoryManager{
		Streams:     make(map[string]*RingBuffer),
		MaxMemoryMB: maxMemoryMB,
		Capacity:    capacity,
		Logger:      log,
	}
}

// -----------------------------------------------------------------------------

// OnMessage records a journal message into its source's ring.
func (hm *HistoryManager) OnMessage(msg models.MMessage) {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	buffer, ok := hm.Streams[msg.Source]
	if !ok {
		buffer = NewRingBuffer(hm.Capacity)
		hm.Streams[msg.Source] = buffer
	}

	buffer.Append(msg)

	// Periodic memory check
	if buffer.Size()%100 == 0 {
		hm.checkMemoryLimits()
	}
}

// -----------------------------------------------------------------------------

// Latest returns up to n recent messages for one source, oldest first.
// An empty source merges every stream.
func (hm *HistoryManager) Latest(source string, n int) []models.MMessage {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	if source != "" {
		buffer, ok := hm.Streams[source]
		if !ok {
			return []models.MMessage{}
		}
		return buffer.GetLatest(n)
	}

	var merged []models.MMessage
	for _, buffer := range hm.Streams {
		merged = append(merged, buffer.GetLatest(n)...)
	}
	sortByServerTime(merged)
	if n > 0 && len(merged) > n {
		merged = merged[len(merged)-n:]
	}
	return merged
}

// -----------------------------------------------------------------------------

// All returns every held message across sources, oldest first.
func (hm *HistoryManager) All() []models.MMessage {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	var merged []models.MMessage
	for _, buffer := range hm.Streams {
		merged = append(merged, buffer.GetAll()...)
	}
	sortByServerTime(merged)
	return merged
}

// -----------------------------------------------------------------------------

// Sources returns the known message sources.
func (hm *HistoryManager) Sources() []string {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	names := make([]string, 0, len(hm.Streams))
	for name := range hm.Streams {
		names = append(names, name)
	}
	return names
}

// -----------------------------------------------------------------------------

// checkMemoryLimits halves ring capacities when the heap grows past the
// ceiling. Caller must hold the write lock.
func (hm *HistoryManager) checkMemoryLimits() {
	if hm.MaxMemoryMB <= 0 {
		return
	}

	currentMemory := processMemoryMB()
	if currentMemory <= float64(hm.MaxMemoryMB) {
		return
	}

	hm.Logger.Info("Memory usage %.1fMB exceeds limit %dMB. Shrinking history.",
		currentMemory, hm.MaxMemoryMB)

	for _, buffer := range hm.Streams {
		if buffer.Capacity() > 100 {
			newCapacity := buffer.Capacity() / 2
			if newCapacity < 50 {
				newCapacity = 50
			}
			buffer.Resize(newCapacity)
		}
	}

	runtime.GC()
	debug.FreeOSMemory()
}

// -----------------------------------------------------------------------------

// processMemoryMB gets current process heap usage in MB
func processMemoryMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / 1024 / 1024
}

// -----------------------------------------------------------------------------

// Cleanup clears all history
func (hm *HistoryManager) Cleanup() {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.Streams = make(map[string]*RingBuffer)
	runtime.GC()
	debug.FreeOSMemory()
}

// -----------------------------------------------------------------------------

func sortByServerTime(msgs []models.MMessage) {
	// Insertion sort; histories are small and mostly ordered already.
	for i := 1; i < len(msgs); i++ {
		for k := i; k > 0 && msgs[k].ServerTime.Before(msgs[k-1].ServerTime); k-- {
			msgs[k], msgs[k-1] = msgs[k-1], msgs[k]
		}
	}
}
