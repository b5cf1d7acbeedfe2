package push

import (
	"fmt"
	"sync"

	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
)

// MultiSender fans a push payload out to every registered transport type
type MultiSender struct {
	Senders map[string]interfaces.IPushSender
	Logger  *logger.Logger
	mu      sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewMultiSender(senders []interfaces.IPushSender, log *logger.Logger) *MultiSender {
	m := &MultiSender{
		Senders: make(map[string]interfaces.IPushSender),
		Logger:  log,
	}

	for _, s := range senders {
		m.Senders[s.Name()] = s
	}

	return m
}

// -----------------------------------------------------------------------------

// AddSender registers a new transport
func (m *MultiSender) AddSender(sender interfaces.IPushSender) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := sender.Name()
	if _, exists := m.Senders[name]; exists {
		return fmt.Errorf("sender %s already exists", name)
	}

	m.Senders[name] = sender
	m.Logger.Info("Added push sender: %s", name)
	return nil
}

// -----------------------------------------------------------------------------

// RemoveSender removes a transport by name
func (m *MultiSender) RemoveSender(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Senders[name]; !exists {
		return fmt.Errorf("sender %s not found", name)
	}

	delete(m.Senders, name)
	m.Logger.Info("Removed push sender: %s", name)
	return nil
}

// -----------------------------------------------------------------------------

// GetSender retrieves a transport by name
func (m *MultiSender) GetSender(name string) (interfaces.IPushSender, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sender, exists := m.Senders[name]
	if !exists {
		return nil, fmt.Errorf("sender %s not found", name)
	}
	return sender, nil
}

// -----------------------------------------------------------------------------

// Names returns the registered transport names
func (m *MultiSender) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.Senders))
	for name := range m.Senders {
		names = append(names, name)
	}
	return names
}

// -----------------------------------------------------------------------------

// Name returns "MultiSender"
func (m *MultiSender) Name() string {
	return "MultiSender"
}

// -----------------------------------------------------------------------------

// Send fans the payload out to every transport. Delivery counts as accepted
// when at least one transport took it.
func (m *MultiSender) Send(payload string) bool {
	m.mu.RLock()
	senders := make([]interfaces.IPushSender, 0, len(m.Senders))
	for _, s := range m.Senders {
		senders = append(senders, s)
	}
	m.mu.RUnlock()

	delivered := false
	for _, s := range senders {
		if s.Send(payload) {
			delivered = true
		} else {
			m.Logger.Warning("Push sender %s declined payload", s.Name())
		}
	}
	return delivered
}
