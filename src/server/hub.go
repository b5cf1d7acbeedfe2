package server

import (
	"encoding/json"

	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// WebSocket Hub
// -----------------------------------------------------------------------------

// handleWebsockets is the hub loop: it owns the client set and serializes
// register/unregister/broadcast traffic onto it.
func (s *APIServer) handleWebsockets() {
	for {
		select {
		case client := <-s.register:
			s.stateMutex.Lock()
			s.clients[client] = struct{}{}
			s.stateMutex.Unlock()
			s.Logger.Debug("WebSocket client registered, %d connected", len(s.clients))

		case client := <-s.unregister:
			s.stateMutex.Lock()
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
			s.stateMutex.Unlock()
			s.Logger.Debug("WebSocket client unregistered, %d connected", len(s.clients))

		case event, ok := <-s.broadcast:
			if !ok {
				s.disconnectAll()
				return
			}
			s.broadcastEvent(event)
		}
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) broadcastEvent(event *models.MPushEvent) {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	for client := range s.clients {
		if !client.wants(event) {
			continue
		}
		select {
		case client.send <- event:
		default:
			// Slow consumer, drop the event rather than stall the hub
			s.Logger.Warning("WebSocket client send buffer full, dropping event")
		}
	}
}

// -----------------------------------------------------------------------------

// dropClient hands a client back to the hub loop for unregistration. After
// Stop the loop no longer receives, so the done channel keeps pump
// goroutines from blocking here forever.
func (s *APIServer) dropClient(client *Client) {
	select {
	case s.unregister <- client:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) disconnectAll() {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	for client := range s.clients {
		close(client.send)
		delete(s.clients, client)
	}
}

// -----------------------------------------------------------------------------
// IPushSender
// -----------------------------------------------------------------------------

func (s *APIServer) Name() string {
	return "hub"
}

// -----------------------------------------------------------------------------

// Send accepts a flat push payload from the journal, parses it back into an
// event and queues it for broadcast. Returns false when the hub queue is
// full or the server is stopped.
func (s *APIServer) Send(payload string) bool {
	event := parsePushPayload(payload)

	// The lock is held across the queueing so Stop cannot close the
	// broadcast channel between the stopped check and the send. The send
	// itself never blocks, so the lock is held only briefly.
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	if s.stopped {
		return false
	}

	select {
	case s.broadcast <- event:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------
// Client Commands
// -----------------------------------------------------------------------------

// handleClientMessage applies a subscribe command to the sending client.
func (s *APIServer) handleClientMessage(client *Client, raw []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		s.Logger.Warning("Invalid WebSocket command: %v", err)
		return
	}

	switch cmd.Command {
	case "subscribe":
		minSeverity := models.KindInfo
		if cmd.MinSeverity != "" {
			kind, ok := models.KindFromName(cmd.MinSeverity)
			if !ok {
				s.Logger.Warning("Unknown severity in subscribe command: %s", cmd.MinSeverity)
				return
			}
			minSeverity = kind
		}
		client.subscribe(minSeverity, cmd.Sources)
		s.Logger.Debug("WebSocket client subscribed, min severity %s, %d sources",
			minSeverity.FullName(), len(cmd.Sources))

	default:
		s.Logger.Warning("Unknown WebSocket command: %s", cmd.Command)
	}
}
