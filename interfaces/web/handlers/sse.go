package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"eduadmin/domain/events"
	"eduadmin/interfaces/web/presenters"
	"eduadmin/logging"
)

// SSEClient represents a connected Server-Sent Events client. writeMu
// serializes writes: broadcasts and keep-alives run on different
// goroutines but share one ResponseWriter.
type SSEClient struct {
	id       string
	writer   http.ResponseWriter
	flusher  http.Flusher
	done     chan struct{}
	writeMu  sync.Mutex
	lastSent time.Time
}

// SSEManager pushes toast notifications to connected operator
// sessions. Delivery is fire-and-forget; the core never awaits it.
type SSEManager struct {
	clients        map[string]*SSEClient
	mu             sync.RWMutex
	appCtx         context.Context
	logger         *logging.Logger
	toastPresenter *presenters.ToastPresenter
}

// NewSSEManager creates a new SSE connection manager with a cleanup
// routine tied to the application context.
func NewSSEManager(appCtx context.Context) *SSEManager {
	manager := &SSEManager{
		clients:        make(map[string]*SSEClient),
		appCtx:         appCtx,
		logger:         logging.Default().WithComponent("sse_manager"),
		toastPresenter: presenters.NewToastPresenter(),
	}

	go manager.cleanupRoutine()

	return manager
}

// AddClient registers a new SSE client connection.
func (s *SSEManager) AddClient(clientID string, w http.ResponseWriter) *SSEClient {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.logger.Error("Response writer does not support flushing")
		return nil
	}
	flusher.Flush()

	client := &SSEClient{
		id:       clientID,
		writer:   w,
		flusher:  flusher,
		done:     make(chan struct{}),
		lastSent: time.Now(),
	}

	s.mu.Lock()
	s.clients[clientID] = client
	total := len(s.clients)
	s.mu.Unlock()

	s.logger.Info("SSE client connected", "client_id", clientID, "total_clients", total)
	s.sendToClient(client, "connected", fmt.Sprintf("connected client %s", clientID)) //nolint:errcheck

	return client
}

// RemoveClient drops an SSE client connection.
func (s *SSEManager) RemoveClient(clientID string) {
	s.mu.Lock()
	client, exists := s.clients[clientID]
	if exists {
		delete(s.clients, clientID)
	}
	s.mu.Unlock()

	if exists {
		select {
		case <-client.done:
		default:
			close(client.done)
		}
		s.logger.Info("SSE client disconnected", "client_id", clientID)
	}
}

// BroadcastToast pushes a plain toast to all connected clients.
func (s *SSEManager) BroadcastToast(message, toastType string) {
	payload, err := s.toastPresenter.FormatToastNotification(message, toastType)
	if err != nil {
		s.logger.Error("Failed to format toast notification", "error", err, "message", message)
		return
	}
	s.broadcast("toast", payload)
}

// BroadcastBulkResult pushes a rich toast for a completed bulk
// operation, including the per-item failure list.
func (s *SSEManager) BroadcastBulkResult(event events.BulkCompletedEvent) {
	payload, err := s.toastPresenter.FormatBulkToastNotification(event)
	if err != nil {
		s.logger.Error("Failed to format bulk toast notification",
			"error", err,
			"invocation_id", event.InvocationID)
		return
	}
	s.broadcast("toast", payload)
}

// broadcast sends one event to every connected client, dropping
// clients whose connection has failed.
func (s *SSEManager) broadcast(event, data string) {
	// Copy clients list to avoid holding lock during I/O.
	s.mu.RLock()
	if len(s.clients) == 0 {
		s.mu.RUnlock()
		s.logger.Debug("No SSE clients connected, skipping broadcast", "event", event)
		return
	}
	clientList := make(map[string]*SSEClient, len(s.clients))
	for id, client := range s.clients {
		clientList[id] = client
	}
	s.mu.RUnlock()

	var failedClients []string
	for clientID, client := range clientList {
		if err := s.sendToClient(client, event, data); err != nil {
			s.logger.Warn("Failed to send event to client",
				"client_id", clientID,
				"event", event,
				"error", err)
			failedClients = append(failedClients, clientID)
		}
	}

	for _, clientID := range failedClients {
		s.RemoveClient(clientID)
	}
}

// sendToClient writes one SSE message to a specific client.
func (s *SSEManager) sendToClient(client *SSEClient, event, data string) error {
	select {
	case <-client.done:
		return fmt.Errorf("client connection closed")
	default:
	}

	var message string
	if event == "keepalive" || event == "connected" {
		// Sent as SSE comments so the browser does not dispatch events.
		message = fmt.Sprintf(": %s\n\n", data)
	} else {
		message = fmt.Sprintf("event: %s\ndata: %s\n\n", event, data)
	}

	client.writeMu.Lock()
	defer client.writeMu.Unlock()

	if _, err := client.writer.Write([]byte(message)); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	client.flusher.Flush()
	client.lastSent = time.Now()
	return nil
}

// CloseAll closes every client connection, used during shutdown.
func (s *SSEManager) CloseAll() {
	s.mu.Lock()
	clients := make([]string, 0, len(s.clients))
	for id := range s.clients {
		clients = append(clients, id)
	}
	s.mu.Unlock()

	for _, id := range clients {
		s.RemoveClient(id)
	}
}

// cleanupRoutine periodically sends keep-alives and removes stale
// connections until the application context is cancelled.
func (s *SSEManager) cleanupRoutine() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.appCtx.Done():
			return
		case <-ticker.C:
		}

		s.mu.RLock()
		clientList := make(map[string]*SSEClient, len(s.clients))
		for id, client := range s.clients {
			clientList[id] = client
		}
		s.mu.RUnlock()

		var failedClients []string
		keepalive := `{"timestamp": "` + time.Now().Format(time.RFC3339) + `"}`
		for clientID, client := range clientList {
			if err := s.sendToClient(client, "keepalive", keepalive); err != nil {
				s.logger.Debug("Keep-alive failed, removing client", "client_id", clientID)
				failedClients = append(failedClients, clientID)
			}
		}
		for _, clientID := range failedClients {
			s.RemoveClient(clientID)
		}
	}
}

// HandleSSEConnection handles the SSE endpoint.
func (s *SSEManager) HandleSSEConnection(w http.ResponseWriter, r *http.Request) {
	clientID := uuid.NewString()
	client := s.AddClient(clientID, w)
	if client == nil {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	defer s.RemoveClient(clientID)

	select {
	case <-r.Context().Done():
	case <-client.done:
	case <-s.appCtx.Done():
	}
}
