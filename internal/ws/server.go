// package ws is the websocket transport: it owns connections, assigns
// session ids, and bridges frames onto the dispatcher.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/core/services/duel"
	"gitlab.com/codeduel-2025.net/internal/core/services/matchmaking"
	"gitlab.com/codeduel-2025.net/internal/core/services/rooms"
	"gitlab.com/codeduel-2025.net/internal/core/services/session"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/ws/defs"
	"gitlab.com/codeduel-2025.net/internal/ws/handlers"
)

var _ secondary.Notifier = (*WSServer)(nil)

// WSServer handles websocket connections from players. Inbound events are
// never handled on the read goroutine; each one is enqueued as a
// dispatcher task.
type WSServer struct {
	sessionService     session.ISessionService
	matchmakingService matchmaking.IMatchmakingService
	roomService        rooms.IRoomService
	duelService        duel.IDuelService
	tasks              primary.TaskQueue
	logger             primary.Logger

	upgrader websocket.Upgrader
	handlers map[string]primary.EventHandler

	clientsMu sync.RWMutex
	clients   map[string]*Client
}

// NewWSServer creates a new websocket server
func NewWSServer(
	sessionService session.ISessionService,
	matchmakingService matchmaking.IMatchmakingService,
	roomService rooms.IRoomService,
	duelService duel.IDuelService,
	tasks primary.TaskQueue,
	logger primary.Logger,
) *WSServer {
	server := &WSServer{
		sessionService:     sessionService,
		matchmakingService: matchmakingService,
		roomService:        roomService,
		duelService:        duelService,
		tasks:              tasks,
		logger:             logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*Client),
	}

	server.setupEventHandlers()

	return server
}

// setupEventHandlers registers all event handlers
func (s *WSServer) setupEventHandlers() {
	s.handlers = map[string]primary.EventHandler{
		defs.EvtJoinQueue:      &handlers.JoinQueueHandler{MatchmakingService: s.matchmakingService, Notifier: s, Logger: s.logger},
		defs.EvtLeaveQueue:     &handlers.LeaveQueueHandler{MatchmakingService: s.matchmakingService, Logger: s.logger},
		defs.EvtCreateRoom:     &handlers.CreateRoomHandler{RoomService: s.roomService, Notifier: s, Logger: s.logger},
		defs.EvtJoinRoom:       &handlers.JoinRoomHandler{RoomService: s.roomService, Notifier: s, Logger: s.logger},
		defs.EvtLeaveRoom:      &handlers.LeaveRoomHandler{RoomService: s.roomService, Notifier: s, Logger: s.logger},
		defs.EvtStartRoomMatch: &handlers.StartRoomMatchHandler{RoomService: s.roomService, Notifier: s, Logger: s.logger},
		defs.EvtRunCode:        &handlers.RunCodeHandler{DuelService: s.duelService, Notifier: s, Logger: s.logger},
		defs.EvtSubmitCode:     &handlers.SubmitCodeHandler{DuelService: s.duelService, Notifier: s, Logger: s.logger},
	}
}

// HandleConnection upgrades an HTTP request and runs the connection until
// it closes
func (s *WSServer) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	sessionID := uuid.NewString()
	client := newClient(sessionID, conn, s)

	s.clientsMu.Lock()
	s.clients[sessionID] = client
	s.clientsMu.Unlock()

	s.logger.Info("Session connected", "sessionId", sessionID, "remote", r.RemoteAddr)

	s.tasks.Enqueue(func() { s.sessionService.Register(sessionID) })

	go client.writePump()
	client.readPump()
}

// Notify implements the Notifier interface. Unknown sessions are dropped
// silently; a backed-up client loses the frame rather than stalling the
// dispatcher.
func (s *WSServer) Notify(sessionID string, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to marshal event payload", "event", event, "error", err)
		return
	}
	frame, err := json.Marshal(defs.Envelope{Event: event, Data: data})
	if err != nil {
		s.logger.Error("Failed to marshal event envelope", "event", event, "error", err)
		return
	}

	// the send stays under the read lock so the channel cannot be closed
	// out from under it
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	client, exists := s.clients[sessionID]
	if !exists {
		return
	}
	select {
	case client.send <- frame:
	default:
		s.logger.Warn("Dropping frame for slow client", "sessionId", sessionID, "event", event)
	}
}

// CloseAll closes every live connection, used on shutdown
func (s *WSServer) CloseAll() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for sessionID, client := range s.clients {
		close(client.send)
		delete(s.clients, sessionID)
	}
}

// dispatch parses one inbound frame and enqueues its handler as a
// dispatcher task
func (s *WSServer) dispatch(sessionID string, raw []byte) {
	var envelope defs.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.logger.Warn("Invalid frame", "sessionId", sessionID, "error", err)
		s.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: "Invalid message format"})
		return
	}

	handler, exists := s.handlers[envelope.Event]
	if !exists {
		s.logger.Warn("Unknown event", "sessionId", sessionID, "event", envelope.Event)
		return
	}

	s.tasks.Enqueue(func() {
		if err := handler.HandleEvent(context.Background(), sessionID, envelope.Data); err != nil {
			s.logger.Debug("Event rejected", "sessionId", sessionID, "event", envelope.Event, "error", err)
		}
	})
}

// disconnect unregisters the client and schedules the session teardown
func (s *WSServer) disconnect(client *Client) {
	s.clientsMu.Lock()
	if current, exists := s.clients[client.sessionID]; exists && current == client {
		delete(s.clients, client.sessionID)
		close(client.send)
	}
	s.clientsMu.Unlock()

	s.logger.Info("Session disconnected", "sessionId", client.sessionID)
	s.tasks.Enqueue(func() { s.sessionService.Teardown(client.sessionID) })
}
