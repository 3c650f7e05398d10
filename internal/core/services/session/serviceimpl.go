package session

import (
	"context"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/core/services/matchmaking"
	"gitlab.com/codeduel-2025.net/internal/core/services/rooms"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ ISessionService = (*SessionService)(nil)

// SessionService implements the SessionService interface
type SessionService struct {
	directory   secondary.SessionDirectory
	duels       secondary.DuelStore
	gate        secondary.SubmissionGate
	matchmaking matchmaking.IMatchmakingService
	rooms       rooms.IRoomService
	notifier    secondary.Notifier
	logger      primary.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	directory secondary.SessionDirectory,
	duels secondary.DuelStore,
	gate secondary.SubmissionGate,
	matchmakingService matchmaking.IMatchmakingService,
	roomService rooms.IRoomService,
	notifier secondary.Notifier,
	logger primary.Logger,
) *SessionService {
	return &SessionService{
		directory:   directory,
		duels:       duels,
		gate:        gate,
		matchmaking: matchmakingService,
		rooms:       roomService,
		notifier:    notifier,
		logger:      logger,
	}
}

// SetNotifier sets the notifier after construction; the transport that
// implements it is built after the services.
func (s *SessionService) SetNotifier(notifier secondary.Notifier) {
	s.notifier = notifier
}

// Register records a newly connected session
func (s *SessionService) Register(sessionID string) {
	s.directory.Register(sessionID)
	s.logger.Info("Session registered", "sessionId", sessionID)
}

// Teardown cascade-clears everything bound to a departed session
func (s *SessionService) Teardown(sessionID string) {
	if !s.directory.Registered(sessionID) {
		return
	}

	s.matchmaking.LeaveQueue(sessionID)
	s.rooms.Evict(sessionID)

	if roomID, bound := s.directory.RoomOf(sessionID); bound && s.duels.Exists(roomID) {
		for _, other := range s.directory.SessionsInRoom(roomID) {
			if other != sessionID {
				s.notifier.Notify(other, domain.EventOpponentLeft, domain.OpponentLeftData{
					Message: "Your opponent has left the duel",
				})
			}
		}
		s.directory.UnbindRoom(sessionID)
		if len(s.directory.SessionsInRoom(roomID)) == 0 {
			s.duels.Delete(roomID)
			s.logger.Info("Duel discarded", "roomId", roomID)
		}
	}

	s.gate.Forget(context.Background(), sessionID)
	s.directory.Remove(sessionID)
	s.logger.Info("Session torn down", "sessionId", sessionID)
}
