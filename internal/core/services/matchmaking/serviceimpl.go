package matchmaking

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ IMatchmakingService = (*MatchmakingService)(nil)

// MatchmakingService implements the MatchmakingService interface. All of
// its methods run as dispatcher tasks, so queue scans and pair formation
// never interleave.
type MatchmakingService struct {
	queue     secondary.QueueStore
	directory secondary.SessionDirectory
	duels     secondary.DuelStore
	problems  secondary.ProblemRepository
	notifier  secondary.Notifier
	logger    primary.Logger
}

// NewMatchmakingService creates a new matchmaking service
func NewMatchmakingService(
	queue secondary.QueueStore,
	directory secondary.SessionDirectory,
	duels secondary.DuelStore,
	problems secondary.ProblemRepository,
	notifier secondary.Notifier,
	logger primary.Logger,
) *MatchmakingService {
	return &MatchmakingService{
		queue:     queue,
		directory: directory,
		duels:     duels,
		problems:  problems,
		notifier:  notifier,
		logger:    logger,
	}
}

// SetNotifier sets the notifier after construction; the transport that
// implements it is built after the services.
func (s *MatchmakingService) SetNotifier(notifier secondary.Notifier) {
	s.notifier = notifier
}

// JoinQueue enqueues a session and pairs it immediately when a compatible
// opponent is waiting. An unknown difficulty is treated as "any".
func (s *MatchmakingService) JoinQueue(ctx context.Context, sessionID string, difficulty domain.Difficulty) {
	if !difficulty.Valid() {
		difficulty = domain.DifficultyAny
	}

	entry := &domain.QueueEntry{
		SessionID:  sessionID,
		Difficulty: difficulty,
		JoinedAt:   time.Now(),
	}
	if !s.queue.Enqueue(entry) {
		s.logger.Debug("Session already queued", "sessionId", sessionID)
		return
	}

	s.logger.Info("Session joined queue", "sessionId", sessionID, "difficulty", difficulty)

	if opponent := s.findOpponent(entry); opponent != nil {
		s.match(ctx, opponent, entry)
		return
	}

	s.broadcastQueueUpdates()
}

// LeaveQueue removes a session from the queue
func (s *MatchmakingService) LeaveQueue(sessionID string) {
	if !s.queue.Remove(sessionID) {
		return
	}

	s.logger.Info("Session left queue", "sessionId", sessionID)
	s.broadcastQueueUpdates()
}

// findOpponent returns the earliest-joined compatible entry, or nil
func (s *MatchmakingService) findOpponent(entry *domain.QueueEntry) *domain.QueueEntry {
	for _, candidate := range s.queue.Entries() {
		if candidate.SessionID == entry.SessionID {
			continue
		}
		if candidate.Compatible(entry) {
			return candidate
		}
	}
	return nil
}

// match removes both entries from the queue, assigns a problem and binds
// the pair into a fresh quick-match room.
func (s *MatchmakingService) match(ctx context.Context, a, b *domain.QueueEntry) {
	s.queue.Remove(a.SessionID)
	s.queue.Remove(b.SessionID)

	difficulty := matchDifficulty(a, b)
	problem, err := s.pickProblem(ctx, difficulty)
	if err != nil {
		s.logger.Error("Failed to pick problem for match",
			"sessionA", a.SessionID,
			"sessionB", b.SessionID,
			"error", err)
		s.notifier.Notify(a.SessionID, domain.EventRoomError, domain.ErrorData{Message: "Failed to start match"})
		s.notifier.Notify(b.SessionID, domain.EventRoomError, domain.ErrorData{Message: "Failed to start match"})
		s.broadcastQueueUpdates()
		return
	}

	roomID := fmt.Sprintf("room_%s_%s", a.SessionID, b.SessionID)
	s.duels.Create(roomID, problem.ID, time.Now())
	s.directory.BindRoom(a.SessionID, roomID)
	s.directory.BindRoom(b.SessionID, roomID)

	s.logger.Info("Match found",
		"roomId", roomID,
		"problemId", problem.ID,
		"difficulty", difficulty)

	public := problem.Public()
	s.notifier.Notify(a.SessionID, domain.EventMatchFound, domain.MatchFoundData{
		RoomID:     roomID,
		OpponentID: b.SessionID,
		Problem:    public,
	})
	s.notifier.Notify(b.SessionID, domain.EventMatchFound, domain.MatchFoundData{
		RoomID:     roomID,
		OpponentID: a.SessionID,
		Problem:    public,
	})

	s.broadcastQueueUpdates()
}

// pickProblem draws from the whole pool for "any" and from the class
// otherwise
func (s *MatchmakingService) pickProblem(ctx context.Context, difficulty domain.Difficulty) (*domain.Problem, error) {
	if difficulty == domain.DifficultyAny {
		return s.problems.Random(ctx)
	}
	return s.problems.RandomByDifficulty(ctx, difficulty)
}

// matchDifficulty resolves the pair's effective difficulty: the concrete
// pick wins over "any".
func matchDifficulty(a, b *domain.QueueEntry) domain.Difficulty {
	if a.Difficulty != domain.DifficultyAny {
		return a.Difficulty
	}
	return b.Difficulty
}

// broadcastQueueUpdates sends every waiting session its current position
// and a wait estimate
func (s *MatchmakingService) broadcastQueueUpdates() {
	entries := s.queue.Entries()
	for i, entry := range entries {
		position := i + 1
		estimate := 30 - (position-1)*5
		if estimate < 10 {
			estimate = 10
		}
		s.notifier.Notify(entry.SessionID, domain.EventQueueUpdate, domain.QueueUpdateData{
			Position:          position,
			TotalWaiting:      len(entries),
			EstimatedWaitTime: estimate,
		})
	}
}
