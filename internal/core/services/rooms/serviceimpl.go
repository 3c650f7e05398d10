package rooms

import (
	"context"
	"math/rand"
	"time"

	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
	"gitlab.com/codeduel-2025.net/internal/utils"
)

var _ IRoomService = (*RoomService)(nil)

const roomCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RoomService implements the RoomService interface. All of its methods run
// as dispatcher tasks; the rng needs no locking for the same reason.
type RoomService struct {
	rooms     secondary.RoomStore
	directory secondary.SessionDirectory
	duels     secondary.DuelStore
	problems  secondary.ProblemRepository
	notifier  secondary.Notifier
	logger    primary.Logger
	cfg       *config.DuelConfig
	rng       *rand.Rand
}

// NewRoomService creates a new room service
func NewRoomService(
	rooms secondary.RoomStore,
	directory secondary.SessionDirectory,
	duels secondary.DuelStore,
	problems secondary.ProblemRepository,
	notifier secondary.Notifier,
	logger primary.Logger,
	cfg *config.DuelConfig,
) *RoomService {
	return &RoomService{
		rooms:     rooms,
		directory: directory,
		duels:     duels,
		problems:  problems,
		notifier:  notifier,
		logger:    logger,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetNotifier sets the notifier after construction; the transport that
// implements it is built after the services.
func (s *RoomService) SetNotifier(notifier secondary.Notifier) {
	s.notifier = notifier
}

// Create opens a new room hosted by the session
func (s *RoomService) Create(sessionID string, difficulty domain.Difficulty) error {
	if _, bound := s.directory.RoomOf(sessionID); bound {
		return errs.AlreadyInRoom
	}
	if !difficulty.Valid() {
		difficulty = domain.DifficultyAny
	}

	room := &domain.Room{
		ID:         s.newRoomCode(),
		Host:       sessionID,
		Players:    []string{sessionID},
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}
	s.rooms.Save(room)
	s.directory.BindRoom(sessionID, room.ID)

	s.logger.Info("Room created", "roomId", room.ID, "host", sessionID, "difficulty", difficulty)

	s.notifier.Notify(sessionID, domain.EventRoomCreated, roomState(room))
	return nil
}

// Join adds the session to an existing room by its code
func (s *RoomService) Join(sessionID, roomID string) error {
	if !utils.ValidRoomCode(roomID) {
		return errs.InvalidRoomCode
	}

	room, exists := s.rooms.Get(roomID)
	if !exists {
		return errs.RoomNotFound
	}
	if room.HasPlayer(sessionID) {
		return errs.AlreadyInRoom
	}
	if room.IsFull() {
		return errs.RoomFull
	}

	room.Players = append(room.Players, sessionID)
	s.rooms.Save(room)
	s.directory.BindRoom(sessionID, roomID)

	s.logger.Info("Session joined room", "roomId", roomID, "sessionId", sessionID)

	state := roomState(room)
	s.notifier.Notify(sessionID, domain.EventRoomJoined, state)
	for _, player := range room.Players {
		if player != sessionID {
			s.notifier.Notify(player, domain.EventRoomUpdated, state)
		}
	}
	return nil
}

// Leave removes the session from its current room
func (s *RoomService) Leave(sessionID string) error {
	roomID, bound := s.directory.RoomOf(sessionID)
	if !bound {
		return errs.NotInRoom
	}
	if _, exists := s.rooms.Get(roomID); !exists {
		return errs.NotInRoom
	}

	s.evict(sessionID, roomID)
	return nil
}

// Evict silently removes a disconnecting session from its room. Unlike
// Leave it never errors: a session outside any custom room is a no-op.
func (s *RoomService) Evict(sessionID string) {
	roomID, bound := s.directory.RoomOf(sessionID)
	if !bound {
		return
	}
	if _, exists := s.rooms.Get(roomID); !exists {
		return
	}
	s.evict(sessionID, roomID)
}

// Start begins the duel; only the host of a full room may call it
func (s *RoomService) Start(ctx context.Context, sessionID string) error {
	roomID, bound := s.directory.RoomOf(sessionID)
	if !bound {
		return errs.NotInRoom
	}
	room, exists := s.rooms.Get(roomID)
	if !exists {
		return errs.RoomNotFound
	}
	if room.Host != sessionID {
		return errs.NotHost
	}
	if len(room.Players) < domain.MaxRoomPlayers {
		return errs.NeedTwoPlayers
	}

	problem, err := s.pickProblem(ctx, room.Difficulty)
	if err != nil {
		s.logger.Error("Failed to pick problem for room", "roomId", roomID, "error", err)
		return errs.ProblemNotFound
	}

	s.duels.Create(roomID, problem.ID, time.Now())
	s.rooms.Delete(roomID)

	s.logger.Info("Room match started", "roomId", roomID, "problemId", problem.ID)

	data := domain.RoomMatchStartData{Problem: problem.Public()}
	for _, player := range room.Players {
		s.notifier.Notify(player, domain.EventRoomMatchStart, data)
	}
	return nil
}

// SweepIdle discards rooms that sat unstarted past the idle threshold
func (s *RoomService) SweepIdle() {
	now := time.Now()
	for _, room := range s.rooms.All() {
		if now.Sub(room.CreatedAt) < s.cfg.RoomIdleThreshold {
			continue
		}
		for _, player := range room.Players {
			s.directory.UnbindRoom(player)
		}
		s.rooms.Delete(room.ID)
		s.logger.Info("Swept idle room", "roomId", room.ID, "age", now.Sub(room.CreatedAt))
	}
}

// evict removes the session, reassigns the host when needed and either
// updates or discards the room.
func (s *RoomService) evict(sessionID, roomID string) {
	room, exists := s.rooms.Get(roomID)
	if !exists {
		return
	}
	if !room.RemovePlayer(sessionID) {
		return
	}
	s.directory.UnbindRoom(sessionID)

	if len(room.Players) == 0 {
		s.rooms.Delete(roomID)
		s.logger.Info("Room emptied", "roomId", roomID)
		return
	}

	if room.Host == sessionID {
		room.Host = room.Players[0]
		s.logger.Info("Room host reassigned", "roomId", roomID, "host", room.Host)
	}
	s.rooms.Save(room)

	state := roomState(room)
	for _, player := range room.Players {
		s.notifier.Notify(player, domain.EventRoomUpdated, state)
	}
}

// newRoomCode generates a fresh 6-character room code, retrying on the
// rare collision
func (s *RoomService) newRoomCode() string {
	for {
		code := make([]byte, 6)
		for i := range code {
			code[i] = roomCodeChars[s.rng.Intn(len(roomCodeChars))]
		}
		if !s.rooms.Exists(string(code)) {
			return string(code)
		}
	}
}

func (s *RoomService) pickProblem(ctx context.Context, difficulty domain.Difficulty) (*domain.Problem, error) {
	if difficulty == domain.DifficultyAny {
		return s.problems.Random(ctx)
	}
	return s.problems.RandomByDifficulty(ctx, difficulty)
}

func roomState(room *domain.Room) domain.RoomStateData {
	return domain.RoomStateData{
		RoomID:     room.ID,
		Host:       room.Host,
		Players:    append([]string(nil), room.Players...),
		Difficulty: room.Difficulty,
		IsReady:    room.IsFull(),
	}
}
