package memstate

import (
	"sync"

	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ secondary.RoomStore = (*Rooms)(nil)

// Rooms implements the RoomStore interface with a locked map keyed by room
// code
type Rooms struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
}

// NewRooms creates a new in-memory custom room store
func NewRooms() *Rooms {
	return &Rooms{
		rooms: make(map[string]*domain.Room),
	}
}

func (s *Rooms) Save(room *domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms[room.ID] = room
}

func (s *Rooms) Get(roomID string) (*domain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[roomID]
	return room, exists
}

func (s *Rooms) Exists(roomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.rooms[roomID]
	return exists
}

func (s *Rooms) Delete(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rooms, roomID)
}

// All returns a snapshot of every active custom room
func (s *Rooms) All() []*domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]*domain.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}
