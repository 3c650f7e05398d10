package rooms

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeduel-2025.net/internal/adapter/logging"
	"gitlab.com/codeduel-2025.net/internal/adapter/memproblems"
	"gitlab.com/codeduel-2025.net/internal/adapter/memstate"
	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
	"gitlab.com/codeduel-2025.net/internal/utils"
)

type notified struct {
	sessionID string
	event     string
	payload   interface{}
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notified
}

func (n *fakeNotifier) Notify(sessionID string, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notified{sessionID: sessionID, event: event, payload: payload})
}

func (n *fakeNotifier) last(sessionID, event string) (interface{}, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.events) - 1; i >= 0; i-- {
		e := n.events[i]
		if e.sessionID == sessionID && e.event == event {
			return e.payload, true
		}
	}
	return nil, false
}

type fixture struct {
	svc       *RoomService
	rooms     *memstate.Rooms
	directory *memstate.SessionDirectory
	duels     *memstate.Duels
	notifier  *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		rooms:     memstate.NewRooms(),
		directory: memstate.NewSessionDirectory(),
		duels:     memstate.NewDuels(),
		notifier:  &fakeNotifier{},
	}
	f.svc = NewRoomService(
		f.rooms,
		f.directory,
		f.duels,
		memproblems.New(1),
		f.notifier,
		logging.NewNopLogger(),
		&config.DuelConfig{
			MaxCodeSize:       50000,
			SubmitWindow:      time.Minute,
			SubmitLimit:       5,
			RoomIdleThreshold: time.Hour,
			SweepInterval:     5 * time.Minute,
		},
	)
	f.directory.Register("host")
	f.directory.Register("guest")
	f.directory.Register("third")
	return f
}

// createdRoomID pulls the generated code out of the room_created payload
func (f *fixture) createdRoomID(t *testing.T, sessionID string) string {
	t.Helper()
	payload, ok := f.notifier.last(sessionID, domain.EventRoomCreated)
	require.True(t, ok)
	return payload.(domain.RoomStateData).RoomID
}

func TestCreateRoom(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Create("host", domain.DifficultyMedium))

	payload, ok := f.notifier.last("host", domain.EventRoomCreated)
	require.True(t, ok)
	state := payload.(domain.RoomStateData)
	assert.True(t, utils.ValidRoomCode(state.RoomID))
	assert.Equal(t, "host", state.Host)
	assert.Equal(t, []string{"host"}, state.Players)
	assert.Equal(t, domain.DifficultyMedium, state.Difficulty)
	assert.False(t, state.IsReady)

	roomID, bound := f.directory.RoomOf("host")
	require.True(t, bound)
	assert.Equal(t, state.RoomID, roomID)
}

func TestCreateWhileInRoomFails(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Create("host", domain.DifficultyAny))
	assert.ErrorIs(t, f.svc.Create("host", domain.DifficultyAny), errs.AlreadyInRoom)
}

func TestJoinRoom(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	roomID := f.createdRoomID(t, "host")

	require.NoError(t, f.svc.Join("guest", roomID))

	payload, ok := f.notifier.last("guest", domain.EventRoomJoined)
	require.True(t, ok)
	state := payload.(domain.RoomStateData)
	assert.Equal(t, []string{"host", "guest"}, state.Players)
	assert.True(t, state.IsReady)

	// the host sees the roster change as room_updated
	payload, ok = f.notifier.last("host", domain.EventRoomUpdated)
	require.True(t, ok)
	assert.True(t, payload.(domain.RoomStateData).IsReady)
}

func TestJoinRoomErrors(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	roomID := f.createdRoomID(t, "host")

	assert.ErrorIs(t, f.svc.Join("guest", "bad!!"), errs.InvalidRoomCode)
	assert.ErrorIs(t, f.svc.Join("guest", "ZZZZZ9"), errs.RoomNotFound)
	assert.ErrorIs(t, f.svc.Join("host", roomID), errs.AlreadyInRoom)

	require.NoError(t, f.svc.Join("guest", roomID))
	assert.ErrorIs(t, f.svc.Join("third", roomID), errs.RoomFull)
}

func TestLeaveReassignsHost(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	roomID := f.createdRoomID(t, "host")
	require.NoError(t, f.svc.Join("guest", roomID))

	require.NoError(t, f.svc.Leave("host"))

	payload, ok := f.notifier.last("guest", domain.EventRoomUpdated)
	require.True(t, ok)
	state := payload.(domain.RoomStateData)
	assert.Equal(t, "guest", state.Host)
	assert.Equal(t, []string{"guest"}, state.Players)

	_, bound := f.directory.RoomOf("host")
	assert.False(t, bound)
}

func TestLeaveLastPlayerDeletesRoom(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	roomID := f.createdRoomID(t, "host")

	require.NoError(t, f.svc.Leave("host"))
	assert.False(t, f.rooms.Exists(roomID))
}

func TestLeaveWithoutRoomFails(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.Leave("host"), errs.NotInRoom)
}

func TestEvictIsSilentForUnboundSession(t *testing.T) {
	f := newFixture(t)
	f.svc.Evict("host")
	// no error, no events
	_, ok := f.notifier.last("host", domain.EventRoomUpdated)
	assert.False(t, ok)
}

func TestStartChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Start(ctx, "host"), errs.NotInRoom)

	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	assert.ErrorIs(t, f.svc.Start(ctx, "host"), errs.NeedTwoPlayers)

	roomID := f.createdRoomID(t, "host")
	require.NoError(t, f.svc.Join("guest", roomID))
	assert.ErrorIs(t, f.svc.Start(ctx, "guest"), errs.NotHost)
}

func TestStartBeginsDuel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Create("host", domain.DifficultyHard))
	roomID := f.createdRoomID(t, "host")
	require.NoError(t, f.svc.Join("guest", roomID))

	require.NoError(t, f.svc.Start(ctx, "host"))

	// the room became a duel
	assert.False(t, f.rooms.Exists(roomID))
	assert.True(t, f.duels.Exists(roomID))

	for _, player := range []string{"host", "guest"} {
		payload, ok := f.notifier.last(player, domain.EventRoomMatchStart)
		require.True(t, ok, "player %s missed room_match_start", player)
		problem := payload.(domain.RoomMatchStartData).Problem
		require.NotNil(t, problem)
		assert.Equal(t, domain.DifficultyHard, problem.Difficulty)
		for _, tc := range problem.TestCases {
			assert.False(t, tc.IsHidden)
		}
	}

	// members stay bound so the duel can address them
	got, bound := f.directory.RoomOf("guest")
	require.True(t, bound)
	assert.Equal(t, roomID, got)
}

func TestSweepIdleDiscardsOldRooms(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	roomID := f.createdRoomID(t, "host")

	// age the room past the threshold
	room, exists := f.rooms.Get(roomID)
	require.True(t, exists)
	room.CreatedAt = time.Now().Add(-2 * time.Hour)
	f.rooms.Save(room)

	f.svc.SweepIdle()

	assert.False(t, f.rooms.Exists(roomID))
	_, bound := f.directory.RoomOf("host")
	assert.False(t, bound)
}

func TestSweepIdleKeepsFreshRooms(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Create("host", domain.DifficultyEasy))
	roomID := f.createdRoomID(t, "host")

	f.svc.SweepIdle()
	assert.True(t, f.rooms.Exists(roomID))
}
