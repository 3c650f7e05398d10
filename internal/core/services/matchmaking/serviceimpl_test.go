package matchmaking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeduel-2025.net/internal/adapter/logging"
	"gitlab.com/codeduel-2025.net/internal/adapter/memproblems"
	"gitlab.com/codeduel-2025.net/internal/adapter/memstate"
	"gitlab.com/codeduel-2025.net/internal/domain"
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

func (n *fakeNotifier) all(sessionID, event string) []notified {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notified
	for _, e := range n.events {
		if e.sessionID == sessionID && e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (n *fakeNotifier) last(sessionID, event string) (interface{}, bool) {
	matches := n.all(sessionID, event)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[len(matches)-1].payload, true
}

type fixture struct {
	svc       *MatchmakingService
	queue     *memstate.Queue
	directory *memstate.SessionDirectory
	duels     *memstate.Duels
	notifier  *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		queue:     memstate.NewQueue(),
		directory: memstate.NewSessionDirectory(),
		duels:     memstate.NewDuels(),
		notifier:  &fakeNotifier{},
	}
	f.svc = NewMatchmakingService(
		f.queue,
		f.directory,
		f.duels,
		memproblems.New(1),
		f.notifier,
		logging.NewNopLogger(),
	)
	f.directory.Register("a")
	f.directory.Register("b")
	f.directory.Register("c")
	return f
}

func TestJoinQueueBroadcastsPosition(t *testing.T) {
	f := newFixture(t)

	f.svc.JoinQueue(context.Background(), "a", domain.DifficultyEasy)

	payload, ok := f.notifier.last("a", domain.EventQueueUpdate)
	require.True(t, ok)
	update := payload.(domain.QueueUpdateData)
	assert.Equal(t, 1, update.Position)
	assert.Equal(t, 1, update.TotalWaiting)
	assert.Equal(t, 30, update.EstimatedWaitTime)
}

func TestQueueEstimateDecaysWithPosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// incompatible entries so nobody matches
	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyMedium)

	payload, ok := f.notifier.last("b", domain.EventQueueUpdate)
	require.True(t, ok)
	update := payload.(domain.QueueUpdateData)
	assert.Equal(t, 2, update.Position)
	assert.Equal(t, 2, update.TotalWaiting)
	assert.Equal(t, 25, update.EstimatedWaitTime)
}

func TestCompatibleSessionsMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyEasy)

	payloadA, ok := f.notifier.last("a", domain.EventMatchFound)
	require.True(t, ok)
	payloadB, ok := f.notifier.last("b", domain.EventMatchFound)
	require.True(t, ok)

	matchA := payloadA.(domain.MatchFoundData)
	matchB := payloadB.(domain.MatchFoundData)
	assert.Equal(t, "room_a_b", matchA.RoomID)
	assert.Equal(t, matchA.RoomID, matchB.RoomID)
	assert.Equal(t, "b", matchA.OpponentID)
	assert.Equal(t, "a", matchB.OpponentID)
	assert.Equal(t, domain.DifficultyEasy, matchA.Problem.Difficulty)

	// both are out of the queue and bound to the new room
	assert.Equal(t, 0, f.queue.Len())
	roomID, bound := f.directory.RoomOf("a")
	require.True(t, bound)
	assert.Equal(t, matchA.RoomID, roomID)
	assert.True(t, f.duels.Exists(matchA.RoomID))
}

func TestMatchProblemHidesHiddenCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyEasy)

	payload, ok := f.notifier.last("a", domain.EventMatchFound)
	require.True(t, ok)
	problem := payload.(domain.MatchFoundData).Problem
	require.NotNil(t, problem)
	for _, tc := range problem.TestCases {
		assert.False(t, tc.IsHidden)
	}
}

func TestAnyMatchesConcreteDifficulty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyAny)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyHard)

	payload, ok := f.notifier.last("a", domain.EventMatchFound)
	require.True(t, ok)
	assert.Equal(t, domain.DifficultyHard, payload.(domain.MatchFoundData).Problem.Difficulty)
}

func TestUnknownDifficultyDefaultsToAny(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.Difficulty("nightmare"))
	f.svc.JoinQueue(ctx, "b", domain.DifficultyMedium)

	_, ok := f.notifier.last("a", domain.EventMatchFound)
	assert.True(t, ok)
}

func TestIncompatibleSessionsWait(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyMedium)

	_, ok := f.notifier.last("a", domain.EventMatchFound)
	assert.False(t, ok)
	assert.Equal(t, 2, f.queue.Len())
}

func TestEarliestCompatibleEntryWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "c", domain.DifficultyEasy)

	// a and b matched, c keeps waiting at the head of the queue
	_, matchedC := f.notifier.last("c", domain.EventMatchFound)
	assert.False(t, matchedC)

	payload, ok := f.notifier.last("c", domain.EventQueueUpdate)
	require.True(t, ok)
	assert.Equal(t, 1, payload.(domain.QueueUpdateData).Position)
}

func TestLeaveQueueRebroadcasts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "b", domain.DifficultyMedium)

	f.svc.LeaveQueue("a")

	assert.Equal(t, 1, f.queue.Len())
	payload, ok := f.notifier.last("b", domain.EventQueueUpdate)
	require.True(t, ok)
	assert.Equal(t, 1, payload.(domain.QueueUpdateData).Position)
}

func TestLeaveQueueWhenNotQueuedIsSilent(t *testing.T) {
	f := newFixture(t)

	f.svc.LeaveQueue("a")
	assert.Empty(t, f.notifier.all("a", domain.EventQueueUpdate))
}

func TestDuplicateJoinIsIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.JoinQueue(ctx, "a", domain.DifficultyEasy)
	f.svc.JoinQueue(ctx, "a", domain.DifficultyHard)

	assert.Equal(t, 1, f.queue.Len())
	entries := f.queue.Entries()
	assert.Equal(t, domain.DifficultyEasy, entries[0].Difficulty)
}
