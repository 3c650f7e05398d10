package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeduel-2025.net/internal/adapter/logging"
	"gitlab.com/codeduel-2025.net/internal/adapter/memgate"
	"gitlab.com/codeduel-2025.net/internal/adapter/memproblems"
	"gitlab.com/codeduel-2025.net/internal/adapter/memstate"
	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/core/services/duel"
	"gitlab.com/codeduel-2025.net/internal/core/services/matchmaking"
	"gitlab.com/codeduel-2025.net/internal/core/services/rooms"
	"gitlab.com/codeduel-2025.net/internal/core/services/session"
	"gitlab.com/codeduel-2025.net/internal/dispatch"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/ws/defs"
)

// acceptAllExecutor lets duels run without a judge in the loop
type acceptAllExecutor struct{}

func (acceptAllExecutor) Execute(_ context.Context, _ string, _ int, stdin string) *domain.ExecutionResult {
	return &domain.ExecutionResult{
		StatusID:          domain.StatusIDAccepted,
		StatusDescription: "Accepted",
		Stdout:            stdin,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()
	logger := logging.NewNopLogger()
	cfg := &config.DuelConfig{
		MaxCodeSize:       50000,
		SubmitWindow:      time.Minute,
		SubmitLimit:       5,
		RoomIdleThreshold: time.Hour,
	}

	directory := memstate.NewSessionDirectory()
	queueStore := memstate.NewQueue()
	roomStore := memstate.NewRooms()
	duelStore := memstate.NewDuels()
	problems := memproblems.New(1)
	gate := memgate.NewGate(cfg.SubmitWindow, cfg.SubmitLimit)

	dispatcher := dispatch.NewSerial(logger)
	dispatcher.Start()

	matchmakingSvc := matchmaking.NewMatchmakingService(queueStore, directory, duelStore, problems, nil, logger)
	roomSvc := rooms.NewRoomService(roomStore, directory, duelStore, problems, nil, logger, cfg)
	duelSvc := duel.NewDuelService(directory, duelStore, problems, gate, acceptAllExecutor{}, nil, dispatcher, logger, cfg)
	sessionSvc := session.NewSessionService(directory, duelStore, gate, matchmakingSvc, roomSvc, nil, logger)

	wsServer := NewWSServer(sessionSvc, matchmakingSvc, roomSvc, duelSvc, dispatcher, logger)
	matchmakingSvc.SetNotifier(wsServer)
	roomSvc.SetNotifier(wsServer)
	duelSvc.SetNotifier(wsServer)
	sessionSvc.SetNotifier(wsServer)

	srv := httptest.NewServer(http.HandlerFunc(wsServer.HandleConnection))
	cleanup := func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		dispatcher.Stop(ctx)
	}
	return srv, cleanup
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	frame, err := json.Marshal(defs.Envelope{Event: event, Data: payload})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

// recv reads frames until it sees the wanted event, failing on timeout
func recv(t *testing.T, conn *websocket.Conn, event string) json.RawMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %s", event)
		var envelope defs.Envelope
		require.NoError(t, json.Unmarshal(raw, &envelope))
		if envelope.Event == event {
			return envelope.Data
		}
	}
}

func TestQueueFlowOverWebsocket(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	conn := dial(t, srv)
	defer conn.Close()

	send(t, conn, defs.EvtJoinQueue, defs.JoinQueueData{Difficulty: "easy"})

	var update domain.QueueUpdateData
	require.NoError(t, json.Unmarshal(recv(t, conn, domain.EventQueueUpdate), &update))
	assert.Equal(t, 1, update.Position)
	assert.Equal(t, 30, update.EstimatedWaitTime)
}

func TestMatchAndDisconnectOverWebsocket(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	connA := dial(t, srv)
	defer connA.Close()
	connB := dial(t, srv)
	defer connB.Close()

	send(t, connA, defs.EvtJoinQueue, defs.JoinQueueData{Difficulty: "easy"})
	recv(t, connA, domain.EventQueueUpdate)
	send(t, connB, defs.EvtJoinQueue, defs.JoinQueueData{Difficulty: "easy"})

	var matchA, matchB domain.MatchFoundData
	require.NoError(t, json.Unmarshal(recv(t, connA, domain.EventMatchFound), &matchA))
	require.NoError(t, json.Unmarshal(recv(t, connB, domain.EventMatchFound), &matchB))
	assert.Equal(t, matchA.RoomID, matchB.RoomID)
	assert.NotEmpty(t, matchA.OpponentID)
	assert.NotEqual(t, matchA.OpponentID, matchB.OpponentID)
	require.NotNil(t, matchA.Problem)

	// one side vanishes; the survivor hears about it
	connA.Close()
	recv(t, connB, domain.EventOpponentLeft)
}

func TestRoomErrorOverWebsocket(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	conn := dial(t, srv)
	defer conn.Close()

	send(t, conn, defs.EvtJoinRoom, defs.JoinRoomData{RoomCode: "ZZZZZ9"})

	var errData domain.ErrorData
	require.NoError(t, json.Unmarshal(recv(t, conn, domain.EventRoomError), &errData))
	assert.Equal(t, "room not found", errData.Message)
}
