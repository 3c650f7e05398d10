package domain

// Server-to-client event names
const (
	EventQueueUpdate       = "queue_update"
	EventMatchFound        = "match_found"
	EventRoomCreated       = "room_created"
	EventRoomJoined        = "room_joined"
	EventRoomUpdated       = "room_updated"
	EventRoomError         = "room_error"
	EventRoomMatchStart    = "room_match_start"
	EventRunResults        = "run_results"
	EventTestingCode       = "testing_code"
	EventOpponentSubmitted = "opponent_submitted"
	EventTestResults       = "test_results"
	EventSubmissionError   = "submission_error"
	EventRevealSolutions   = "reveal_solutions"
	EventOpponentLeft      = "opponent_left"
)

// QueueUpdateData tells a waiting session where it stands in the queue
type QueueUpdateData struct {
	Position          int `json:"position"`
	TotalWaiting      int `json:"totalWaiting"`
	EstimatedWaitTime int `json:"estimatedWaitTime"`
}

// MatchFoundData is sent to each matched session; OpponentID is
// per-recipient.
type MatchFoundData struct {
	RoomID     string   `json:"roomId"`
	OpponentID string   `json:"opponentId"`
	Problem    *Problem `json:"problem"`
}

// RoomStateData is the roster payload for room_created, room_joined and
// room_updated
type RoomStateData struct {
	RoomID     string     `json:"roomId"`
	Host       string     `json:"host"`
	Players    []string   `json:"players"`
	Difficulty Difficulty `json:"difficulty"`
	IsReady    bool       `json:"isReady"`
}

// ErrorData carries a user-facing error message
type ErrorData struct {
	Message string `json:"message"`
}

// RoomMatchStartData announces the start of a custom-room duel
type RoomMatchStartData struct {
	Problem *Problem `json:"problem"`
}

// TestingCodeData acknowledges that a submission is being scored
type TestingCodeData struct {
	Message string `json:"message"`
}

// SolutionData is one side of the reveal payload
type SolutionData struct {
	SessionID   string         `json:"sessionId"`
	Code        string         `json:"code"`
	Language    string         `json:"language"`
	TestResults *TestRunReport `json:"testResults"`
	SubmitTime  int64          `json:"submitTime"`
}

// OpponentLeftData tells the surviving duel participant their opponent
// disconnected
type OpponentLeftData struct {
	Message string `json:"message"`
}

// RevealSolutionsData discloses both submissions and the winner to both
// duel participants
type RevealSolutionsData struct {
	Solutions []SolutionData `json:"solutions"`
	Winner    string         `json:"winner"`
	Problem   *Problem       `json:"problem"`
}
