package defs

import "encoding/json"

// Client-to-server event names
const (
	EvtJoinQueue      = "join_queue"
	EvtLeaveQueue     = "leave_queue"
	EvtCreateRoom     = "create_room"
	EvtJoinRoom       = "join_room"
	EvtLeaveRoom      = "leave_room"
	EvtStartRoomMatch = "start_room_match"
	EvtRunCode        = "run_code"
	EvtSubmitCode     = "submit_code"
)

// Envelope is the wire frame for every message in both directions
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// JoinQueueData is the payload of join_queue
type JoinQueueData struct {
	Difficulty string `json:"difficulty"`
}

// CreateRoomData is the payload of create_room
type CreateRoomData struct {
	Difficulty string `json:"difficulty"`
}

// JoinRoomData is the payload of join_room; the code is named roomCode on
// the wire, unlike the roomId key used in server-to-client payloads.
type JoinRoomData struct {
	RoomCode string `json:"roomCode"`
}

// CodeData is the payload of run_code and submit_code
type CodeData struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}
