package errs

import "errors"

var (
	InvalidRoomCode = errors.New("invalid room code format")
	RoomNotFound    = errors.New("room not found")
	RoomFull        = errors.New("room is full")
	AlreadyInRoom   = errors.New("already in this room")
	NotHost         = errors.New("only host can start the match")
	NeedTwoPlayers  = errors.New("need 2 players to start")
)
