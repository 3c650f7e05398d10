package domain

import "time"

// Session is the opaque identity of a live connection. It is the unit of
// queue and room membership; everything bound to it is cascade-cleared on
// disconnect.
type Session struct {
	ID          string
	RoomID      string // empty until bound to a room
	ConnectedAt time.Time
}
