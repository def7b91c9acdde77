package room

import "github.com/iniduniaku/ulartangga/internal/game"

// Broadcaster delivers events to the connections in a room. The
// websocket hub implements it; tests substitute a recorder. JoinRoom
// subscribes a connection to a room's broadcasts and is called while
// a player is being seated, so the join events reach the new member.
type Broadcaster interface {
	JoinRoom(connID, roomID string)
	Broadcast(roomID string, event string, data interface{})
}

// Store is the room registry the manager runs against.
type Store interface {
	GetRoom(id string) (*game.Room, bool)
	SaveRoom(r *game.Room)
	DeleteRoom(id string)
	ListRooms() []*game.Room
}
