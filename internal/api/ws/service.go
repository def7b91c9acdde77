package ws

// GameService is the core surface the hub drives. Inbound socket
// actions are translated into these calls; outbound events come back
// through the Broadcast method the hub exposes to the core.
type GameService interface {
	Join(connID, name string) (roomID string)
	Leave(connID, roomID string)
	RollDice(connID, roomID string)
	SendChat(connID, roomID, message string)
}
