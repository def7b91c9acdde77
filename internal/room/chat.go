package room

import (
	"time"

	"github.com/iniduniaku/ulartangga/internal/game"
)

const (
	MessagePlayer  = "player"
	MessageSystem  = "system"
	MessageSpecial = "special"
	MessageWin     = "win"
)

// ChatMessage is the newMessage payload, shared by player chat and
// server-generated announcements.
type ChatMessage struct {
	ID          int64  `json:"id"`
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	PlayerColor string `json:"playerColor"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
}

// chatTime renders the short id-ID wall clock time, e.g. "14.30".
func chatTime() string {
	return time.Now().Format("15.04")
}

func systemMessage(text, typ string) ChatMessage {
	return ChatMessage{
		ID:          time.Now().UnixMilli(),
		PlayerID:    "system",
		PlayerName:  "System",
		PlayerColor: game.SystemColor,
		Message:     text,
		Timestamp:   chatTime(),
		Type:        typ,
	}
}

func playerMessage(p *game.Player, text string) ChatMessage {
	return ChatMessage{
		ID:          time.Now().UnixMilli(),
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		PlayerColor: p.Color,
		Message:     text,
		Timestamp:   chatTime(),
		Type:        MessagePlayer,
	}
}
