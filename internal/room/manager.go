package room

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iniduniaku/ulartangga/internal/config"
	"github.com/iniduniaku/ulartangga/internal/game"
)

// Events broadcast to room members.
const (
	EventWaitingForPlayers = "waitingForPlayers"
	EventPlayerJoined      = "playerJoined"
	EventGameStart         = "gameStart"
	EventDiceRolled        = "diceRolled"
	EventPlayerMoved       = "playerMoved"
	EventTurnChanged       = "turnChanged"
	EventGameWon           = "gameWon"
	EventPlayerLeft        = "playerLeft"
	EventNewMessage        = "newMessage"
)

// Manager owns matchmaking and drives every room state machine. A
// single mutex serializes all entry points, including the deferred
// timer callbacks, so room invariants hold without per-room locking.
type Manager struct {
	mu    sync.Mutex
	store Store
	cfg   *config.Config
	dice  game.Roller
	board game.Board
	hub   Broadcaster
	log   zerolog.Logger
}

func NewManager(s Store, cfg *config.Config, dice game.Roller, log zerolog.Logger) *Manager {
	return &Manager{
		store: s,
		cfg:   cfg,
		dice:  dice,
		board: game.DefaultBoard(),
		log:   log,
	}
}

// SetBroadcaster wires the transport hub in after construction; the
// hub needs the manager first, so this breaks the cycle.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.hub = b
}

// Join seats the player in the first waiting room with a free seat, or
// creates a new room with them as its sole occupant. Returns the room
// identity the connection now belongs to.
func (m *Manager) Join(connID, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.store.ListRooms() {
		if r.State != game.StateWaiting || len(r.Players) >= m.cfg.MaxPlayers {
			continue
		}
		p := r.AddPlayer(connID, name)
		m.hub.JoinRoom(connID, r.ID)
		m.log.Info().Str("room", r.ID).Str("player", connID).Str("name", p.Name).Msg("player joined room")

		if len(r.Players) > 1 {
			m.sendSystem(r.ID, fmt.Sprintf("%s bergabung ke game!", name), MessageSystem)
		}
		m.hub.Broadcast(r.ID, EventPlayerJoined, gin.H{
			"players": r.Players,
			"roomId":  r.ID,
		})

		if len(r.Players) == m.cfg.MinPlayers {
			roomID := r.ID
			time.AfterFunc(m.cfg.StartDelay, func() { m.startGame(roomID) })
		}
		return r.ID
	}

	r := game.NewRoom(m.newRoomID(), m.board, connID, name)
	m.store.SaveRoom(r)
	m.hub.JoinRoom(connID, r.ID)
	m.log.Info().Str("room", r.ID).Str("player", connID).Str("name", name).Msg("room created")

	m.hub.Broadcast(r.ID, EventWaitingForPlayers, gin.H{
		"players": r.Players,
		"roomId":  r.ID,
	})
	return r.ID
}

// startGame is the deferred start continuation. The room is re-looked
// up by id; a deleted or already started room makes this a no-op.
func (m *Manager) startGame(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok || !r.Start() {
		return
	}
	m.log.Info().Str("room", roomID).Int("players", len(r.Players)).Msg("game started")

	m.sendSystem(roomID, "Game dimulai! Semoga beruntung! 🎮", MessageSystem)
	m.hub.Broadcast(roomID, EventGameStart, gin.H{
		"players":       r.Players,
		"currentPlayer": r.CurrentPlayer(),
	})
}

// RollDice handles a roll request. Out-of-turn rolls, rolls outside
// the playing state and rolls while a previous resolution is still
// pending are all dropped silently.
func (m *Manager) RollDice(connID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok || r.State != game.StatePlaying {
		return
	}
	current := r.CurrentPlayer()
	if current == nil || current.ID != connID {
		return
	}
	if r.PendingRollerID != "" {
		return
	}

	value := m.dice.Roll()
	r.DiceValue = value
	r.PendingRollerID = connID
	m.log.Debug().Str("room", roomID).Str("player", connID).Int("dice", value).Msg("dice rolled")

	m.hub.Broadcast(roomID, EventDiceRolled, gin.H{
		"playerId":   connID,
		"diceValue":  value,
		"playerName": current.Name,
	})

	time.AfterFunc(m.cfg.MoveDelay, func() { m.resolveMove(roomID, connID, value) })
}

// resolveMove is the deferred move continuation. The room and player
// are re-resolved when it fires; if either is gone the roll is simply
// dropped.
func (m *Manager) resolveMove(roomID, playerID string, steps int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	if r.PendingRollerID == playerID {
		r.PendingRollerID = ""
	}

	res, ok := r.MovePlayer(playerID, steps)
	if !ok {
		return
	}
	p, _ := r.Player(playerID)

	if !res.Moved {
		// Overshot the last square: the roll is forfeit and the turn
		// passes regardless of the dice value.
		r.NextTurn()
		m.hub.Broadcast(roomID, EventTurnChanged, gin.H{
			"currentPlayer": r.CurrentPlayer(),
			"players":       r.Players,
			"message":       "Tidak bisa bergerak melewati kotak 100!",
		})
		return
	}

	m.hub.Broadcast(roomID, EventPlayerMoved, gin.H{
		"playerId":    playerID,
		"newPosition": p.Position,
		"specialMove": res.Special,
		"players":     r.Players,
	})

	if res.Special != nil {
		switch res.Special.Type {
		case "snake":
			m.sendSystem(roomID, fmt.Sprintf("🐍 %s terkena ular! Turun dari %d ke %d",
				p.Name, res.Special.From, res.Special.To), MessageSpecial)
		case "ladder":
			m.sendSystem(roomID, fmt.Sprintf("🪜 %s naik tangga! Dari %d ke %d",
				p.Name, res.Special.From, res.Special.To), MessageSpecial)
		}
	}

	if res.Won {
		m.log.Info().Str("room", roomID).Str("winner", playerID).Msg("game won")
		m.sendSystem(roomID, fmt.Sprintf("🎉 %s memenangkan permainan!", p.Name), MessageWin)
		m.hub.Broadcast(roomID, EventGameWon, gin.H{"winner": r.Winner})
		return
	}

	// Rolling a six keeps the turn.
	if steps != 6 {
		r.NextTurn()
	}
	m.hub.Broadcast(roomID, EventTurnChanged, gin.H{
		"currentPlayer": r.CurrentPlayer(),
		"players":       r.Players,
	})
}

// SendChat relays a player chat message to the room.
func (m *Manager) SendChat(connID, roomID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	p, ok := r.Player(connID)
	if !ok {
		return
	}
	m.hub.Broadcast(roomID, EventNewMessage, playerMessage(p, strings.TrimSpace(text)))
}

// Leave unseats a disconnected player, deleting the room when it
// empties and repairing the turn state otherwise.
func (m *Manager) Leave(connID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	p, ok := r.Player(connID)
	if !ok {
		return
	}
	m.log.Info().Str("room", roomID).Str("player", connID).Msg("player left room")
	m.sendSystem(roomID, fmt.Sprintf("%s keluar dari game", p.Name), MessageSystem)

	if empty := r.RemovePlayer(connID); empty {
		m.store.DeleteRoom(roomID)
		m.log.Info().Str("room", roomID).Msg("room deleted")
		return
	}

	m.hub.Broadcast(roomID, EventPlayerLeft, gin.H{
		"players":        r.Players,
		"disconnectedId": connID,
	})
	m.hub.Broadcast(roomID, EventTurnChanged, gin.H{
		"currentPlayer": r.CurrentPlayer(),
		"players":       r.Players,
	})
}

func (m *Manager) sendSystem(roomID, text, typ string) {
	m.hub.Broadcast(roomID, EventNewMessage, systemMessage(text, typ))
}

func (m *Manager) newRoomID() string {
	return fmt.Sprintf("room_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
