package game

// GameState is the room lifecycle phase.
type GameState string

const (
	StateWaiting  GameState = "waiting"
	StatePlaying  GameState = "playing"
	StateFinished GameState = "finished"
)

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Color    string `json:"color"`
	IsActive bool   `json:"isActive"`
}

// SpecialMove records a snake or ladder teleport taken during a move.
type SpecialMove struct {
	Type string `json:"type"` // "snake" or "ladder"
	From int    `json:"from"`
	To   int    `json:"to"`
}

// MoveResult describes the outcome of resolving a dice roll.
type MoveResult struct {
	Moved   bool
	Won     bool
	Reason  string // "beyond_100" when the move was rejected
	Special *SpecialMove
}

// Room is the authoritative per-room state machine. It is not
// goroutine safe: the room manager serializes all access.
type Room struct {
	ID                 string    `json:"id"`
	Board              Board     `json:"-"`
	Players            []*Player `json:"players"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	State              GameState `json:"gameState"`
	DiceValue          int       `json:"diceValue"`
	Winner             *Player   `json:"winner,omitempty"`

	// PendingRollerID is the player whose roll is waiting on its
	// delayed resolution. While set, further rolls are ignored.
	PendingRollerID string `json:"-"`
}

// NewRoom creates a waiting room seeded with its creator at seat 0.
func NewRoom(id string, board Board, creatorID, creatorName string) *Room {
	r := &Room{
		ID:    id,
		Board: board,
		State: StateWaiting,
	}
	p := r.AddPlayer(creatorID, creatorName)
	p.IsActive = true
	return r
}

// AddPlayer seats a player at the next index. Seat order is join order
// and is never renumbered afterwards.
func (r *Room) AddPlayer(id, name string) *Player {
	p := &Player{
		ID:    id,
		Name:  name,
		Color: PlayerColor(len(r.Players)),
	}
	r.Players = append(r.Players, p)
	return p
}

// Player looks up a seated player by connection identity.
func (r *Room) Player(id string) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the player whose turn it is.
func (r *Room) CurrentPlayer() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[r.CurrentPlayerIndex]
}

// Start moves the room into play with seat 0 active. Starting an
// already started room is a no-op so a stale start timer cannot reset
// a game in progress.
func (r *Room) Start() bool {
	if r.State != StateWaiting || len(r.Players) == 0 {
		return false
	}
	r.State = StatePlaying
	for _, p := range r.Players {
		p.IsActive = false
	}
	r.Players[0].IsActive = true
	r.CurrentPlayerIndex = 0
	return true
}

// MovePlayer resolves a dice roll for the given player. The second
// return is false when the player is unknown or not active; callers
// drop such calls silently.
func (r *Room) MovePlayer(id string, steps int) (MoveResult, bool) {
	p, ok := r.Player(id)
	if !ok || !p.IsActive {
		return MoveResult{}, false
	}

	target := p.Position + steps

	// Overshooting the last square forfeits the whole roll; the
	// player does not stop short of it.
	if target > WinningSquare {
		return MoveResult{Moved: false, Reason: "beyond_100"}, true
	}

	p.Position = target

	var special *SpecialMove
	if down, ok := r.Board.Snakes[target]; ok {
		p.Position = down
		special = &SpecialMove{Type: "snake", From: target, To: down}
	} else if up, ok := r.Board.Ladders[target]; ok {
		p.Position = up
		special = &SpecialMove{Type: "ladder", From: target, To: up}
	}

	if p.Position == WinningSquare {
		r.Winner = p
		r.State = StateFinished
		return MoveResult{Moved: true, Won: true, Special: special}, true
	}

	return MoveResult{Moved: true, Special: special}, true
}

// NextTurn hands the turn to the next seat in join order.
func (r *Room) NextTurn() {
	if len(r.Players) == 0 {
		return
	}
	r.Players[r.CurrentPlayerIndex].IsActive = false
	r.CurrentPlayerIndex = (r.CurrentPlayerIndex + 1) % len(r.Players)
	r.Players[r.CurrentPlayerIndex].IsActive = true
}

// RemovePlayer unseats a player and repairs the turn state. Remaining
// players keep their relative order, so the index can land on a
// different player than before; that shift is intended. Returns true
// when the room is left empty.
func (r *Room) RemovePlayer(id string) bool {
	kept := r.Players[:0]
	for _, p := range r.Players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.Players = kept

	if len(r.Players) == 0 {
		return true
	}

	if r.CurrentPlayerIndex >= len(r.Players) {
		r.CurrentPlayerIndex = 0
	}
	for _, p := range r.Players {
		p.IsActive = false
	}
	r.Players[r.CurrentPlayerIndex].IsActive = true

	if r.PendingRollerID == id {
		r.PendingRollerID = ""
	}
	return false
}
