package room

import "github.com/iniduniaku/ulartangga/internal/game"

// Summary is a point-in-time copy of a room for read-only surfaces.
// Handlers never see live *game.Room pointers: the manager mutex only
// covers accesses made on the core path, so everything handed out is
// copied while the lock is held.
type Summary struct {
	ID            string          `json:"id"`
	GameState     game.GameState  `json:"gameState"`
	PlayerCount   int             `json:"playerCount"`
	Players       []PlayerSummary `json:"players"`
	CurrentPlayer string          `json:"currentPlayer,omitempty"`
	Winner        string          `json:"winner,omitempty"`
}

type PlayerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Color    string `json:"color"`
	IsActive bool   `json:"isActive"`
}

// snapshot copies a room. Callers must hold m.mu.
func snapshot(r *game.Room) Summary {
	s := Summary{
		ID:          r.ID,
		GameState:   r.State,
		PlayerCount: len(r.Players),
		Players:     make([]PlayerSummary, 0, len(r.Players)),
	}
	for _, p := range r.Players {
		s.Players = append(s.Players, PlayerSummary{
			ID:       p.ID,
			Name:     p.Name,
			Position: p.Position,
			Color:    p.Color,
			IsActive: p.IsActive,
		})
	}
	if cp := r.CurrentPlayer(); cp != nil && r.State == game.StatePlaying {
		s.CurrentPlayer = cp.ID
	}
	if r.Winner != nil {
		s.Winner = r.Winner.ID
	}
	return s
}

// Summaries returns copies of all rooms in creation order.
func (m *Manager) Summaries() []Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	rooms := m.store.ListRooms()
	out := make([]Summary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, snapshot(r))
	}
	return out
}

// Summary returns a copy of a single room.
func (m *Manager) Summary(id string) (Summary, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store.GetRoom(id)
	if !ok {
		return Summary{}, false
	}
	return snapshot(r), true
}
