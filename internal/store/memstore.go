package store

import (
	"sync"

	"github.com/iniduniaku/ulartangga/internal/game"
)

// MemoryStore is the process-wide room registry. Lookups by id go
// through the map; ListRooms preserves insertion order because the
// matchmaker fills the oldest waiting room first.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*game.Room
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*game.Room{},
	}
}

func (m *MemoryStore) GetRoom(id string) (*game.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *game.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.rooms[r.ID] = r
}

func (m *MemoryStore) DeleteRoom(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[id]; !ok {
		return
	}
	delete(m.rooms, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// ListRooms returns all rooms in insertion order.
func (m *MemoryStore) ListRooms() []*game.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Room, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rooms[id])
	}
	return out
}
