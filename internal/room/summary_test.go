package room

import (
	"fmt"
	"sync"
	"testing"

	"github.com/iniduniaku/ulartangga/internal/game"
)

func TestSummaryIsDetachedCopy(t *testing.T) {
	m, _ := newTestManager(1)
	r := startedRoom(t, m, "c1", "c2")
	r.Players[0].Position = 42

	s, ok := m.Summary(r.ID)
	if !ok {
		t.Fatalf("summary not found")
	}
	if s.GameState != game.StatePlaying || s.PlayerCount != 2 {
		t.Errorf("summary = %+v", s)
	}
	if s.CurrentPlayer != "c1" {
		t.Errorf("currentPlayer = %s, want c1", s.CurrentPlayer)
	}
	if s.Players[0].Position != 42 {
		t.Errorf("position = %d, want 42", s.Players[0].Position)
	}

	// Mutating the snapshot must not reach the live room.
	s.Players[0].Position = 99
	s.Players = append(s.Players, PlayerSummary{ID: "ghost"})
	if r.Players[0].Position != 42 || len(r.Players) != 2 {
		t.Errorf("snapshot mutation leaked into the room")
	}
}

func TestSummariesKeepCreationOrder(t *testing.T) {
	m, _ := newTestManager(1)
	// Nine joins at capacity four give three rooms in creation order.
	var ids []string
	for i := 0; i < 9; i++ {
		ids = append(ids, m.Join(fmt.Sprintf("c%d", i), "P"))
	}
	sums := m.Summaries()
	if len(sums) != 3 {
		t.Fatalf("summaries = %d, want 3 rooms (9 joins at capacity 4)", len(sums))
	}
	if sums[0].ID != ids[0] || sums[1].ID != ids[4] || sums[2].ID != ids[8] {
		t.Errorf("summaries out of creation order: %v", sums)
	}
}

// Read-only surfaces must be safe against the core mutating rooms;
// run with the race detector to make violations fatal.
func TestSummariesConcurrentWithMutations(t *testing.T) {
	m, _ := newTestManager(6)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var last string
		for {
			select {
			case <-stop:
				return
			default:
			}
			for _, s := range m.Summaries() {
				last = s.ID
			}
			m.Summary(last)
		}
	}()

	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("c%d", i)
		roomID := m.Join(id, "P")
		if i%3 == 0 {
			m.startGame(roomID)
			m.RollDice(id, roomID)
		}
		if i%2 == 0 {
			m.Leave(id, roomID)
		}
	}
	close(stop)
	wg.Wait()
}
