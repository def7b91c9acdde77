package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/iniduniaku/ulartangga/internal/api/ws"
	"github.com/iniduniaku/ulartangga/internal/config"
	"github.com/iniduniaku/ulartangga/internal/game"
	"github.com/iniduniaku/ulartangga/internal/room"
	"github.com/iniduniaku/ulartangga/internal/store"
)

func newTestRouter() (*gin.Engine, *room.Manager) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		HTTPAddr:   ":0",
		StaticDir:  "testdata/does-not-exist",
		MinPlayers: 2,
		MaxPlayers: 4,
		StartDelay: time.Hour,
		MoveDelay:  time.Hour,
	}
	rm := room.NewManager(store.NewMemoryStore(), cfg, game.NewRoller(), zerolog.Nop())
	hub := ws.NewHub(rm, zerolog.Nop())
	rm.SetBroadcaster(hub)
	return NewRouter(rm, hub, cfg), rm
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", w.Code, w.Body.String())
	}
}

func TestListRooms(t *testing.T) {
	r, rm := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var empty struct {
		Rooms []room.Summary `json:"rooms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &empty); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(empty.Rooms) != 0 {
		t.Errorf("rooms = %d, want 0", len(empty.Rooms))
	}

	roomID := rm.Join("c1", "Adi")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))
	var got struct {
		Rooms []room.Summary `json:"rooms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got.Rooms) != 1 || got.Rooms[0].ID != roomID {
		t.Fatalf("rooms = %+v", got.Rooms)
	}
	if got.Rooms[0].GameState != game.StateWaiting || got.Rooms[0].PlayerCount != 1 {
		t.Errorf("summary = %+v", got.Rooms[0])
	}
}

func TestGetRoom(t *testing.T) {
	r, rm := newTestRouter()
	roomID := rm.Join("c1", "Adi")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/"+roomID, nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing room status = %d, want 404", w.Code)
	}
}
