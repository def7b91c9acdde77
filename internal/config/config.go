package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr  string
	StaticDir string

	// Room occupancy bounds. A room starts once it holds MinPlayers
	// and stops accepting joins at MaxPlayers.
	MinPlayers int
	MaxPlayers int

	// StartDelay is the pause between a room reaching MinPlayers and
	// the game starting; MoveDelay is the pause between a dice roll
	// and its move resolution. Both exist so clients can animate.
	StartDelay time.Duration
	MoveDelay  time.Duration
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		HTTPAddr:   getenvStr("HTTP_ADDR", ":8080"),
		StaticDir:  getenvStr("STATIC_DIR", "./public"),
		MinPlayers: getenvInt("MIN_PLAYERS", 2),
		MaxPlayers: getenvInt("MAX_PLAYERS", 4),
		StartDelay: time.Duration(getenvInt("START_DELAY_MS", 2000)) * time.Millisecond,
		MoveDelay:  time.Duration(getenvInt("MOVE_DELAY_MS", 2000)) * time.Millisecond,
	}
}
