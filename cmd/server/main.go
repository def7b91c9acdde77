package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "github.com/iniduniaku/ulartangga/internal/api/http"
	"github.com/iniduniaku/ulartangga/internal/api/ws"
	"github.com/iniduniaku/ulartangga/internal/config"
	"github.com/iniduniaku/ulartangga/internal/game"
	"github.com/iniduniaku/ulartangga/internal/room"
	"github.com/iniduniaku/ulartangga/internal/store"

	// swagger packages
	_ "github.com/iniduniaku/ulartangga/docs"
)

// @title Ular Tangga Multiplayer API
// @version 1.0
// @description REST surface of the multiplayer Snakes and Ladders server (Go + Gin)
// @BasePath /
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && os.Getenv("LOG_LEVEL") != "" {
		zerolog.SetGlobalLevel(lvl)
	}
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	cfg := config.Load()
	if err := game.DefaultBoard().Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid board layout")
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, game.NewRoller(), log.Logger)
	hub := ws.NewHub(rm, log.Logger)
	rm.SetBroadcaster(hub)

	r := httpapi.NewRouter(rm, hub, cfg)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("snakes and ladders server listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
