package http

import (
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/iniduniaku/ulartangga/internal/api/ws"
	"github.com/iniduniaku/ulartangga/internal/config"
	"github.com/iniduniaku/ulartangga/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Realtime game transport.
	r.GET("/ws", hub.HandleWS)

	// Read-only introspection.
	r.GET("/healthz", HealthHandler)
	r.GET("/rooms", ListRoomsHandler(rm))
	r.GET("/rooms/:id", GetRoomHandler(rm))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Game client, when the assets are present.
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		r.Static("/public", cfg.StaticDir)
		r.StaticFile("/", cfg.StaticDir+"/index.html")
	}

	return r
}
