package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iniduniaku/ulartangga/internal/room"
)

// @Summary Health check
// @Tags Ops
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// @Summary List rooms
// @Description Read-only view of all rooms in creation order
// @Tags Room
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": rm.Summaries()})
	}
}

// @Summary Get a room
// @Description Read-only view of a single room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := rm.Summary(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": s})
	}
}
