package api

import (
	"net/http"

	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms queries.RoomQueries
}

func NewRoomHandler(rooms queries.RoomQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// @Summary List rooms
// @Description List all rooms with their live status
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RoomView
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Room system is unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Room availability by type
// @Description Count available rooms per room type
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TypeAvailability
// @Router /rooms/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	availability, err := h.rooms.Availability(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Room system is unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, availability)
}
