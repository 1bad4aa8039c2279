package api

import (
	"errors"
	"net/http"

	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservations queries.ReservationQueries
}

func NewReservationHandler(reservations queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// @Summary Get reservation
// @Description Get a reservation by its ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	view, err := h.reservations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Reservation system is unavailable",
			})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
