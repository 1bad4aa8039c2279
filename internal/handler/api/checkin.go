package api

import (
	"errors"
	"net/http"

	reqdto "github.com/cagegit/hotel-front-desk-agent/internal/handler/dto/request"
	resdto "github.com/cagegit/hotel-front-desk-agent/internal/handler/dto/response"
	"github.com/cagegit/hotel-front-desk-agent/internal/handler/middleware"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	checkIn commands.CheckInCommands
}

func NewCheckInHandler(checkIn commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{checkIn: checkIn}
}

// @Summary Check in a guest
// @Description Verify identity, allocate a room and issue a card for a confirmed reservation
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Front-desk conversation ID"
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /check-in [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	operator, ok := middleware.GetOperator(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CheckInParams{
		GuestName: req.TrimmedGuestName(),
		Selection: req.ReservationIndex,
		SessionID: c.GetHeader("X-Session-ID"),
		Operator:  operator,
	}

	result, err := h.checkIn.CheckIn(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No confirmed reservation found for this name",
			})
		case errors.Is(err, commands.ErrInvalidSelection):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation selection out of range",
			})
		case errors.Is(err, commands.ErrNameMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Document name does not match the reservation",
			})
		case errors.Is(err, commands.ErrScanFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Document scan failed, please see the front desk",
			})
		case errors.Is(err, commands.ErrFaceVerificationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Face verification failed, please see the front desk",
			})
		case errors.Is(err, commands.ErrNoRoomAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No room of the reserved type is available",
			})
		case errors.Is(err, commands.ErrCardIssueFailed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room card issuance failed, staff has been notified",
			})
		case errors.Is(err, commands.ErrRegistryUnavailable),
			errors.Is(err, commands.ErrIdentityUnavailable),
			errors.Is(err, commands.ErrRoomSystemUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "A backend system is unavailable, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckInResult(result))
}
