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

type CheckOutHandler struct {
	checkOut commands.CheckOutCommands
}

func NewCheckOutHandler(checkOut commands.CheckOutCommands) *CheckOutHandler {
	return &CheckOutHandler{checkOut: checkOut}
}

// @Summary Preview the bill for a room
// @Description Aggregate room charge and incidental charges into the bill presented to the guest
// @Tags check-out
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Front-desk conversation ID"
// @Param request body reqdto.PreviewBillRequest true "Bill preview request"
// @Success 200 {object} resdto.BillPreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /check-out/preview [post]
func (h *CheckOutHandler) PreviewBill(c *gin.Context) {
	var req reqdto.PreviewBillRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.PreviewBillParams{
		RoomNumber: req.RoomNumber,
		SessionID:  c.GetHeader("X-Session-ID"),
	}

	bill, err := h.checkOut.PreviewBill(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoOccupancy):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No checked-in guest for this room",
			})
		case errors.Is(err, commands.ErrChargesUnavailable),
			errors.Is(err, commands.ErrRegistryUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Billing system is unavailable, staff has been notified",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBillPreview(bill))
}

// @Summary Settle a previewed bill
// @Description Confirm or dispute the bill previously shown; confirmation revokes the card and completes check-out
// @Tags check-out
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Session-ID header string false "Front-desk conversation ID"
// @Param request body reqdto.CheckOutRequest true "Check-out request"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /check-out [post]
func (h *CheckOutHandler) CheckOut(c *gin.Context) {
	operator, ok := middleware.GetOperator(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckOutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CheckOutParams{
		RoomNumber:    req.RoomNumber,
		Confirmed:     req.Confirmed,
		PaymentMethod: req.PaymentMethod,
		SessionID:     c.GetHeader("X-Session-ID"),
		Operator:      operator,
	}

	result, err := h.checkOut.CheckOut(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoPendingBill):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No previewed bill for this room, request a new preview",
			})
		case errors.Is(err, commands.ErrPaymentMethodRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment method required to settle the outstanding balance",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckOutResult(result))
}
