//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/handler/api"
	resdto "github.com/cagegit/hotel-front-desk-agent/internal/handler/dto/response"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
	"github.com/cagegit/hotel-front-desk-agent/tests/common/httptest"
	commandsmock "github.com/cagegit/hotel-front-desk-agent/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckOutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckOutCommands
	handler      *api.CheckOutHandler
}

func (s *CheckOutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckOutCommands(s.mockCtrl)
	s.handler = api.NewCheckOutHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("operator", "agent:front-desk")
		c.Set("operator_role", "agent")
		c.Next()
	}

	s.router.POST("/check-out/preview", authMiddleware, s.handler.PreviewBill)
	s.router.POST("/check-out", authMiddleware, s.handler.CheckOut)
}

func (s *CheckOutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckOutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckOutHandlerTestSuite))
}

func (s *CheckOutHandlerTestSuite) TestPreviewBill_Success() {
	s.mockCommands.EXPECT().
		PreviewBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params commands.PreviewBillParams) (*commands.BillPreview, error) {
			s.Equal("1205", params.RoomNumber)
			s.Equal("sess-1", params.SessionID)
			return &commands.BillPreview{
				RoomNumber: "1205",
				GuestName:  "张伟",
				RoomCharge: billing.NewMoneyFromYuan(1680),
				Charges: []billing.ChargeItem{
					{Category: billing.CategoryMinibar, Description: "矿泉水 x2", Amount: billing.NewMoneyFromYuan(128)},
				},
				TotalAmount:  billing.NewMoneyFromYuan(1808),
				Balance:      billing.NewMoneyFromYuan(128),
				AmountDue:    billing.NewMoneyFromYuan(128),
				RefundAmount: billing.Money{},
			}, nil
		})

	w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/check-out/preview",
		map[string]any{"roomNumber": "1205"}, "token", map[string]string{"X-Session-ID": "sess-1"})

	var resp resdto.BillPreviewResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("1205", resp.RoomNumber)
	s.Equal(int64(180800), resp.TotalCents)
	s.Equal(int64(12800), resp.BalanceCents)
	s.Require().Len(resp.Charges, 1)
	s.Equal("minibar", resp.Charges[0].Category)
}

func (s *CheckOutHandlerTestSuite) TestPreviewBill_ErrorMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"no occupancy", commands.ErrNoOccupancy, http.StatusNotFound},
		{"charges unavailable", commands.ErrChargesUnavailable, http.StatusServiceUnavailable},
		{"registry unavailable", commands.ErrRegistryUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				PreviewBill(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-out/preview",
				map[string]any{"roomNumber": "1205"}, "token")
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
		})
	}
}

func (s *CheckOutHandlerTestSuite) TestCheckOut_Confirmed() {
	s.mockCommands.EXPECT().
		CheckOut(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params commands.CheckOutParams) (*commands.CheckOutResult, error) {
			s.True(params.Confirmed)
			s.Equal("cash", params.PaymentMethod)
			s.Equal("agent:front-desk", params.Operator)
			return &commands.CheckOutResult{
				RoomNumber:      "1205",
				GuestName:       "张伟",
				TotalCharges:    billing.NewMoneyFromYuan(1808),
				PaidAmount:      billing.NewMoneyFromYuan(1680),
				AmountCollected: billing.NewMoneyFromYuan(128),
				PaymentMethod:   "cash",
			}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-out",
		map[string]any{"roomNumber": "1205", "confirmed": true, "paymentMethod": "cash"}, "token")

	var resp resdto.CheckOutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("checked_out", resp.Status)
	s.Equal(int64(12800), resp.CollectedCents)
	s.Equal("cash", resp.PaymentMethod)
}

func (s *CheckOutHandlerTestSuite) TestCheckOut_Disputed() {
	s.mockCommands.EXPECT().
		CheckOut(gomock.Any(), gomock.Any()).
		Return(&commands.CheckOutResult{
			Escalated:  true,
			RoomNumber: "1205",
			GuestName:  "张伟",
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-out",
		map[string]any{"roomNumber": "1205", "confirmed": false}, "token")

	var resp resdto.CheckOutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("escalated", resp.Status)
}

func (s *CheckOutHandlerTestSuite) TestCheckOut_ErrorMapping() {
	s.Run("no pending bill", func() {
		s.mockCommands.EXPECT().
			CheckOut(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNoPendingBill)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-out",
			map[string]any{"roomNumber": "1205", "confirmed": true}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "new preview")
	})

	s.Run("payment method required", func() {
		s.mockCommands.EXPECT().
			CheckOut(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPaymentMethodRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-out",
			map[string]any{"roomNumber": "1205", "confirmed": true}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Payment method")
	})

	s.Run("missing room number", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-out",
			map[string]any{"confirmed": true}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
