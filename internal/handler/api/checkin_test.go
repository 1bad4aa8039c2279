//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/handler/api"
	resdto "github.com/cagegit/hotel-front-desk-agent/internal/handler/dto/response"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
	"github.com/cagegit/hotel-front-desk-agent/tests/common/builder"
	"github.com/cagegit/hotel-front-desk-agent/tests/common/httptest"
	commandsmock "github.com/cagegit/hotel-front-desk-agent/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckInHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckInCommands
	handler      *api.CheckInHandler
}

func (s *CheckInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckInCommands(s.mockCtrl)
	s.handler = api.NewCheckInHandler(s.mockCommands)

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

	s.router.POST("/check-in", authMiddleware, s.handler.CheckIn)
}

func (s *CheckInHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckInHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckInHandlerTestSuite))
}

func (s *CheckInHandlerTestSuite) checkedInResult() *commands.CheckInResult {
	resv, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)
	rm, err := builder.NewRoomBuilder().WithStatus(room.StatusOccupied).BuildDomain()
	s.Require().NoError(err)
	g, err := guest.Reconstruct("G001", "张伟", "13800138001", "110***1234", guest.VIPGold,
		time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	issued := time.Date(2026, 2, 25, 15, 0, 0, 0, time.UTC)
	return &commands.CheckInResult{
		Guest:       g,
		Reservation: resv,
		Room:        rm,
		Card:        room.NewCard("CARD-1000", rm.Number(), g.ID(), issued, issued.AddDate(0, 0, 3)),
		FaceScore:   96.5,
	}
}

func (s *CheckInHandlerTestSuite) TestCheckIn_Success() {
	s.mockCommands.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params commands.CheckInParams) (*commands.CheckInResult, error) {
			s.Equal("张伟", params.GuestName)
			s.Equal("agent:front-desk", params.Operator)
			s.Equal("sess-1", params.SessionID)
			return s.checkedInResult(), nil
		})

	w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/check-in",
		map[string]any{"guestName": "张伟"}, "token", map[string]string{"X-Session-ID": "sess-1"})

	var resp resdto.CheckInResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("checked_in", resp.Status)
	s.Require().NotNil(resp.Card)
	s.Equal("CARD-1000", resp.Card.CardID)
	s.InDelta(96.5, resp.FaceScore, 1e-9)
}

func (s *CheckInHandlerTestSuite) TestCheckIn_SelectionRequired() {
	s.mockCommands.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(&commands.CheckInResult{
			SelectionRequired: true,
			Candidates: []commands.ReservationCandidate{
				{Index: 1, ReservationID: "RSV-20260225-001", RoomType: room.TypeDeluxe},
				{Index: 2, ReservationID: "RSV-20260301-001", RoomType: room.TypeSuite},
			},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-in",
		map[string]any{"guestName": "张伟"}, "token")

	var resp resdto.CheckInResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("selection_required", resp.Status)
	s.Require().Len(resp.Candidates, 2)
	s.Equal(1, resp.Candidates[0].Index)
}

func (s *CheckInHandlerTestSuite) TestCheckIn_ErrorMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"no reservation", commands.ErrReservationNotFound, http.StatusNotFound},
		{"bad selection", commands.ErrInvalidSelection, http.StatusBadRequest},
		{"name mismatch", commands.ErrNameMismatch, http.StatusUnprocessableEntity},
		{"scan failed", commands.ErrScanFailed, http.StatusUnprocessableEntity},
		{"face rejected", commands.ErrFaceVerificationFailed, http.StatusUnprocessableEntity},
		{"no room", commands.ErrNoRoomAvailable, http.StatusConflict},
		{"card failed", commands.ErrCardIssueFailed, http.StatusConflict},
		{"registry down", commands.ErrRegistryUnavailable, http.StatusServiceUnavailable},
		{"identity down", commands.ErrIdentityUnavailable, http.StatusServiceUnavailable},
		{"rooms down", commands.ErrRoomSystemUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				CheckIn(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-in",
				map[string]any{"guestName": "张伟"}, "token")
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
		})
	}
}

func (s *CheckInHandlerTestSuite) TestCheckIn_BadRequests() {
	s.Run("missing guest name", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-in",
			map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-in",
			map[string]any{"guestName": "张伟"}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
