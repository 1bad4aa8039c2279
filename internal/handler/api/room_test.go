//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/cagegit/hotel-front-desk-agent/internal/handler/api"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/queries"
	"github.com/cagegit/hotel-front-desk-agent/tests/common/httptest"
	queriesmock "github.com/cagegit/hotel-front-desk-agent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("operator", "agent:front-desk")
		c.Next()
	}

	rooms := s.router.Group("/rooms", authMiddleware)
	rooms.GET("", s.handler.ListRooms)
	rooms.GET("/availability", s.handler.Availability)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.mockQueries.EXPECT().
		ListRooms(gomock.Any()).
		Return([]queries.RoomView{
			{Number: "1201", Floor: 12, Type: "standard", Status: "available", PriceCents: 38800},
			{Number: "1205", Floor: 12, Type: "deluxe", Status: "occupied", PriceCents: 56000, Features: []string{"city-view"}},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "token")

	var views []queries.RoomView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
	s.Require().Len(views, 2)
	s.Equal("1201", views[0].Number)
	s.Equal("occupied", views[1].Status)
}

func (s *RoomHandlerTestSuite) TestListRooms_Unavailable() {
	s.mockQueries.EXPECT().
		ListRooms(gomock.Any()).
		Return(nil, queries.ErrRoomQueryFailed)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "token")
	httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "unavailable")
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	s.mockQueries.EXPECT().
		Availability(gomock.Any()).
		Return([]queries.TypeAvailability{
			{Type: "deluxe", Total: 3, Available: 2},
			{Type: "suite", Total: 2, Available: 1},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability", nil, "token")

	var availability []queries.TypeAvailability
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &availability)
	s.Require().Len(availability, 2)
	s.Equal(2, availability[0].Available)
}
